package http

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/linguamap/linguamap/internal/domain"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
	"github.com/linguamap/linguamap/internal/infrastructure/auth"
	"github.com/linguamap/linguamap/internal/player"
)

// PlayerHandler drives one lesson playthrough over a websocket connection.
// All progression decisions live in the player package, the handler only
// decodes client actions, applies effects and reports state.
type PlayerHandler struct {
	lessonUseCase   domain.LessonUseCase
	progressUseCase domain.ProgressUseCase
	jwtUtil         *auth.JWTUtil
	websocket       *infra.Websocket
}

func NewPlayerHandler(
	LessonUseCase domain.LessonUseCase,
	ProgressUseCase domain.ProgressUseCase,
	JWTUtil *auth.JWTUtil,
	Websocket *infra.Websocket,
) *PlayerHandler {
	return &PlayerHandler{LessonUseCase, ProgressUseCase, JWTUtil, Websocket}
}

type playerAction struct {
	Action   string `json:"action"`
	LessonID string `json:"lesson_id,omitempty"`
	Token    string `json:"token,omitempty"`
	Option   string `json:"option,omitempty"`
}

type playerStateMessage struct {
	Type          string `json:"type"`
	LessonID      string `json:"lesson_id"`
	Index         int    `json:"index"`
	BlockID       string `json:"block_id,omitempty"`
	BlockType     string `json:"block_type,omitempty"`
	BlockComplete bool   `json:"block_complete"`
	Finished      bool   `json:"finished"`
	QuestionIndex int    `json:"question_index,omitempty"`
}

type playerTokenMessage struct {
	Type    string `json:"type"`
	Token   string `json:"token"`
	Replace bool   `json:"replace"`
}

type playerFeedbackMessage struct {
	Type     string           `json:"type"`
	Feedback *player.Feedback `json:"feedback"`
}

type playerCompletionMessage struct {
	Type   string                   `json:"type"`
	Result *domain.CompletionResult `json:"result"`
}

type playerErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// HandleLessonSession upgrade to a websocket lesson session
func (ph *PlayerHandler) HandleLessonSession(c echo.Context) error {
	claims := ph.jwtUtil.GetContextToken(c)
	session := &playerSession{
		userID:          claims.UID,
		lessonUseCase:   ph.lessonUseCase,
		progressUseCase: ph.progressUseCase,
	}
	return ph.websocket.WithHeartbeat(session.handle)(c)
}

// playerSession per-connection progression state
type playerSession struct {
	userID          string
	lessonUseCase   domain.LessonUseCase
	progressUseCase domain.ProgressUseCase

	state    player.State
	mc       *player.MultipleChoiceSession
	spelling *player.SpellingChallengeSession
}

// handle process a single client action, returning an error closes the
// connection
func (ps *playerSession) handle(conn *websocket.Conn) error {
	action := new(playerAction)
	if err := conn.ReadJSON(action); err != nil {
		return err
	}

	ctx := context.Background()
	switch action.Action {
	case "enter":
		return ps.enter(ctx, conn, action)
	case "position":
		return ps.apply(ctx, conn, player.ExternalPositionChange{Token: action.Token})
	case "answer":
		return ps.answer(ctx, conn, action.Option)
	case "next":
		return ps.nextQuestion(conn)
	case "proceed":
		return ps.proceed(ctx, conn)
	case "advance":
		return ps.apply(ctx, conn, player.Advance{})
	default:
		return ps.sendError(conn, "unknown action: "+action.Action)
	}
}

func (ps *playerSession) enter(ctx context.Context, conn *websocket.Conn, action *playerAction) error {
	lesson, err := ps.lessonUseCase.GetLessonByID(ctx, action.LessonID)
	if err != nil {
		return err
	}
	if lesson == nil {
		return ps.sendError(conn, domain.ErrLessonNotFound.Error())
	}
	return ps.apply(ctx, conn, player.EnterLesson{Lesson: lesson, Token: action.Token})
}

// answer submit an option to the interactive block taking answers
func (ps *playerSession) answer(ctx context.Context, conn *websocket.Conn, option string) error {
	var (
		feedback *player.Feedback
		err      error
	)
	switch {
	case ps.mc != nil:
		feedback, err = ps.mc.Select(option)
	case ps.spelling != nil:
		feedback, err = ps.spelling.Submit(option)
	default:
		return ps.sendError(conn, "current block takes no answers")
	}
	if err != nil {
		return ps.sendError(conn, err.Error())
	}
	if err := conn.WriteJSON(&playerFeedbackMessage{Type: "feedback", Feedback: feedback}); err != nil {
		return err
	}
	if ps.sessionCompleted() {
		if block := ps.state.CurrentBlock(); block != nil {
			return ps.apply(ctx, conn, player.BlockCompleted{BlockID: block.ID})
		}
	}
	return ps.sendState(conn)
}

// nextQuestion advance inside a spelling challenge
func (ps *playerSession) nextQuestion(conn *websocket.Conn) error {
	if ps.spelling == nil {
		return ps.sendError(conn, "current block has no sub-questions")
	}
	if err := ps.spelling.Next(); err != nil {
		return ps.sendError(conn, err.Error())
	}
	return ps.sendState(conn)
}

// proceed manual completion, only unsupported block types accept it
func (ps *playerSession) proceed(ctx context.Context, conn *websocket.Conn) error {
	block := ps.state.CurrentBlock()
	if block == nil {
		return ps.sendError(conn, "no block to proceed past")
	}
	if player.Resolve(block.Type).Kind != player.KindUnsupported {
		return ps.sendError(conn, "block must be completed, not skipped")
	}
	return ps.apply(ctx, conn, player.BlockCompleted{BlockID: block.ID})
}

// apply run one event through the reducer, execute effects and resync the
// interactive session when the current block changed
func (ps *playerSession) apply(ctx context.Context, conn *websocket.Conn, ev player.Event) error {
	before := ps.state.CurrentBlock()
	state, effects := player.Reduce(ps.state, ev)
	ps.state = state

	if after := ps.state.CurrentBlock(); after != before {
		if err := ps.resetBlockSession(after); err != nil {
			return ps.sendError(conn, err.Error())
		}
	}

	for _, effect := range effects {
		switch effect := effect.(type) {
		case player.WriteToken:
			if err := conn.WriteJSON(&playerTokenMessage{Type: "token", Token: effect.Token, Replace: effect.Replace}); err != nil {
				return err
			}
		case player.LessonFinished:
			result, err := ps.progressUseCase.MarkLessonCompleted(ctx, ps.userID, effect.CourseID, effect.LessonID)
			if err != nil {
				// the lesson stays finished on screen even when the
				// write failed, the next completion retries it
				if err := ps.sendError(conn, err.Error()); err != nil {
					return err
				}
				continue
			}
			if err := conn.WriteJSON(&playerCompletionMessage{Type: "completion", Result: result}); err != nil {
				return err
			}
		}
	}
	return ps.sendState(conn)
}

// resetBlockSession rebuild interaction state for a newly current block
func (ps *playerSession) resetBlockSession(block *domain.LessonBlockModel) error {
	ps.mc = nil
	ps.spelling = nil
	if block == nil || player.Resolve(block.Type).Kind != player.KindInteractive {
		return nil
	}

	content, err := player.DecodeContent(block)
	if err != nil {
		return err
	}
	switch content := content.(type) {
	case *player.MultipleChoiceContent:
		ps.mc = player.NewMultipleChoiceSession(content)
	case *player.SpellingChallengeContent:
		ps.spelling = player.NewSpellingChallengeSession(content)
	}
	return nil
}

func (ps *playerSession) sessionCompleted() bool {
	if ps.mc != nil {
		return ps.mc.Completed()
	}
	if ps.spelling != nil {
		return ps.spelling.Completed()
	}
	return false
}

func (ps *playerSession) sendState(conn *websocket.Conn) error {
	msg := &playerStateMessage{
		Type:          "state",
		Index:         ps.state.Index,
		BlockComplete: ps.state.BlockComplete,
		Finished:      ps.state.Finished,
	}
	if ps.state.Lesson != nil {
		msg.LessonID = ps.state.Lesson.ID
	}
	if block := ps.state.CurrentBlock(); block != nil {
		msg.BlockID = block.ID
		msg.BlockType = block.Type
	}
	if ps.spelling != nil {
		msg.QuestionIndex = ps.spelling.QuestionIndex()
	}
	return conn.WriteJSON(msg)
}

func (ps *playerSession) sendError(conn *websocket.Conn, message string) error {
	raw, err := json.Marshal(&playerErrorMessage{Type: "error", Message: message})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, raw)
}
