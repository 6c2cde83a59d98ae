package player

import (
	"github.com/linguamap/linguamap/internal/domain"
)

// Event is an input to Reduce. The progression engine is a plain reducer,
// every state adjustment of the lesson player funnels through one of these
// events so ordering is never ambient.
type Event interface {
	isEvent()
}

// EnterLesson a lesson has been loaded. Token carries the externally
// restored position, it only applies on the first load of the lesson.
type EnterLesson struct {
	Lesson *domain.LessonModel
	Token  string
}

// ExternalPositionChange the position token changed underneath the engine,
// eg. browser back/forward navigation
type ExternalPositionChange struct {
	Token string
}

// BlockCompleted a completion signal for the named block. Stale ids are
// ignored, delayed UI callbacks race with advancing.
type BlockCompleted struct {
	BlockID string
}

// Advance move to the next block, or finish the lesson on the last one
type Advance struct{}

func (EnterLesson) isEvent()            {}
func (ExternalPositionChange) isEvent() {}
func (BlockCompleted) isEvent()         {}
func (Advance) isEvent()                {}

// Effect is an output of Reduce to be applied by the caller
type Effect interface {
	isEffect()
}

// WriteToken persist the position token. Replace means a
// non-history-appending write.
type WriteToken struct {
	Token   string
	Replace bool
}

// LessonFinished raised exactly once per lesson instance when the last
// block is advanced past
type LessonFinished struct {
	LessonID string
	CourseID string
}

func (WriteToken) isEffect()     {}
func (LessonFinished) isEffect() {}

// State progression state of one lesson view. The zero value is "no lesson
// loaded", feed it an EnterLesson event first.
type State struct {
	Lesson        *domain.LessonModel
	Index         int
	BlockComplete bool
	Finished      bool
}

// CurrentBlock block at the clamped current index, nil when no lesson is
// loaded or the lesson has no blocks
func (s State) CurrentBlock() *domain.LessonBlockModel {
	blocks := s.blocks()
	if len(blocks) == 0 {
		return nil
	}
	return blocks[clampIndex(s.Index, len(blocks))]
}

func (s State) blocks() []*domain.LessonBlockModel {
	if s.Lesson == nil || s.Lesson.Content == nil {
		return nil
	}
	return s.Lesson.Content.Blocks
}

func clampIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}

// Reduce apply one event to the state. Pure except for reading the lesson
// content carried by the state and event.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case EnterLesson:
		return reduceEnter(s, ev)
	case ExternalPositionChange:
		return reducePosition(s, ev)
	case BlockCompleted:
		return reduceCompleted(s, ev)
	case Advance:
		return reduceAdvance(s)
	}
	return s, nil
}

func reduceEnter(s State, ev EnterLesson) (State, []Effect) {
	if ev.Lesson == nil {
		return s, nil
	}
	if s.Lesson != nil && s.Lesson.ID == ev.Lesson.ID {
		// same lesson instance, nothing to restore
		return s, nil
	}

	next := State{Lesson: ev.Lesson}
	if s.Lesson == nil {
		// first load may restore a position from the token
		next.Index = clampIndex(ParseToken(ev.Token), len(next.blocks()))
	}
	next.BlockComplete = autoCompletes(next)

	var effects []Effect
	if token := FormatToken(next.Index); ev.Token != token {
		effects = append(effects, WriteToken{Token: token, Replace: true})
	}
	return next, effects
}

func reducePosition(s State, ev ExternalPositionChange) (State, []Effect) {
	if s.Lesson == nil || s.Finished {
		return s, nil
	}
	index := clampIndex(ParseToken(ev.Token), len(s.blocks()))
	if index == s.Index {
		return s, nil
	}
	s.Index = index
	s.BlockComplete = autoCompletes(s)
	return s, nil
}

func reduceCompleted(s State, ev BlockCompleted) (State, []Effect) {
	if s.Lesson == nil || s.Finished || s.BlockComplete {
		return s, nil
	}
	block := s.CurrentBlock()
	if block == nil || block.ID != ev.BlockID {
		// stale callback for a block that is no longer current
		return s, nil
	}
	s.BlockComplete = true
	return s, nil
}

func reduceAdvance(s State) (State, []Effect) {
	if s.Lesson == nil || s.Finished || !s.BlockComplete {
		return s, nil
	}
	count := len(s.blocks())
	index := clampIndex(s.Index, count)
	if index < count-1 {
		s.Index = index + 1
		s.BlockComplete = autoCompletes(s)
		return s, []Effect{WriteToken{Token: FormatToken(s.Index)}}
	}
	s.Finished = true
	return s, []Effect{LessonFinished{LessonID: s.Lesson.ID, CourseID: s.Lesson.CourseID}}
}

func autoCompletes(s State) bool {
	block := s.CurrentBlock()
	if block == nil {
		return false
	}
	return Resolve(block.Type).AutoCompletes
}
