package player

import (
	"fmt"
	"testing"

	"github.com/linguamap/linguamap/internal/domain"
)

func makeLesson(id string, blockTypes ...string) *domain.LessonModel {
	blocks := make([]*domain.LessonBlockModel, len(blockTypes))
	for i, bt := range blockTypes {
		blocks[i] = &domain.LessonBlockModel{
			ID:   fmt.Sprintf("%s-b%d", id, i),
			Type: bt,
		}
	}
	return &domain.LessonModel{
		ID:       id,
		CourseID: "course-1",
		Title:    "lesson " + id,
		Content:  &domain.LessonContentModel{Type: "language-lesson", Blocks: blocks},
	}
}

func enter(t *testing.T, lesson *domain.LessonModel, token string) State {
	t.Helper()
	s, _ := Reduce(State{}, EnterLesson{Lesson: lesson, Token: token})
	return s
}

func TestEnterLesson_DefaultsToFirstBlock(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery, TypeMultipleChoice)
	s, effects := Reduce(State{}, EnterLesson{Lesson: lesson})

	if s.Index != 0 {
		t.Fatalf("expected index 0, got %d", s.Index)
	}
	if !s.BlockComplete {
		t.Fatalf("discovery block should auto-complete on entry")
	}
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	write, ok := effects[0].(WriteToken)
	if !ok {
		t.Fatalf("expected WriteToken effect, got %T", effects[0])
	}
	if write.Token != "block=0" || !write.Replace {
		t.Fatalf("expected replace write of block=0, got %+v", write)
	}
}

func TestEnterLesson_RestoresPositionFromToken(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery, TypeMultipleChoice, TypeRecap)
	s := enter(t, lesson, "block=2")

	if s.Index != 2 {
		t.Fatalf("expected index 2, got %d", s.Index)
	}
	if !s.BlockComplete {
		t.Fatalf("recap block should auto-complete on entry")
	}
}

func TestEnterLesson_ClampsOutOfRangeToken(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery, TypeMultipleChoice)
	s, effects := Reduce(State{}, EnterLesson{Lesson: lesson, Token: "block=99"})

	if s.Index != 1 {
		t.Fatalf("expected index clamped to 1, got %d", s.Index)
	}
	// the clamped position must be written back
	if len(effects) != 1 || effects[0].(WriteToken).Token != "block=1" {
		t.Fatalf("expected corrected token write, got %v", effects)
	}
}

func TestEnterLesson_MalformedTokenTreatedAsZero(t *testing.T) {
	for _, token := range []string{"", "block=", "block=-1", "block=abc", "step=3"} {
		lesson := makeLesson("l1", TypeMultipleChoice, TypeRecap)
		s := enter(t, lesson, token)
		if s.Index != 0 {
			t.Fatalf("token %q: expected index 0, got %d", token, s.Index)
		}
	}
}

func TestAdvance_NoOpWhileBlockIncomplete(t *testing.T) {
	lesson := makeLesson("l1", TypeMultipleChoice, TypeRecap)
	s := enter(t, lesson, "")

	next, effects := Reduce(s, Advance{})
	if next.Index != 0 {
		t.Fatalf("advance on incomplete block must not move, index=%d", next.Index)
	}
	if len(effects) != 0 {
		t.Fatalf("expected no effects, got %v", effects)
	}
}

func TestAdvance_MovesAndRecomputesCompletion(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery, TypeMultipleChoice, TypeRecap)
	s := enter(t, lesson, "")

	s, effects := Reduce(s, Advance{})
	if s.Index != 1 {
		t.Fatalf("expected index 1, got %d", s.Index)
	}
	if s.BlockComplete {
		t.Fatalf("multiple-choice block must enter incomplete")
	}
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	if write := effects[0].(WriteToken); write.Replace || write.Token != "block=1" {
		t.Fatalf("index change must push token, got %+v", write)
	}
}

func TestAdvance_LastBlockFinishesExactlyOnce(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery)
	s := enter(t, lesson, "")

	s, effects := Reduce(s, Advance{})
	if !s.Finished {
		t.Fatalf("expected finished state")
	}
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	finished, ok := effects[0].(LessonFinished)
	if !ok {
		t.Fatalf("expected LessonFinished, got %T", effects[0])
	}
	if finished.LessonID != "l1" || finished.CourseID != "course-1" {
		t.Fatalf("unexpected completion payload: %+v", finished)
	}

	// finished is terminal, a second advance raises nothing
	s, effects = Reduce(s, Advance{})
	if len(effects) != 0 {
		t.Fatalf("finished lesson must not raise again, got %v", effects)
	}
	if !s.Finished {
		t.Fatalf("finished flag must stick")
	}
}

func TestBlockCompleted_MatchingBlockOnly(t *testing.T) {
	lesson := makeLesson("l1", TypeMultipleChoice, TypeSpellingChallenge)
	s := enter(t, lesson, "")

	// stale id is silently ignored
	s, _ = Reduce(s, BlockCompleted{BlockID: "l1-b1"})
	if s.BlockComplete {
		t.Fatalf("mismatched block id must be a no-op")
	}

	s, _ = Reduce(s, BlockCompleted{BlockID: "l1-b0"})
	if !s.BlockComplete {
		t.Fatalf("matching block id must complete the block")
	}

	// repeated signal for an already complete block is a no-op
	before := s
	s, effects := Reduce(s, BlockCompleted{BlockID: "l1-b0"})
	if s != before || len(effects) != 0 {
		t.Fatalf("duplicate completion must not change state")
	}
}

func TestExternalPositionChange_MovesBackAndRecomputes(t *testing.T) {
	lesson := makeLesson("l1", TypeMultipleChoice, TypeRecap)
	s := enter(t, lesson, "")
	s, _ = Reduce(s, BlockCompleted{BlockID: "l1-b0"})
	s, _ = Reduce(s, Advance{})
	if s.Index != 1 || !s.BlockComplete {
		t.Fatalf("setup failed: %+v", s)
	}

	// back navigation: interactive block reverts to incomplete
	s, _ = Reduce(s, ExternalPositionChange{Token: "block=0"})
	if s.Index != 0 {
		t.Fatalf("expected index 0, got %d", s.Index)
	}
	if s.BlockComplete {
		t.Fatalf("re-visited interactive block must require re-answering")
	}

	// forward navigation: auto block re-completes immediately
	s, _ = Reduce(s, ExternalPositionChange{Token: "block=1"})
	if s.Index != 1 || !s.BlockComplete {
		t.Fatalf("re-visited auto block must re-complete, got %+v", s)
	}
}

func TestExternalPositionChange_ClampedToBlockRange(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery, TypeRecap, TypePronunciation)
	s := enter(t, lesson, "")

	for _, token := range []string{"block=500", "block=2", "garbage"} {
		s, _ = Reduce(s, ExternalPositionChange{Token: token})
		if s.Index < 0 || s.Index > 2 {
			t.Fatalf("token %q: index %d escaped [0,2]", token, s.Index)
		}
	}
}

func TestEnterLesson_NewLessonResetsTerminalState(t *testing.T) {
	first := makeLesson("l1", TypeDiscovery)
	s := enter(t, first, "")
	s, _ = Reduce(s, Advance{})
	if !s.Finished {
		t.Fatalf("setup failed, lesson should be finished")
	}

	second := makeLesson("l2", TypeMultipleChoice, TypeRecap)
	s, effects := Reduce(s, EnterLesson{Lesson: second, Token: "block=1"})
	if s.Index != 0 {
		t.Fatalf("new lesson must reset to index 0, got %d", s.Index)
	}
	if s.Finished {
		t.Fatalf("new lesson must clear finished flag")
	}
	if s.BlockComplete {
		t.Fatalf("multiple-choice entry block must start incomplete")
	}
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	if write := effects[0].(WriteToken); !write.Replace || write.Token != "block=0" {
		t.Fatalf("lesson change must replace-write block=0, got %+v", write)
	}
}

func TestEnterLesson_SameLessonKeepsState(t *testing.T) {
	lesson := makeLesson("l1", TypeDiscovery, TypeRecap)
	s := enter(t, lesson, "")
	s, _ = Reduce(s, Advance{})

	next, effects := Reduce(s, EnterLesson{Lesson: lesson, Token: "block=0"})
	if next.Index != 1 || len(effects) != 0 {
		t.Fatalf("re-entering the same lesson must keep position, got %+v %v", next, effects)
	}
}

func TestIndexAlwaysClamped(t *testing.T) {
	// walk a mixed lesson with hostile tokens interleaved, the index must
	// never escape the block range
	lesson := makeLesson("l1", TypeDiscovery, TypeMultipleChoice, TypeRecap, "mystery", TypePronunciation)
	count := len(lesson.Content.Blocks)
	s := enter(t, lesson, "block=1000000")

	events := []Event{
		ExternalPositionChange{Token: "block=42"},
		BlockCompleted{BlockID: "l1-b1"},
		Advance{},
		ExternalPositionChange{Token: "block=0"},
		Advance{},
		ExternalPositionChange{Token: "block=4"},
		Advance{},
	}
	for i, ev := range events {
		s, _ = Reduce(s, ev)
		if s.Index < 0 || s.Index > count-1 {
			t.Fatalf("event %d (%T): index %d escaped [0,%d]", i, ev, s.Index, count-1)
		}
	}
}
