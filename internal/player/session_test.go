package player

import "testing"

func TestMultipleChoice_IncorrectStaysRetryable(t *testing.T) {
	session := NewMultipleChoiceSession(&MultipleChoiceContent{
		Question:      "How do you say hello?",
		Options:       []string{"Cześć", "Dziękuję", "Proszę"},
		CorrectAnswer: "Cześć",
	})

	feedback, err := session.Select("Proszę")
	if err != nil {
		t.Fatalf("incorrect answer must be accepted: %v", err)
	}
	if feedback.Correct {
		t.Fatalf("expected incorrect feedback")
	}
	if session.Completed() {
		t.Fatalf("incorrect selection must leave the block incomplete")
	}

	// retry with another wrong option, then the right one
	if _, err := session.Select("Dziękuję"); err != nil {
		t.Fatalf("retry must be allowed: %v", err)
	}
	feedback, err = session.Select("Cześć")
	if err != nil {
		t.Fatalf("correct answer rejected: %v", err)
	}
	if !feedback.Correct || !session.Completed() {
		t.Fatalf("correct selection must complete the block")
	}
}

func TestMultipleChoice_LocksAfterCorrectAnswer(t *testing.T) {
	session := NewMultipleChoiceSession(&MultipleChoiceContent{
		Question:      "q",
		Options:       []string{"a", "b"},
		CorrectAnswer: "a",
	})
	if _, err := session.Select("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := session.Select("b"); err != ErrAlreadyAnswered {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
	if !session.Completed() {
		t.Fatalf("completion must survive rejected selections")
	}
}

func spellingSession(n int) *SpellingChallengeSession {
	questions := make([]SpellingQuestion, n)
	for i := range questions {
		questions[i] = SpellingQuestion{
			Question:      "spell it",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
		}
	}
	return NewSpellingChallengeSession(&SpellingChallengeContent{
		Instructions: "pick the correct spelling",
		Questions:    questions,
	})
}

func TestSpellingChallenge_CompletesAfterLastFeedback(t *testing.T) {
	session := spellingSession(3)

	answers := []string{"wrong", "right", "wrong"}
	for i, answer := range answers {
		if session.Completed() {
			t.Fatalf("question %d: completed too early", i)
		}
		if _, err := session.Submit(answer); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if i < len(answers)-1 {
			if err := session.Next(); err != nil {
				t.Fatalf("question %d: next failed: %v", i, err)
			}
		}
	}

	// final answer was wrong, the block still completes
	if !session.Completed() {
		t.Fatalf("feedback on the last question must complete the block")
	}
}

func TestSpellingChallenge_OneSubmissionPerQuestion(t *testing.T) {
	session := spellingSession(2)

	if _, err := session.Submit("wrong"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := session.Submit("right"); err != ErrAlreadyAnswered {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestSpellingChallenge_NoSkippingOrBacktracking(t *testing.T) {
	session := spellingSession(3)

	// Next before answering must be refused
	if err := session.Next(); err != ErrNotAnswered {
		t.Fatalf("expected ErrNotAnswered, got %v", err)
	}

	if _, err := session.Submit("right"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.QuestionIndex() != 1 {
		t.Fatalf("expected question 1, got %d", session.QuestionIndex())
	}

	// one Next per answered question, k -> k+2 is impossible
	if err := session.Next(); err != ErrNotAnswered {
		t.Fatalf("expected ErrNotAnswered on unanswered question, got %v", err)
	}
}

func TestSpellingChallenge_NextPastLastQuestionRefused(t *testing.T) {
	session := spellingSession(1)
	if _, err := session.Submit("right"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.Next(); err != ErrChallengeFinished {
		t.Fatalf("expected ErrChallengeFinished, got %v", err)
	}
	if !session.Completed() {
		t.Fatalf("single-question challenge must be complete")
	}
}
