package player

import "errors"

// ErrAlreadyAnswered the answer window for the question has closed
var ErrAlreadyAnswered = errors.New("Question has already been answered")

// ErrNotAnswered advancing requires feedback to have been shown first
var ErrNotAnswered = errors.New("Current question has not been answered yet")

// ErrChallengeFinished no further sub-questions remain
var ErrChallengeFinished = errors.New("Challenge has no further questions")

// Feedback outcome of a single answer submission
type Feedback struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

// MultipleChoiceSession interaction state for one multiple-choice block.
// Incorrect selections stay retryable, the session locks once the correct
// option has been chosen.
type MultipleChoiceSession struct {
	content *MultipleChoiceContent
	correct bool
}

func NewMultipleChoiceSession(content *MultipleChoiceContent) *MultipleChoiceSession {
	return &MultipleChoiceSession{content: content}
}

// Select submit an option. Returns ErrAlreadyAnswered once the correct
// option has been locked in.
func (s *MultipleChoiceSession) Select(option string) (*Feedback, error) {
	if s.correct {
		return nil, ErrAlreadyAnswered
	}
	correct := option == s.content.CorrectAnswer
	if correct {
		s.correct = true
	}
	return &Feedback{Correct: correct, CorrectAnswer: s.content.CorrectAnswer}, nil
}

// Completed the block completion condition, true only after a correct pick
func (s *MultipleChoiceSession) Completed() bool {
	return s.correct
}

// SpellingChallengeSession interaction state for one spelling-challenge
// block. Each sub-question takes exactly one submission, there is no
// backtracking, and the block completes when feedback has been shown for
// the last sub-question whatever that answer was.
type SpellingChallengeSession struct {
	questions []SpellingQuestion
	index     int
	answered  bool
}

func NewSpellingChallengeSession(content *SpellingChallengeContent) *SpellingChallengeSession {
	return &SpellingChallengeSession{questions: content.Questions}
}

// QuestionIndex index of the sub-question currently taking answers
func (s *SpellingChallengeSession) QuestionIndex() int {
	return s.index
}

// Current the sub-question currently taking answers, nil when the
// challenge is empty
func (s *SpellingChallengeSession) Current() *SpellingQuestion {
	if len(s.questions) == 0 {
		return nil
	}
	return &s.questions[s.index]
}

// Submit answer the current sub-question. Exactly one submission is
// accepted per sub-question.
func (s *SpellingChallengeSession) Submit(option string) (*Feedback, error) {
	if s.answered || len(s.questions) == 0 {
		return nil, ErrAlreadyAnswered
	}
	question := s.questions[s.index]
	s.answered = true
	return &Feedback{
		Correct:       option == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}

// Next move to the following sub-question. Requires the current one to be
// answered and a following one to exist.
func (s *SpellingChallengeSession) Next() error {
	if !s.answered {
		return ErrNotAnswered
	}
	if s.index >= len(s.questions)-1 {
		return ErrChallengeFinished
	}
	s.index++
	s.answered = false
	return nil
}

// Completed feedback has been shown for the last sub-question
func (s *SpellingChallengeSession) Completed() bool {
	return len(s.questions) > 0 && s.index == len(s.questions)-1 && s.answered
}
