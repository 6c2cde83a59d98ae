package progress

import (
	"math"

	"github.com/linguamap/linguamap/internal/domain"
)

// course progress status relative to a user
const (
	StatusLoading    = "loading"
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// NextLesson outcome of the next-lesson computation. NextLessonID is empty
// only in the loading state.
type NextLesson struct {
	Status       string `json:"status"`
	NextLessonID string `json:"nextLessonId,omitempty"`
}

// ComputeNextLesson pick the next actionable lesson given the course's
// lessons in order_index order and the user's completed set.
//
// An empty lesson list means the inputs are not actionable yet, callers
// treat it as still loading rather than an error. A fully completed course
// points back at the first lesson for review.
func ComputeNextLesson(lessons []*domain.LessonModel, completed []string) *NextLesson {
	if len(lessons) == 0 {
		return &NextLesson{Status: StatusLoading}
	}
	if len(completed) == 0 {
		return &NextLesson{Status: StatusNotStarted, NextLessonID: lessons[0].ID}
	}

	completedSet := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		completedSet[id] = struct{}{}
	}
	for _, lesson := range lessons {
		if _, ok := completedSet[lesson.ID]; !ok {
			return &NextLesson{Status: StatusInProgress, NextLessonID: lesson.ID}
		}
	}
	return &NextLesson{Status: StatusCompleted, NextLessonID: lessons[0].ID}
}

// ComputeCourseProgress completion percentage, rounded to the nearest
// integer. A course without lessons rejects the computation instead of
// dividing by zero.
func ComputeCourseProgress(completedCount, totalLessons int) (int, error) {
	if totalLessons == 0 {
		return 0, domain.ErrCourseHasNoLessons
	}
	return int(math.Round(float64(completedCount) / float64(totalLessons) * 100)), nil
}

// unionLesson add a lesson id to the completed set, preserving
// deduplication
func unionLesson(completed []string, lessonID string) []string {
	for _, id := range completed {
		if id == lessonID {
			return completed
		}
	}
	return append(completed, lessonID)
}
