package domain

import (
	"context"
	"time"
)

// UserCourseProgressModel persisted progress for a (user, course) pair.
// CompletedLessons is a deduplicated set, insertion order carries no meaning.
type UserCourseProgressModel struct {
	ID               string     `json:"-"`
	UserID           string     `json:"-"`
	CourseID         string     `json:"courseId"`
	CompletedLessons []string   `json:"completedLessons"`
	Progress         int        `json:"progress"`
	LastAccessedAt   *time.Time `json:"lastAccessedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// UserPathProgressModel persisted progress for a (user, path) pair,
// read-only in this service
type UserPathProgressModel struct {
	ID               string     `json:"-"`
	UserID           string     `json:"-"`
	PathID           string     `json:"pathId"`
	CompletedCourses []string   `json:"completedCourses"`
	Progress         int        `json:"progress"`
	LastAccessedAt   *time.Time `json:"lastAccessedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// CompletionResult outcome of a lesson completion write
type CompletionResult struct {
	Success  bool `json:"success"`
	Progress int  `json:"progress"`
}

type ProgressRepository interface {
	// GetUserCourseProgress at most one record, nil when the user never
	// completed anything in the course
	GetUserCourseProgress(ctx context.Context, userID, courseID string) (*UserCourseProgressModel, error)
	GetUserPathProgress(ctx context.Context, userID, pathID string) (*UserPathProgressModel, error)
	SaveCourseProgress(ctx context.Context, m *UserCourseProgressModel) error
	UpdateCourseProgress(ctx context.Context, m *UserCourseProgressModel) error
}

type ProgressUseCase interface {
	GetUserCourseProgress(ctx context.Context, userID, courseID string) (*UserCourseProgressModel, error)
	GetUserPathProgress(ctx context.Context, userID, pathID string) (*UserPathProgressModel, error)
	MarkLessonCompleted(ctx context.Context, userID, courseID, lessonID string) (*CompletionResult, error)
}
