package domain

import (
	"context"
	"time"
)

// LearningPathModel ordered bundle of courses. CourseIDs is the canonical
// display and progress order.
type LearningPathModel struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CourseIDs   []string   `json:"courseIds"`
	CreatedAt   *time.Time `json:"-"`
	UpdatedAt   *time.Time `json:"-"`
}

// LearningPathDetail path plus its course documents resolved in path order
type LearningPathDetail struct {
	Path    *LearningPathModel `json:"path"`
	Courses []*CourseModel     `json:"courses"`
}

type LearningPathRepository interface {
	// GetLearningPaths all paths ascending by creation order
	GetLearningPaths(ctx context.Context) ([]*LearningPathModel, error)
	GetLearningPathByID(ctx context.Context, id string) (*LearningPathModel, error)
}

type LearningPathUseCase interface {
	GetLearningPaths(ctx context.Context) ([]*LearningPathModel, error)
	GetLearningPathDetail(ctx context.Context, id string) (*LearningPathDetail, error)
}
