package domain

import (
	"context"
	"time"
)

// course difficulty levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type CourseModel struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Level       string     `json:"level"`
	CreatedAt   *time.Time `json:"-"`
	UpdatedAt   *time.Time `json:"-"`
	Timestamp   int64      `json:"timestamp"`
}

type CourseRepository interface {
	GetFeaturedCourses(ctx context.Context, limit int) ([]*CourseModel, error)
	GetCourseByID(ctx context.Context, id string) (*CourseModel, error)
	GetCoursesByIDs(ctx context.Context, ids []string) ([]*CourseModel, error)
}

type CourseUseCase interface {
	GetFeaturedCourses(ctx context.Context) ([]*CourseModel, error)
	GetCourseByID(ctx context.Context, id string) (*CourseModel, error)
}
