package domain

import (
	"context"
	"encoding/json"
	"time"
)

// LessonBlockModel is one unit inside a lesson. Content shape depends on
// Type and is decoded lazily by the player, an unknown Type is still a
// valid block at this level.
type LessonBlockModel struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Content  json.RawMessage        `json:"content"`
}

// LessonContentModel typed block sequence stored in the lesson content column
type LessonContentModel struct {
	Type   string              `json:"type"`
	Blocks []*LessonBlockModel `json:"blocks"`
}

type LessonModel struct {
	ID         string              `json:"id"`
	CourseID   string              `json:"courseId"`
	Title      string              `json:"title"`
	OrderIndex int                 `json:"orderIndex"`
	Content    *LessonContentModel `json:"content,omitempty"`
	CreatedAt  *time.Time          `json:"-"`
	UpdatedAt  *time.Time          `json:"-"`
}

type LessonRepository interface {
	// GetCourseLessons lessons ordered by order_index ascending
	GetCourseLessons(ctx context.Context, courseID string) ([]*LessonModel, error)
	GetLessonByID(ctx context.Context, id string) (*LessonModel, error)
	CountCourseLessons(ctx context.Context, courseID string) (int, error)
}

type LessonUseCase interface {
	GetCourseLessons(ctx context.Context, courseID string) ([]*LessonModel, error)
	GetLessonByID(ctx context.Context, id string) (*LessonModel, error)
}
