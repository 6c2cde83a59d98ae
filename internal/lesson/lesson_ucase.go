package lesson

import (
	"context"

	"github.com/linguamap/linguamap/internal/domain"
	"go.elastic.co/apm"
)

// LessonUseCaseImpl ...
type LessonUseCaseImpl struct {
	LessonRepository domain.LessonRepository
}

var _ domain.LessonUseCase = &LessonUseCaseImpl{}

// NewLessonUseCase ...
func NewLessonUseCase(
	LessonRepository domain.LessonRepository,
) *LessonUseCaseImpl {
	return &LessonUseCaseImpl{LessonRepository}
}

// GetCourseLessons lessons of a course in playback order
func (lu *LessonUseCaseImpl) GetCourseLessons(ctx context.Context, courseID string) ([]*domain.LessonModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LessonUseCaseImpl.GetCourseLessons", "service")
	defer apmSpan.End()

	return lu.LessonRepository.GetCourseLessons(ctx, courseID)
}

// GetLessonByID lesson with its block sequence, nil when the id is unknown
func (lu *LessonUseCaseImpl) GetLessonByID(ctx context.Context, id string) (*domain.LessonModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LessonUseCaseImpl.GetLessonByID", "service")
	defer apmSpan.End()

	return lu.LessonRepository.GetLessonByID(ctx, id)
}
