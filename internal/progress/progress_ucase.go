package progress

import (
	"context"
	"time"

	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/uuid"
	"go.elastic.co/apm"
)

// ProgressUseCaseImpl ...
type ProgressUseCaseImpl struct {
	ProgressRepository domain.ProgressRepository
	LessonRepository   domain.LessonRepository
	UUIDGenerator      uuid.Generator
}

var _ domain.ProgressUseCase = &ProgressUseCaseImpl{}

// NewProgressUseCase ...
func NewProgressUseCase(
	ProgressRepository domain.ProgressRepository,
	LessonRepository domain.LessonRepository,
	UUIDGenerator uuid.Generator,
) *ProgressUseCaseImpl {
	return &ProgressUseCaseImpl{
		ProgressRepository: ProgressRepository,
		LessonRepository:   LessonRepository,
		UUIDGenerator:      UUIDGenerator,
	}
}

// GetUserCourseProgress progress record for a (user, course) pair, nil when
// the user has not completed anything in the course
func (pu *ProgressUseCaseImpl) GetUserCourseProgress(ctx context.Context, userID, courseID string) (*domain.UserCourseProgressModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetUserCourseProgress", "service")
	defer apmSpan.End()

	return pu.ProgressRepository.GetUserCourseProgress(ctx, userID, courseID)
}

// GetUserPathProgress progress record for a (user, path) pair
func (pu *ProgressUseCaseImpl) GetUserPathProgress(ctx context.Context, userID, pathID string) (*domain.UserPathProgressModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetUserPathProgress", "service")
	defer apmSpan.End()

	return pu.ProgressRepository.GetUserPathProgress(ctx, userID, pathID)
}

// MarkLessonCompleted idempotent set-union of the lesson into the user's
// completed set, recomputing the percentage from the course's current
// lesson count. The first completion for a (user, course) pair creates the
// record, every later one updates it in place.
func (pu *ProgressUseCaseImpl) MarkLessonCompleted(ctx context.Context, userID, courseID, lessonID string) (*domain.CompletionResult, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.MarkLessonCompleted", "service")
	defer apmSpan.End()

	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	repo := pu.ProgressRepository
	existing, err := repo.GetUserCourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	total, err := pu.LessonRepository.CountCourseLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		// nothing to compute against, report the prior percentage unchanged
		prior := 0
		if existing != nil {
			prior = existing.Progress
		}
		return &domain.CompletionResult{Success: true, Progress: prior}, nil
	}

	var completed []string
	if existing != nil {
		completed = existing.CompletedLessons
	}
	completed = unionLesson(completed, lessonID)

	pct, err := ComputeCourseProgress(len(completed), total)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.CompletedLessons = completed
		existing.Progress = pct
		existing.LastAccessedAt = &now
		if pct >= 100 && existing.CompletedAt == nil {
			existing.CompletedAt = &now
		}
		if err := repo.UpdateCourseProgress(ctx, existing); err != nil {
			return nil, err
		}
		return &domain.CompletionResult{Success: true, Progress: pct}, nil
	}

	id, err := pu.UUIDGenerator.Generate()
	if err != nil {
		return nil, err
	}
	record := &domain.UserCourseProgressModel{
		ID:               id,
		UserID:           userID,
		CourseID:         courseID,
		CompletedLessons: completed,
		Progress:         pct,
		LastAccessedAt:   &now,
	}
	if pct >= 100 {
		record.CompletedAt = &now
	}
	if err := repo.SaveCourseProgress(ctx, record); err != nil {
		return nil, err
	}
	return &domain.CompletionResult{Success: true, Progress: pct}, nil
}
