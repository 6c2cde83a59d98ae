package path

import (
	"context"

	"github.com/linguamap/linguamap/internal/domain"
	"go.elastic.co/apm"
)

// LearningPathUseCaseImpl ...
type LearningPathUseCaseImpl struct {
	PathRepository   domain.LearningPathRepository
	CourseRepository domain.CourseRepository
}

var _ domain.LearningPathUseCase = &LearningPathUseCaseImpl{}

// NewLearningPathUseCase ...
func NewLearningPathUseCase(
	PathRepository domain.LearningPathRepository,
	CourseRepository domain.CourseRepository,
) *LearningPathUseCaseImpl {
	return &LearningPathUseCaseImpl{
		PathRepository:   PathRepository,
		CourseRepository: CourseRepository,
	}
}

// GetLearningPaths all paths in creation order
func (pu *LearningPathUseCaseImpl) GetLearningPaths(ctx context.Context) ([]*domain.LearningPathModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LearningPathUseCaseImpl.GetLearningPaths", "service")
	defer apmSpan.End()

	return pu.PathRepository.GetLearningPaths(ctx)
}

// GetLearningPathDetail path plus its course documents. The course fetch
// does not guarantee order, the result is realigned to the path's canonical
// course order, dropping ids that no longer resolve.
func (pu *LearningPathUseCaseImpl) GetLearningPathDetail(ctx context.Context, id string) (*domain.LearningPathDetail, error) {
	apmSpan, _ := apm.StartSpan(ctx, "LearningPathUseCaseImpl.GetLearningPathDetail", "service")
	defer apmSpan.End()

	path, err := pu.PathRepository.GetLearningPathByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, nil
	}

	courses, err := pu.CourseRepository.GetCoursesByIDs(ctx, path.CourseIDs)
	if err != nil {
		return nil, err
	}
	return &domain.LearningPathDetail{
		Path:    path,
		Courses: orderByPath(path.CourseIDs, courses),
	}, nil
}

func orderByPath(order []string, courses []*domain.CourseModel) []*domain.CourseModel {
	byID := make(map[string]*domain.CourseModel, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	result := make([]*domain.CourseModel, 0, len(courses))
	for _, id := range order {
		if c, ok := byID[id]; ok {
			result = append(result, c)
		}
	}
	return result
}
