package course

import (
	"context"
	"encoding/json"
	"time"

	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
	"go.elastic.co/apm"
)

// featuredLimit number of courses on the landing page
const featuredLimit = 4

const featuredCacheKey = "courses:featured"
const featuredCacheTTL = time.Minute

// CourseUseCaseImpl ...
type CourseUseCaseImpl struct {
	CourseRepository domain.CourseRepository
	KVStore          driver.KeyValueDB
}

var _ domain.CourseUseCase = &CourseUseCaseImpl{}

// NewCourseUseCase ...
func NewCourseUseCase(
	CourseRepository domain.CourseRepository,
	KVStore driver.KeyValueDB,
) *CourseUseCaseImpl {
	return &CourseUseCaseImpl{
		CourseRepository: CourseRepository,
		KVStore:          KVStore,
	}
}

// GetFeaturedCourses top recently updated courses, served from the KV cache
// when fresh
func (cu *CourseUseCaseImpl) GetFeaturedCourses(ctx context.Context) ([]*domain.CourseModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "CourseUseCaseImpl.GetFeaturedCourses", "service")
	defer apmSpan.End()

	if cached, err := cu.KVStore.Get(featuredCacheKey); err == nil && cached != "" {
		var result []*domain.CourseModel
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		// fall through on a corrupt entry, the next write repairs it
	}

	result, err := cu.CourseRepository.GetFeaturedCourses(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	for _, e := range result {
		e.Timestamp = e.UpdatedAt.Unix() * 1e3 // milliseconds
	}
	if encoded, err := json.Marshal(result); err == nil {
		cu.KVStore.SetEX(featuredCacheKey, string(encoded), featuredCacheTTL)
	}
	return result, nil
}

// GetCourseByID single course, nil when the id is unknown
func (cu *CourseUseCaseImpl) GetCourseByID(ctx context.Context, id string) (*domain.CourseModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "CourseUseCaseImpl.GetCourseByID", "service")
	defer apmSpan.End()

	course, err := cu.CourseRepository.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course != nil {
		course.Timestamp = course.UpdatedAt.Unix() * 1e3 // milliseconds
	}
	return course, nil
}
