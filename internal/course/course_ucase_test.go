package course

import (
	"context"
	"testing"
	"time"

	"github.com/linguamap/linguamap/internal/domain"
)

type fakeCourseRepo struct {
	courses []*domain.CourseModel
	queries int
}

func (f *fakeCourseRepo) GetFeaturedCourses(ctx context.Context, limit int) ([]*domain.CourseModel, error) {
	f.queries++
	if len(f.courses) > limit {
		return f.courses[:limit], nil
	}
	return f.courses, nil
}

func (f *fakeCourseRepo) GetCourseByID(ctx context.Context, id string) (*domain.CourseModel, error) {
	f.queries++
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseRepo) GetCoursesByIDs(ctx context.Context, ids []string) ([]*domain.CourseModel, error) {
	var result []*domain.CourseModel
	for _, id := range ids {
		if c, _ := f.GetCourseByID(ctx, id); c != nil {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakeKV struct {
	store map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{store: make(map[string]string)}
}

func (f *fakeKV) SetEX(key string, value string, expiration time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeKV) Get(key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeKV) Exists(key string) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

func (f *fakeKV) Ping() error { return nil }

func testCourses(n int) []*domain.CourseModel {
	now := time.Now()
	courses := make([]*domain.CourseModel, n)
	for i := range courses {
		courses[i] = &domain.CourseModel{
			ID:        string(rune('a' + i)),
			Title:     "course",
			Level:     domain.LevelBeginner,
			CreatedAt: &now,
			UpdatedAt: &now,
		}
	}
	return courses
}

func TestGetFeaturedCourses_CachesResult(t *testing.T) {
	repo := &fakeCourseRepo{courses: testCourses(6)}
	kv := newFakeKV()
	uc := NewCourseUseCase(repo, kv)

	first, err := uc.GetFeaturedCourses(context.Background())
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if len(first) != featuredLimit {
		t.Fatalf("expected %d featured courses, got %d", featuredLimit, len(first))
	}
	if repo.queries != 1 {
		t.Fatalf("expected 1 repository query, got %d", repo.queries)
	}

	second, err := uc.GetFeaturedCourses(context.Background())
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if repo.queries != 1 {
		t.Fatalf("expected cache hit, repository queried %d times", repo.queries)
	}
	if len(second) != len(first) {
		t.Fatalf("cached result differs, %d vs %d entries", len(second), len(first))
	}
}

func TestGetFeaturedCourses_CorruptCacheFallsThrough(t *testing.T) {
	repo := &fakeCourseRepo{courses: testCourses(2)}
	kv := newFakeKV()
	kv.store[featuredCacheKey] = "{not json"
	uc := NewCourseUseCase(repo, kv)

	result, err := uc.GetFeaturedCourses(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(result))
	}
	if repo.queries != 1 {
		t.Fatalf("expected repository query on corrupt entry, got %d", repo.queries)
	}
}

func TestGetFeaturedCourses_PopulatesTimestamp(t *testing.T) {
	repo := &fakeCourseRepo{courses: testCourses(1)}
	uc := NewCourseUseCase(repo, newFakeKV())

	result, err := uc.GetFeaturedCourses(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	want := result[0].UpdatedAt.Unix() * 1e3
	if result[0].Timestamp != want {
		t.Fatalf("expected timestamp %d, got %d", want, result[0].Timestamp)
	}
}

func TestGetCourseByID_UnknownIDIsNil(t *testing.T) {
	repo := &fakeCourseRepo{courses: testCourses(1)}
	uc := NewCourseUseCase(repo, newFakeKV())

	course, err := uc.GetCourseByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if course != nil {
		t.Fatalf("expected nil course, got %+v", course)
	}
}
