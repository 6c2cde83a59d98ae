package path

import (
	"context"
	"testing"

	"github.com/linguamap/linguamap/internal/domain"
)

type fakePathRepo struct {
	path *domain.LearningPathModel
}

func (f *fakePathRepo) GetLearningPaths(ctx context.Context) ([]*domain.LearningPathModel, error) {
	return []*domain.LearningPathModel{f.path}, nil
}

func (f *fakePathRepo) GetLearningPathByID(ctx context.Context, id string) (*domain.LearningPathModel, error) {
	if f.path != nil && f.path.ID == id {
		return f.path, nil
	}
	return nil, nil
}

// fakeCourseRepo returns courses in reversed id order to exercise the
// realignment in the use case
type fakeCourseRepo struct {
	courses map[string]*domain.CourseModel
}

func (f *fakeCourseRepo) GetFeaturedCourses(ctx context.Context, limit int) ([]*domain.CourseModel, error) {
	return nil, nil
}

func (f *fakeCourseRepo) GetCourseByID(ctx context.Context, id string) (*domain.CourseModel, error) {
	return f.courses[id], nil
}

func (f *fakeCourseRepo) GetCoursesByIDs(ctx context.Context, ids []string) ([]*domain.CourseModel, error) {
	var result []*domain.CourseModel
	for i := len(ids) - 1; i >= 0; i-- {
		if c, ok := f.courses[ids[i]]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func TestGetLearningPathDetail_PreservesPathOrder(t *testing.T) {
	pathRepo := &fakePathRepo{path: &domain.LearningPathModel{
		ID:        "p1",
		Title:     "Polish from zero",
		CourseIDs: []string{"c2", "c3", "c1"},
	}}
	courseRepo := &fakeCourseRepo{courses: map[string]*domain.CourseModel{
		"c1": {ID: "c1"},
		"c2": {ID: "c2"},
		"c3": {ID: "c3"},
	}}
	ucase := NewLearningPathUseCase(pathRepo, courseRepo)

	detail, err := ucase.GetLearningPathDetail(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, len(detail.Courses))
	for i, c := range detail.Courses {
		got[i] = c.ID
	}
	want := []string{"c2", "c3", "c1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("course order not preserved: got %v, want %v", got, want)
		}
	}
}

func TestGetLearningPathDetail_SkipsMissingCourses(t *testing.T) {
	pathRepo := &fakePathRepo{path: &domain.LearningPathModel{
		ID:        "p1",
		CourseIDs: []string{"c1", "gone", "c2"},
	}}
	courseRepo := &fakeCourseRepo{courses: map[string]*domain.CourseModel{
		"c1": {ID: "c1"},
		"c2": {ID: "c2"},
	}}
	ucase := NewLearningPathUseCase(pathRepo, courseRepo)

	detail, err := ucase.GetLearningPathDetail(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Courses) != 2 {
		t.Fatalf("expected 2 resolved courses, got %d", len(detail.Courses))
	}
}

func TestGetLearningPathDetail_UnknownPath(t *testing.T) {
	ucase := NewLearningPathUseCase(&fakePathRepo{}, &fakeCourseRepo{})

	detail, err := ucase.GetLearningPathDetail(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail != nil {
		t.Fatalf("unknown path must resolve to nil, got %+v", detail)
	}
}
