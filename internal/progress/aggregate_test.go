package progress

import (
	"context"
	"fmt"
	"testing"

	"github.com/linguamap/linguamap/internal/domain"
)

func lessonList(ids ...string) []*domain.LessonModel {
	lessons := make([]*domain.LessonModel, len(ids))
	for i, id := range ids {
		lessons[i] = &domain.LessonModel{ID: id, CourseID: "course-1", OrderIndex: i}
	}
	return lessons
}

func TestComputeNextLesson(t *testing.T) {
	tests := []struct {
		name      string
		lessons   []*domain.LessonModel
		completed []string
		status    string
		next      string
	}{
		{"no lessons yet", nil, []string{"l9"}, StatusLoading, ""},
		{"nothing completed", lessonList("l1", "l2", "l3"), nil, StatusNotStarted, "l1"},
		{"first completed", lessonList("l1", "l2", "l3"), []string{"l1"}, StatusInProgress, "l2"},
		{"gap in the middle", lessonList("l1", "l2", "l3"), []string{"l1", "l3"}, StatusInProgress, "l2"},
		{"all completed points back for review", lessonList("l1", "l2", "l3"), []string{"l1", "l2", "l3"}, StatusCompleted, "l1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeNextLesson(tt.lessons, tt.completed)
			if got.Status != tt.status {
				t.Fatalf("expected status %q, got %q", tt.status, got.Status)
			}
			if got.NextLessonID != tt.next {
				t.Fatalf("expected next lesson %q, got %q", tt.next, got.NextLessonID)
			}
		})
	}
}

func TestComputeCourseProgress(t *testing.T) {
	tests := []struct {
		completed int
		total     int
		want      int
	}{
		{2, 4, 50},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{0, 5, 0},
	}
	for _, tt := range tests {
		got, err := ComputeCourseProgress(tt.completed, tt.total)
		if err != nil {
			t.Fatalf("(%d/%d): unexpected error: %v", tt.completed, tt.total, err)
		}
		if got != tt.want {
			t.Fatalf("(%d/%d): expected %d, got %d", tt.completed, tt.total, tt.want, got)
		}
	}
}

func TestComputeCourseProgress_EmptyCourseRejected(t *testing.T) {
	if _, err := ComputeCourseProgress(0, 0); err != domain.ErrCourseHasNoLessons {
		t.Fatalf("expected ErrCourseHasNoLessons, got %v", err)
	}
}

// in-memory repository fakes for the use case tests

type fakeProgressRepo struct {
	records map[string]*domain.UserCourseProgressModel
	saves   int
	updates int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*domain.UserCourseProgressModel)}
}

func progressKey(userID, courseID string) string {
	return userID + "/" + courseID
}

func (f *fakeProgressRepo) GetUserCourseProgress(ctx context.Context, userID, courseID string) (*domain.UserCourseProgressModel, error) {
	return f.records[progressKey(userID, courseID)], nil
}

func (f *fakeProgressRepo) GetUserPathProgress(ctx context.Context, userID, pathID string) (*domain.UserPathProgressModel, error) {
	return nil, nil
}

func (f *fakeProgressRepo) SaveCourseProgress(ctx context.Context, m *domain.UserCourseProgressModel) error {
	f.saves++
	f.records[progressKey(m.UserID, m.CourseID)] = m
	return nil
}

func (f *fakeProgressRepo) UpdateCourseProgress(ctx context.Context, m *domain.UserCourseProgressModel) error {
	f.updates++
	f.records[progressKey(m.UserID, m.CourseID)] = m
	return nil
}

type fakeLessonRepo struct {
	lessons []*domain.LessonModel
}

func (f *fakeLessonRepo) GetCourseLessons(ctx context.Context, courseID string) ([]*domain.LessonModel, error) {
	return f.lessons, nil
}

func (f *fakeLessonRepo) GetLessonByID(ctx context.Context, id string) (*domain.LessonModel, error) {
	for _, l := range f.lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLessonRepo) CountCourseLessons(ctx context.Context, courseID string) (int, error) {
	return len(f.lessons), nil
}

type sequenceGenerator struct {
	n int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

func newUseCase(lessons ...string) (*ProgressUseCaseImpl, *fakeProgressRepo) {
	repo := newFakeProgressRepo()
	ucase := NewProgressUseCase(repo, &fakeLessonRepo{lessons: lessonList(lessons...)}, &sequenceGenerator{})
	return ucase, repo
}

func TestMarkLessonCompleted_CreatesRecordOnFirstCompletion(t *testing.T) {
	ucase, repo := newUseCase("l1", "l2", "l3", "l4")

	result, err := ucase.MarkLessonCompleted(context.Background(), "u1", "course-1", "l1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Progress != 25 {
		t.Fatalf("expected success with 25%%, got %+v", result)
	}
	if repo.saves != 1 || repo.updates != 0 {
		t.Fatalf("first completion must insert, saves=%d updates=%d", repo.saves, repo.updates)
	}

	record, _ := repo.GetUserCourseProgress(context.Background(), "u1", "course-1")
	if record == nil || record.LastAccessedAt == nil {
		t.Fatalf("record missing or lastAccessedAt unset: %+v", record)
	}
}

func TestMarkLessonCompleted_Idempotent(t *testing.T) {
	ucase, repo := newUseCase("l1", "l2")

	first, err := ucase.MarkLessonCompleted(context.Background(), "u1", "course-1", "l1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ucase.MarkLessonCompleted(context.Background(), "u1", "course-1", "l1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Progress != 50 || second.Progress != 50 {
		t.Fatalf("progress must be unchanged on repeat: %d then %d", first.Progress, second.Progress)
	}
	record, _ := repo.GetUserCourseProgress(context.Background(), "u1", "course-1")
	if len(record.CompletedLessons) != 1 {
		t.Fatalf("completed set must stay deduplicated, got %v", record.CompletedLessons)
	}
	if repo.saves != 1 {
		t.Fatalf("repeat completion must never create a second record, saves=%d", repo.saves)
	}
}

func TestMarkLessonCompleted_FullCourseSetsCompletedAt(t *testing.T) {
	ucase, repo := newUseCase("l1", "l2")

	if _, err := ucase.MarkLessonCompleted(context.Background(), "u1", "course-1", "l1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := ucase.MarkLessonCompleted(context.Background(), "u1", "course-1", "l2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Progress != 100 {
		t.Fatalf("expected 100%%, got %d", result.Progress)
	}

	record, _ := repo.GetUserCourseProgress(context.Background(), "u1", "course-1")
	if record.CompletedAt == nil {
		t.Fatalf("completedAt must be set once the course is done")
	}
}

func TestMarkLessonCompleted_EmptyCourseLeavesProgressUntouched(t *testing.T) {
	ucase, repo := newUseCase()

	result, err := ucase.MarkLessonCompleted(context.Background(), "u1", "course-1", "l1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Progress != 0 {
		t.Fatalf("empty course must report unchanged progress, got %+v", result)
	}
	if repo.saves != 0 || repo.updates != 0 {
		t.Fatalf("empty course must not write")
	}
}

func TestMarkLessonCompleted_RequiresIdentity(t *testing.T) {
	ucase, repo := newUseCase("l1")

	if _, err := ucase.MarkLessonCompleted(context.Background(), "", "course-1", "l1"); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if repo.saves != 0 || repo.updates != 0 {
		t.Fatalf("unauthenticated call must not mutate state")
	}
}
