package progress

import (
	"context"
	"encoding/json"

	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
)

type ProgressRepository struct {
	Conn driver.ITransactionalDB
}

var _ domain.ProgressRepository = &ProgressRepository{}

func NewProgressRepository(Conn driver.ITransactionalDB) *ProgressRepository {
	return &ProgressRepository{
		Conn: Conn,
	}
}

func (repo *ProgressRepository) GetUserCourseProgress(ctx context.Context, userID, courseID string) (*domain.UserCourseProgressModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, user_id, course_id, completed_lessons, progress, last_accessed_at, completed_at
FROM
    user_course_progress
WHERE
    user_id = $1 AND course_id = $2
	`, userID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		item := new(domain.UserCourseProgressModel)
		var completed []byte
		if err := rows.Scan(&item.ID, &item.UserID, &item.CourseID, &completed,
			&item.Progress, &item.LastAccessedAt, &item.CompletedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(completed, &item.CompletedLessons); err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, nil
}

func (repo *ProgressRepository) GetUserPathProgress(ctx context.Context, userID, pathID string) (*domain.UserPathProgressModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, user_id, path_id, completed_courses, progress, last_accessed_at, completed_at
FROM
    user_path_progress
WHERE
    user_id = $1 AND path_id = $2
	`, userID, pathID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		item := new(domain.UserPathProgressModel)
		var completed []byte
		if err := rows.Scan(&item.ID, &item.UserID, &item.PathID, &completed,
			&item.Progress, &item.LastAccessedAt, &item.CompletedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(completed, &item.CompletedCourses); err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, nil
}

func (repo *ProgressRepository) SaveCourseProgress(ctx context.Context, m *domain.UserCourseProgressModel) error {
	conn := repo.Conn
	completed, err := json.Marshal(m.CompletedLessons)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, `
INSERT INTO user_course_progress
    (id, user_id, course_id, completed_lessons, progress, last_accessed_at, completed_at)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
	`, m.ID, m.UserID, m.CourseID, completed, m.Progress, m.LastAccessedAt, m.CompletedAt)
	return err
}

func (repo *ProgressRepository) UpdateCourseProgress(ctx context.Context, m *domain.UserCourseProgressModel) error {
	conn := repo.Conn
	completed, err := json.Marshal(m.CompletedLessons)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, `
UPDATE user_course_progress
SET completed_lessons = $1,
    progress = $2,
    last_accessed_at = $3,
    completed_at = $4
WHERE id = $5
	`, completed, m.Progress, m.LastAccessedAt, m.CompletedAt, m.ID)
	return err
}
