package lesson

import (
	"context"
	"encoding/json"

	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
)

type LessonRepository struct {
	Conn driver.ITransactionalDB
}

var _ domain.LessonRepository = &LessonRepository{}

func NewLessonRepository(Conn driver.ITransactionalDB) *LessonRepository {
	return &LessonRepository{
		Conn: Conn,
	}
}

// GetCourseLessons lessons of a course in order_index order. order_index is
// unique within a course, the ordering is total.
func (repo *LessonRepository) GetCourseLessons(ctx context.Context, courseID string) ([]*domain.LessonModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, course_id, title, order_index, content, created_at, updated_at
FROM
    lesson
WHERE
    course_id = $1
ORDER BY order_index ASC
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.LessonModel
	for rows.Next() {
		item, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (repo *LessonRepository) GetLessonByID(ctx context.Context, id string) (*domain.LessonModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, course_id, title, order_index, content, created_at, updated_at
FROM
    lesson
WHERE
    id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		return scanLesson(rows)
	}
	return nil, nil
}

func (repo *LessonRepository) CountCourseLessons(ctx context.Context, courseID string) (int, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    COUNT(*)
FROM
    lesson
WHERE
    course_id = $1
	`, courseID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func scanLesson(rows driver.ISQLRows) (*domain.LessonModel, error) {
	item := new(domain.LessonModel)
	var content []byte
	if err := rows.Scan(&item.ID, &item.CourseID, &item.Title, &item.OrderIndex,
		&content, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if len(content) > 0 {
		item.Content = new(domain.LessonContentModel)
		if err := json.Unmarshal(content, item.Content); err != nil {
			return nil, err
		}
	}
	return item, nil
}
