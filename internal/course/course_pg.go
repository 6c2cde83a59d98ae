package course

import (
	"context"

	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
)

type CourseRepository struct {
	Conn driver.ITransactionalDB
}

var _ domain.CourseRepository = &CourseRepository{}

func NewCourseRepository(Conn driver.ITransactionalDB) *CourseRepository {
	return &CourseRepository{
		Conn: Conn,
	}
}

func (repo *CourseRepository) GetFeaturedCourses(ctx context.Context, limit int) ([]*domain.CourseModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, title, description, level, created_at, updated_at
FROM
    course
ORDER BY updated_at DESC
LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.CourseModel
	for rows.Next() {
		item := new(domain.CourseModel)
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Level,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (repo *CourseRepository) GetCourseByID(ctx context.Context, id string) (*domain.CourseModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, title, description, level, created_at, updated_at
FROM
    course
WHERE
    id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		item := new(domain.CourseModel)
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Level,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, nil
}

// GetCoursesByIDs fetch existing courses for the given ids. Missing ids are
// skipped, and the result order is not guaranteed to match the input.
func (repo *CourseRepository) GetCoursesByIDs(ctx context.Context, ids []string) ([]*domain.CourseModel, error) {
	var result []*domain.CourseModel
	for _, id := range ids {
		course, err := repo.GetCourseByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if course != nil {
			result = append(result, course)
		}
	}
	return result, nil
}
