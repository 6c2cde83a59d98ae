package path

import (
	"context"
	"encoding/json"

	"github.com/linguamap/linguamap/internal/domain"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
)

type LearningPathRepository struct {
	Conn driver.ITransactionalDB
}

var _ domain.LearningPathRepository = &LearningPathRepository{}

func NewLearningPathRepository(Conn driver.ITransactionalDB) *LearningPathRepository {
	return &LearningPathRepository{
		Conn: Conn,
	}
}

func (repo *LearningPathRepository) GetLearningPaths(ctx context.Context) ([]*domain.LearningPathModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, title, description, course_ids, created_at, updated_at
FROM
    learning_path
ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.LearningPathModel
	for rows.Next() {
		item, err := scanPath(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (repo *LearningPathRepository) GetLearningPathByID(ctx context.Context, id string) (*domain.LearningPathModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    id, title, description, course_ids, created_at, updated_at
FROM
    learning_path
WHERE
    id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		return scanPath(rows)
	}
	return nil, nil
}

func scanPath(rows driver.ISQLRows) (*domain.LearningPathModel, error) {
	item := new(domain.LearningPathModel)
	var courseIDs []byte
	if err := rows.Scan(&item.ID, &item.Title, &item.Description, &courseIDs,
		&item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(courseIDs, &item.CourseIDs); err != nil {
		return nil, err
	}
	return item, nil
}
