package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyportal/backend/internal/app/models"
)

// BatchRepository handles database operations for batches
type BatchRepository struct {
	db *pgxpool.Pool
}

// NewBatchRepository creates a new batch repository
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{
		db: db,
	}
}

// Create inserts a new batch. No duplicate check: two batches may share a
// name within a department.
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	query := `
		INSERT INTO batches (name, department)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, batch.Name, batch.Department).Scan(&batch.ID)
	if err != nil {
		return fmt.Errorf("error creating batch: %w", err)
	}

	return nil
}

// GetByDepartment retrieves all batches for a department (exact string
// match), ordered by id for deterministic listings.
func (r *BatchRepository) GetByDepartment(ctx context.Context, department string) ([]models.Batch, error) {
	query := `
		SELECT id, name, department
		FROM batches
		WHERE department = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []models.Batch
	for rows.Next() {
		var batch models.Batch
		if err := rows.Scan(&batch.ID, &batch.Name, &batch.Department); err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
