package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyportal/backend/internal/app/models"
)

// MaterialRepository handles database operations for materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
	}
}

// Create inserts a new material row. The referenced subject is not checked
// for existence.
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (subject_id, title, file_path, file_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		material.SubjectID, material.Title, material.FilePath, material.FileName).Scan(&material.ID)
	if err != nil {
		return fmt.Errorf("error creating material: %w", err)
	}

	return nil
}

// GetByID retrieves a material by ID. Returns (nil, nil) when no material
// matches.
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	query := `
		SELECT id, subject_id, title, file_path, file_name
		FROM materials
		WHERE id = $1
	`

	var material models.Material
	err := r.db.QueryRow(ctx, query, id).Scan(
		&material.ID,
		&material.SubjectID,
		&material.Title,
		&material.FilePath,
		&material.FileName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving material: %w", err)
	}

	return &material, nil
}

// GetBySubjectID retrieves all materials attached to a subject, ordered by
// id for deterministic listings.
func (r *MaterialRepository) GetBySubjectID(ctx context.Context, subjectID int64) ([]models.Material, error) {
	query := `
		SELECT id, subject_id, title, file_path, file_name
		FROM materials
		WHERE subject_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var material models.Material
		if err := rows.Scan(
			&material.ID,
			&material.SubjectID,
			&material.Title,
			&material.FilePath,
			&material.FileName,
		); err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// Delete deletes the material row by id
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM materials WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}

	return nil
}
