package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyportal/backend/internal/app/models"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create inserts a new subject. The referenced batch is not checked for
// existence; the schema carries no foreign key.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (batch_id, degree, year, semester, name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		subject.BatchID, subject.Degree, subject.Year, subject.Semester, subject.Name).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID. Returns (nil, nil) when no subject
// matches.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, batch_id, degree, year, semester, name
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.BatchID,
		&subject.Degree,
		&subject.Year,
		&subject.Semester,
		&subject.Name,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetByFilter retrieves subjects matching the four-key tuple exactly,
// ordered by id for deterministic listings.
func (r *SubjectRepository) GetByFilter(ctx context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error) {
	query := `
		SELECT id, batch_id, degree, year, semester, name
		FROM subjects
		WHERE batch_id = $1 AND degree = $2 AND year = $3 AND semester = $4
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, batchID, degree, year, semester)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.BatchID,
			&subject.Degree,
			&subject.Year,
			&subject.Semester,
			&subject.Name,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// UpdateName updates a subject's name in place. Updating a missing id
// affects zero rows and is not treated as an error.
func (r *SubjectRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query := `UPDATE subjects SET name = $1 WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, name, id); err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	return nil
}

// Delete deletes the subject row by id. Dependent materials are not
// cascade-deleted and become orphans.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subjects WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	return nil
}
