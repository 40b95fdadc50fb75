// Package repositories provides the typed data-access layer. Every entity
// gets one repository mapping directly to single SQL statements; integrity
// rules live here rather than scattered across handlers.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyportal/backend/internal/app/models"
)

// IUserRepository handles database operations for users
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// IBatchRepository handles database operations for batches
type IBatchRepository interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetByDepartment(ctx context.Context, department string) ([]models.Batch, error)
}

// ISubjectRepository handles database operations for subjects
type ISubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetByFilter(ctx context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error)
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// IMaterialRepository handles database operations for materials
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	GetBySubjectID(ctx context.Context, subjectID int64) ([]models.Material, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories is the container for all repository instances
type Repositories struct {
	UserRepository     IUserRepository
	BatchRepository    IBatchRepository
	SubjectRepository  ISubjectRepository
	MaterialRepository IMaterialRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		BatchRepository:    NewBatchRepository(db),
		SubjectRepository:  NewSubjectRepository(db),
		MaterialRepository: NewMaterialRepository(db),
	}
}
