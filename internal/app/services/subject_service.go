package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/repositories"
	"github.com/studyportal/backend/internal/pkg/apperrors"
)

// SubjectService defines the interface for subject operations
type SubjectService interface {
	CreateSubject(ctx context.Context, subject *models.Subject) error
	ListSubjects(ctx context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error)
	RenameSubject(ctx context.Context, id int64, name string) error
	DeleteSubject(ctx context.Context, id int64) error
}

// subjectServiceImpl implements SubjectService
type subjectServiceImpl struct {
	subjectRepo repositories.ISubjectRepository
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(subjectRepo repositories.ISubjectRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
	}
}

// CreateSubject inserts a new subject. The batch id is taken as given: no
// existence check against batches.
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) error {
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// ListSubjects returns subjects whose (batch, degree, year, semester) keys
// all match exactly.
func (s *subjectServiceImpl) ListSubjects(ctx context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error) {
	subjects, err := s.subjectRepo.GetByFilter(ctx, batchID, degree, year, semester)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}

	return subjects, nil
}

// RenameSubject trims the submitted name and updates the subject in place.
// A name that is empty after trimming is rejected before any write.
func (s *subjectServiceImpl) RenameSubject(ctx context.Context, id int64, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.ErrInvalidSubjectName
	}

	if err := s.subjectRepo.UpdateName(ctx, id, trimmed); err != nil {
		return fmt.Errorf("error renaming subject: %w", err)
	}

	return nil
}

// DeleteSubject deletes the subject row only. Materials attached to it are
// left in place together with their files; there is no cascade.
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	return nil
}
