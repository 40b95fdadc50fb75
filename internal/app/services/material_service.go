package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/repositories"
	"github.com/studyportal/backend/internal/pkg/apperrors"
	"github.com/studyportal/backend/internal/pkg/filestorage"
)

// MaterialService defines the interface for material operations
type MaterialService interface {
	ListForSubject(ctx context.Context, subjectID int64) (*models.Subject, []models.Material, error)
	UploadMaterial(ctx context.Context, subjectID int64, title string, file *multipart.FileHeader) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id int64) error
	GetMaterial(ctx context.Context, id int64) (*models.Material, error)
}

// materialServiceImpl implements MaterialService
type materialServiceImpl struct {
	materialRepo repositories.IMaterialRepository
	subjectRepo  repositories.ISubjectRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo repositories.IMaterialRepository,
	subjectRepo repositories.ISubjectRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) MaterialService {
	return &materialServiceImpl{
		materialRepo: materialRepo,
		subjectRepo:  subjectRepo,
		storage:      storage,
		logger:       logger,
	}
}

// ListForSubject returns the subject's own record together with its
// materials. The subject may be nil when the id references nothing; the
// materials list is returned regardless, so orphaned rows still show up.
func (s *materialServiceImpl) ListForSubject(ctx context.Context, subjectID int64) (*models.Subject, []models.Material, error) {
	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	materials, err := s.materialRepo.GetBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing materials: %w", err)
	}

	return subject, materials, nil
}

// UploadMaterial stores the file under a collision-safe key and inserts the
// material row. The client filename is kept only as display metadata. If the
// insert fails after the file was written, the file is removed best-effort.
func (s *materialServiceImpl) UploadMaterial(ctx context.Context, subjectID int64, title string, file *multipart.FileHeader) (*models.Material, error) {
	key, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}

	material := &models.Material{
		SubjectID: subjectID,
		Title:     title,
		FilePath:  key,
		FileName:  file.Filename,
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		if rmErr := s.storage.DeleteFile(key); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("key", key).Msg("Failed to clean up file after insert error")
		}
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	return material, nil
}

// DeleteMaterial removes the row first and the backing file second, so a
// failure between the two leaves an orphaned file rather than a dangling
// row. A missing material id is a no-op. A file-removal failure is logged
// and swallowed; the orphan stays on disk.
func (s *materialServiceImpl) DeleteMaterial(ctx context.Context, id int64) error {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving material: %w", err)
	}
	if material == nil {
		return nil
	}

	if err := s.materialRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}

	if err := s.storage.DeleteFile(material.FilePath); err != nil {
		s.logger.Warn().Err(err).Int64("materialID", id).Str("key", material.FilePath).Msg("Material row deleted but file removal failed, file orphaned")
	}

	return nil
}

// GetMaterial retrieves a material for download
func (s *materialServiceImpl) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving material: %w", err)
	}
	if material == nil {
		return nil, apperrors.ErrMaterialNotFound
	}

	return material, nil
}
