package services

import (
	"context"
	"fmt"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/repositories"
)

// BatchService defines the interface for batch operations
type BatchService interface {
	CreateBatch(ctx context.Context, name, department string) (*models.Batch, error)
	ListByDepartment(ctx context.Context, department string) ([]models.Batch, error)
}

// batchServiceImpl implements BatchService
type batchServiceImpl struct {
	batchRepo repositories.IBatchRepository
}

// NewBatchService creates a new BatchService
func NewBatchService(batchRepo repositories.IBatchRepository) BatchService {
	return &batchServiceImpl{
		batchRepo: batchRepo,
	}
}

// CreateBatch inserts a new batch. No duplicate check is performed.
func (s *batchServiceImpl) CreateBatch(ctx context.Context, name, department string) (*models.Batch, error) {
	batch := &models.Batch{
		Name:       name,
		Department: department,
	}

	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("error creating batch: %w", err)
	}

	return batch, nil
}

// ListByDepartment returns the batches for the session's department. An
// empty department matches nothing and returns an empty list.
func (s *batchServiceImpl) ListByDepartment(ctx context.Context, department string) ([]models.Batch, error) {
	batches, err := s.batchRepo.GetByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("error listing batches: %w", err)
	}

	return batches, nil
}
