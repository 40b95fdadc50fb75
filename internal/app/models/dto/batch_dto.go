package dto

import "github.com/studyportal/backend/internal/app/models"

// BatchListResponse is the view payload for the batch listing page
type BatchListResponse struct {
	Batches    []models.Batch `json:"batches"`
	Department string         `json:"department,omitempty"`
}
