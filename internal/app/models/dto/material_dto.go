package dto

import "github.com/studyportal/backend/internal/app/models"

// MaterialListResponse is the view payload for the materials page. Subject is
// nil when the id references no subject; the page then renders empty. Role is
// exposed so the view can conditionally show admin controls.
type MaterialListResponse struct {
	Subject   *models.Subject   `json:"subject"`
	Materials []models.Material `json:"materials"`
	Role      string            `json:"role,omitempty"`
}
