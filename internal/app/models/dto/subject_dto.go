package dto

import "github.com/studyportal/backend/internal/app/models"

// EditSubjectRequest carries the new name for a subject
type EditSubjectRequest struct {
	Name string `json:"name"`
}

// SubjectListResponse is the view payload for the filtered subject listing
type SubjectListResponse struct {
	Subjects []models.Subject `json:"subjects"`
	BatchID  int64            `json:"batchId"`
	Degree   string           `json:"degree"`
	Year     string           `json:"year"`
	Semester string           `json:"sem"`
}

// CoursePageResponse is the view payload for the course selection page
type CoursePageResponse struct {
	Page    string `json:"page" example:"course"`
	BatchID int64  `json:"batchId"`
}
