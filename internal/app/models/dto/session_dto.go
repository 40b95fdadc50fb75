package dto

// SaveDepartmentRequest carries the department selection stored in the session
type SaveDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
}

// HomeResponse is the view payload for the home page
type HomeResponse struct {
	Page       string `json:"page" example:"home"`
	Department string `json:"department,omitempty" example:"Engineering"`
}
