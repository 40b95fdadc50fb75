package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents a new account registration request
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StatusResponse is the generic {status, redirect} payload the auth and
// signup endpoints answer with. Redirect is empty on failure.
type StatusResponse struct {
	Status   string `json:"status" example:"success"`
	Redirect string `json:"redirect,omitempty" example:"/main"`
}

// StatusSuccess creates a success status pointing the client at a redirect target
func StatusSuccess(redirect string) StatusResponse {
	return StatusResponse{Status: "success", Redirect: redirect}
}

// StatusError creates a generic failure status. No detail is exposed on
// purpose: login does not distinguish unknown-user from bad-password, and
// signup conflicts surface without naming the duplicate column.
func StatusError() StatusResponse {
	return StatusResponse{Status: "error"}
}
