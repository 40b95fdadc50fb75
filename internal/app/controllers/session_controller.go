package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/middleware"
	"github.com/studyportal/backend/internal/pkg/auth"
)

// SessionController serves the navigation pages and the department
// selection, which lives in the session rather than the database.
type SessionController struct {
	jwtService   *auth.JWTService
	cookieName   string
	cookieMaxAge int
	logger       zerolog.Logger
}

// NewSessionController creates a new SessionController
func NewSessionController(jwtService *auth.JWTService, cookieName string, cookieMaxAge int, logger zerolog.Logger) *SessionController {
	return &SessionController{
		jwtService:   jwtService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		logger:       logger,
	}
}

// Landing serves the landing view payload
// @Summary Landing page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *SessionController) Landing(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "landing"})
}

// Main serves the main view payload
// @Summary Main page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]string
// @Router /main [get]
func (c *SessionController) Main(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "main"})
}

// DepartmentPage serves the department selection view payload
// @Summary Department selection page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]string
// @Router /department [get]
func (c *SessionController) DepartmentPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "department"})
}

// SaveDepartment stores the department selection in the session cookie
// @Summary Save department selection
// @Description Re-issues the session cookie with the department claim set. The value is not validated against known departments.
// @Tags pages
// @Accept json
// @Param request body dto.SaveDepartmentRequest true "Department selection"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Router /save-department [post]
func (c *SessionController) SaveDepartment(ctx *gin.Context) {
	var req dto.SaveDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	// Anonymous selections are allowed: the claims may carry a department
	// and nothing else
	claims := middleware.SessionClaims(ctx)
	claims.Department = req.Department

	token, err := c.jwtService.GenerateToken(claims)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to sign session token")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
		return
	}

	setSessionCookie(ctx, c.cookieName, token, c.cookieMaxAge)
	ctx.Status(http.StatusNoContent)
}

// Home serves the home view payload with the session department
// @Summary Home page
// @Tags pages
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /home [get]
func (c *SessionController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HomeResponse{
		Page:       "home",
		Department: ctx.GetString(middleware.CtxDepartment),
	})
}
