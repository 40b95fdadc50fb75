package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/app/services"
	"github.com/studyportal/backend/internal/middleware"
	"github.com/studyportal/backend/internal/pkg/apperrors"
	"github.com/studyportal/backend/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService  services.AuthService
	jwtService   *auth.JWTService
	cookieName   string
	cookieMaxAge int
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, jwtService *auth.JWTService, cookieName string, cookieMaxAge int, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		jwtService:   jwtService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		logger:       logger,
	}
}

// LoginPage serves the login view payload
// @Summary Login page
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /login [get]
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "login"})
}

// RegisterPage serves the registration view payload
// @Summary Registration page
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /register [get]
func (c *AuthController) RegisterPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "register"})
}

// Login authenticates a user and issues the session cookie
// @Summary User login
// @Description Verifies username and password and establishes a session. A bad username and a bad password both answer the same generic error status.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.StatusResponse
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusOK, dto.StatusError())
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.logger.Error().Err(err).Str("username", req.Username).Msg("Login failed unexpectedly")
		}
		ctx.JSON(http.StatusOK, dto.StatusError())
		return
	}

	// Keep the department a returning browser may already have selected
	claims := middleware.SessionClaims(ctx)
	claims.UserID = user.ID
	claims.Username = user.Username
	claims.Role = string(user.Role)

	token, err := c.jwtService.GenerateToken(claims)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to sign session token")
		ctx.JSON(http.StatusOK, dto.StatusError())
		return
	}

	setSessionCookie(ctx, c.cookieName, token, c.cookieMaxAge)
	ctx.JSON(http.StatusOK, dto.StatusSuccess("/main"))
}

// Signup registers a new account
// @Summary Register a new account
// @Description Creates a student account. Duplicate username or email surfaces as a generic error status without detail.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration data"
// @Success 200 {object} dto.StatusResponse
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		ctx.JSON(http.StatusOK, dto.StatusError())
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
			c.logger.Error().Err(err).Str("username", req.Username).Msg("Signup failed unexpectedly")
		}
		ctx.JSON(http.StatusOK, dto.StatusError())
		return
	}

	// Registration does not establish a session; the client logs in next
	ctx.JSON(http.StatusOK, dto.StatusSuccess("/main"))
}

// Logout clears the session cookie
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	setSessionCookie(ctx, c.cookieName, "", -1)
	ctx.JSON(http.StatusOK, dto.StatusSuccess("/"))
}
