package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/app/repositories"
	"github.com/studyportal/backend/internal/pkg/apperrors"
	"github.com/studyportal/backend/internal/pkg/auth"
	"github.com/studyportal/backend/internal/pkg/dberrors"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new account with a salted password hash. There is no
// uniqueness pre-check; a duplicate username or email comes back from the
// store as a unique violation and is surfaced as ErrUserAlreadyExists.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleStudent,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			s.logger.Warn().Str("username", req.Username).Msg("Signup conflict on username or email")
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and returns the stored user. Unknown username
// and wrong password both map to ErrInvalidCredentials; the caller cannot
// tell the two apart.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User logged in")
	return user, nil
}
