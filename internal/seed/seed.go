package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/repositories"
	"github.com/studyportal/backend/internal/config"
	"github.com/studyportal/backend/internal/pkg/auth"
)

// CreateDefaultData bootstraps the one seeded admin account if it does not
// exist yet. The password defaults to the historical value but can be
// overridden through the environment.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	existing, err := userRepo.GetByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("error checking for admin account: %w", err)
	}
	if existing != nil {
		lgr.Debug().Msg("Admin account already present, skipping seed")
		return nil
	}

	password := config.GetEnv("ADMIN_PASSWORD", "admin123")
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@gmail.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Int64("userID", admin.ID).Msg("Seeded default admin account")
	return nil
}
