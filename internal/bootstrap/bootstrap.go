package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studyportal/backend/internal/app/controllers"
	appMigrations "github.com/studyportal/backend/internal/app/migrations"
	appRepos "github.com/studyportal/backend/internal/app/repositories"
	appRoutes "github.com/studyportal/backend/internal/app/routes"
	appServices "github.com/studyportal/backend/internal/app/services"
	"github.com/studyportal/backend/internal/config"
	"github.com/studyportal/backend/internal/db"
	appMiddleware "github.com/studyportal/backend/internal/middleware"
	pkgAuth "github.com/studyportal/backend/internal/pkg/auth"
	"github.com/studyportal/backend/internal/pkg/filestorage"
	"github.com/studyportal/backend/internal/pkg/logger"
	"github.com/studyportal/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	BatchService       appServices.BatchService
	SubjectService     appServices.SubjectService
	MaterialService    appServices.MaterialService
	AuthController     *appControllers.AuthController
	SessionController  *appControllers.SessionController
	BatchController    *appControllers.BatchController
	SubjectController  *appControllers.SubjectController
	MaterialController *appControllers.MaterialController
	SessionMiddleware  *appMiddleware.SessionMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	FileStorage        *filestorage.LocalStorage
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but keep starting up
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    cfg.SessionExpiration(),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.BatchService = appServices.NewBatchService(deps.Repos.BatchRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.MaterialService = appServices.NewMaterialService(
		deps.Repos.MaterialRepository,
		deps.Repos.SubjectRepository,
		deps.FileStorage,
		lgr,
	)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.JWTService, cfg.Session.CookieName)

	cookieMaxAge := int(cfg.SessionExpiration().Seconds())
	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		deps.JWTService,
		cfg.Session.CookieName,
		cookieMaxAge,
		lgr,
	)
	deps.SessionController = appControllers.NewSessionController(
		deps.JWTService,
		cfg.Session.CookieName,
		cookieMaxAge,
		lgr,
	)
	deps.BatchController = appControllers.NewBatchController(deps.BatchService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService, deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SessionController,
		deps.BatchController,
		deps.SubjectController,
		deps.MaterialController,
		deps.SessionMiddleware,
	)

	return router
}
