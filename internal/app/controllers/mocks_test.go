package controllers

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/middleware"
	"github.com/studyportal/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func sessionCookieValue(jwtService *auth.JWTService, claims *auth.SessionClaims) string {
	token, err := jwtService.GenerateToken(claims)
	if err != nil {
		panic(err)
	}
	return token
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

func withSession(router *gin.Engine, jwtService *auth.JWTService) *gin.Engine {
	router.Use(middleware.NewSessionMiddleware(jwtService, "session_token").Load())
	return router
}

// mockAuthService delegates to per-test hooks.
type mockAuthService struct {
	registerFn func(ctx context.Context, req *dto.SignupRequest) (*models.User, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	return m.loginFn(ctx, req)
}

// mockBatchService delegates to per-test hooks.
type mockBatchService struct {
	createFn func(ctx context.Context, name, department string) (*models.Batch, error)
	listFn   func(ctx context.Context, department string) ([]models.Batch, error)
}

func (m *mockBatchService) CreateBatch(ctx context.Context, name, department string) (*models.Batch, error) {
	return m.createFn(ctx, name, department)
}

func (m *mockBatchService) ListByDepartment(ctx context.Context, department string) ([]models.Batch, error) {
	return m.listFn(ctx, department)
}

// mockSubjectService delegates to per-test hooks.
type mockSubjectService struct {
	createFn func(ctx context.Context, subject *models.Subject) error
	listFn   func(ctx context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error)
	renameFn func(ctx context.Context, id int64, name string) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockSubjectService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return m.createFn(ctx, subject)
}

func (m *mockSubjectService) ListSubjects(ctx context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error) {
	return m.listFn(ctx, batchID, degree, year, semester)
}

func (m *mockSubjectService) RenameSubject(ctx context.Context, id int64, name string) error {
	return m.renameFn(ctx, id, name)
}

func (m *mockSubjectService) DeleteSubject(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockMaterialService delegates to per-test hooks.
type mockMaterialService struct {
	listFn   func(ctx context.Context, subjectID int64) (*models.Subject, []models.Material, error)
	uploadFn func(ctx context.Context, subjectID int64, title string, file *multipart.FileHeader) (*models.Material, error)
	deleteFn func(ctx context.Context, id int64) error
	getFn    func(ctx context.Context, id int64) (*models.Material, error)
}

func (m *mockMaterialService) ListForSubject(ctx context.Context, subjectID int64) (*models.Subject, []models.Material, error) {
	return m.listFn(ctx, subjectID)
}

func (m *mockMaterialService) UploadMaterial(ctx context.Context, subjectID int64, title string, file *multipart.FileHeader) (*models.Material, error) {
	return m.uploadFn(ctx, subjectID, title, file)
}

func (m *mockMaterialService) DeleteMaterial(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockMaterialService) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	return m.getFn(ctx, id)
}
