package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studyportal/backend/internal/app/controllers"
	"github.com/studyportal/backend/internal/middleware"
)

// SetupRouter configures all application routes. The session middleware runs
// on every route; the admin gate wraps only the mutation endpoints. Nothing
// else is enforced server-side: deep routes work without prior navigation,
// and the download endpoint is deliberately not role-gated.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	sessionController *controllers.SessionController,
	batchController *controllers.BatchController,
	subjectController *controllers.SubjectController,
	materialController *controllers.MaterialController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	router.Use(sessionMiddleware.Load())

	// --- Auth and navigation ---
	router.GET("/", sessionController.Landing)
	router.GET("/login", authController.LoginPage)
	router.POST("/login", authController.Login)
	router.GET("/register", authController.RegisterPage)
	router.POST("/signup", authController.Signup)
	router.POST("/logout", authController.Logout)
	router.GET("/main", sessionController.Main)
	router.GET("/department", sessionController.DepartmentPage)
	router.POST("/save-department", sessionController.SaveDepartment)
	router.GET("/home", sessionController.Home)

	// --- Study material flow ---
	router.GET("/study-material", batchController.StudyMaterial)
	router.GET("/course/:batch_id", subjectController.CoursePage)
	router.POST("/course/:batch_id", subjectController.CourseSelect)
	router.GET("/subjects/:batch_id/:degree/:year/:sem", subjectController.ListSubjects)
	router.GET("/materials/:subject_id", materialController.Materials)
	router.GET("/download/:mat_id", materialController.Download)

	// --- Admin mutations ---
	admin := router.Group("")
	admin.Use(sessionMiddleware.AdminRequired())
	{
		admin.POST("/add_batch", batchController.AddBatch)
		admin.POST("/add_subject", subjectController.AddSubject)
		admin.POST("/edit_subject/:subject_id", subjectController.EditSubject)
		admin.POST("/delete_subject/:subject_id", subjectController.DeleteSubject)
		admin.POST("/upload/:subject_id", materialController.Upload)
		admin.POST("/delete_material/:mat_id", materialController.DeleteMaterial)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
