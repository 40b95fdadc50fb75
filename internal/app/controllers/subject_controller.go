package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/app/services"
	"github.com/studyportal/backend/internal/middleware"
	"github.com/studyportal/backend/internal/pkg/apperrors"
)

// SubjectController handles the course selection flow and subject CRUD
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CoursePage serves the degree/year/semester selection payload for a batch
// @Summary Course selection page
// @Tags subjects
// @Produce json
// @Param batch_id path int true "Batch ID"
// @Success 200 {object} dto.CoursePageResponse
// @Router /course/{batch_id} [get]
func (c *SubjectController) CoursePage(ctx *gin.Context) {
	batchID, err := parseIDParam(ctx, "batch_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	ctx.JSON(http.StatusOK, dto.CoursePageResponse{Page: "course", BatchID: batchID})
}

// CourseSelect reads degree/year/semester from the form and redirects to
// the filtered subject list
// @Summary Submit course selection
// @Tags subjects
// @Accept x-www-form-urlencoded
// @Param batch_id path int true "Batch ID"
// @Param degree formData string true "Degree"
// @Param year formData string true "Year"
// @Param semester formData string true "Semester"
// @Success 302
// @Router /course/{batch_id} [post]
func (c *SubjectController) CourseSelect(ctx *gin.Context) {
	batchID, err := parseIDParam(ctx, "batch_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	target := fmt.Sprintf("/subjects/%d/%s/%s/%s",
		batchID,
		url.PathEscape(ctx.PostForm("degree")),
		url.PathEscape(ctx.PostForm("year")),
		url.PathEscape(ctx.PostForm("semester")),
	)
	ctx.Redirect(http.StatusFound, target)
}

// ListSubjects returns the subjects matching the four-key filter
// @Summary List subjects
// @Description Exact match on (batch, degree, year, semester); results are ordered by id.
// @Tags subjects
// @Produce json
// @Param batch_id path int true "Batch ID"
// @Param degree path string true "Degree"
// @Param year path string true "Year"
// @Param sem path string true "Semester"
// @Success 200 {object} dto.SubjectListResponse
// @Router /subjects/{batch_id}/{degree}/{year}/{sem} [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	batchID, err := parseIDParam(ctx, "batch_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	degree := ctx.Param("degree")
	year := ctx.Param("year")
	semester := ctx.Param("sem")

	subjects, err := c.subjectService.ListSubjects(ctx.Request.Context(), batchID, degree, year, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SubjectListResponse{
		Subjects: subjects,
		BatchID:  batchID,
		Degree:   degree,
		Year:     year,
		Semester: semester,
	})
}

// AddSubject creates a subject from form fields (admin only)
// @Summary Add a subject
// @Description Inserts a subject for the given batch. The batch id is not checked against existing batches.
// @Tags subjects
// @Accept x-www-form-urlencoded
// @Param batch_id formData int true "Batch ID"
// @Param degree formData string true "Degree"
// @Param year formData string true "Year"
// @Param semester formData string true "Semester"
// @Param name formData string true "Subject name"
// @Success 302
// @Failure 403 {string} string "Unauthorized"
// @Router /add_subject [post]
func (c *SubjectController) AddSubject(ctx *gin.Context) {
	batchID, err := strconv.ParseInt(ctx.PostForm("batch_id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	subject := &models.Subject{
		BatchID:  batchID,
		Degree:   ctx.PostForm("degree"),
		Year:     ctx.PostForm("year"),
		Semester: ctx.PostForm("semester"),
		Name:     ctx.PostForm("name"),
	}

	if err := c.subjectService.CreateSubject(ctx.Request.Context(), subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	redirectBack(ctx, "/study-material")
}

// EditSubject renames a subject (admin only)
// @Summary Edit subject name
// @Description Trims the submitted name and updates the subject. A whitespace-only name answers 400 without touching the row.
// @Tags subjects
// @Accept json
// @Param subject_id path int true "Subject ID"
// @Param request body dto.EditSubjectRequest true "New name"
// @Success 200 {string} string "Updated"
// @Failure 400 {string} string "Invalid name"
// @Failure 403 {string} string "Unauthorized"
// @Router /edit_subject/{subject_id} [post]
func (c *SubjectController) EditSubject(ctx *gin.Context) {
	subjectID, err := parseIDParam(ctx, "subject_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	var req dto.EditSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid name")
		return
	}

	if err := c.subjectService.RenameSubject(ctx.Request.Context(), subjectID, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Updated")
}

// DeleteSubject deletes a subject row (admin only)
// @Summary Delete a subject
// @Description Deletes the subject row only; its materials and their files are left behind.
// @Tags subjects
// @Param subject_id path int true "Subject ID"
// @Success 302
// @Failure 403 {string} string "Unauthorized"
// @Router /delete_subject/{subject_id} [post]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	subjectID, err := parseIDParam(ctx, "subject_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), subjectID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	redirectBack(ctx, "/study-material")
}
