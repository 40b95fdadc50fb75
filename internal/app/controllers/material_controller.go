package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/app/services"
	"github.com/studyportal/backend/internal/middleware"
	"github.com/studyportal/backend/internal/pkg/apperrors"
	"github.com/studyportal/backend/internal/pkg/filestorage"
)

// MaterialController handles material listing, upload, deletion and download
type MaterialController struct {
	materialService services.MaterialService
	fileStorage     filestorage.FileStorage
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService, fileStorage filestorage.FileStorage) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		fileStorage:     fileStorage,
	}
}

// Materials lists a subject's materials together with the subject record
// and the caller's role
// @Summary List materials for a subject
// @Description The subject is nil when the id references nothing; the page then renders empty. The caller's role lets the view show admin controls.
// @Tags materials
// @Produce json
// @Param subject_id path int true "Subject ID"
// @Success 200 {object} dto.MaterialListResponse
// @Router /materials/{subject_id} [get]
func (c *MaterialController) Materials(ctx *gin.Context) {
	subjectID, err := parseIDParam(ctx, "subject_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	subject, materials, err := c.materialService.ListForSubject(ctx.Request.Context(), subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MaterialListResponse{
		Subject:   subject,
		Materials: materials,
		Role:      ctx.GetString(middleware.CtxRole),
	})
}

// Upload stores an uploaded file and its material row (admin only)
// @Summary Upload a material
// @Description Saves the file under a collision-safe storage key; the client filename is kept only for display and the download header.
// @Tags materials
// @Accept multipart/form-data
// @Param subject_id path int true "Subject ID"
// @Param file formData file true "File to upload"
// @Param title formData string true "Material title"
// @Success 302
// @Failure 403 {string} string "Unauthorized"
// @Router /upload/{subject_id} [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	subjectID, err := parseIDParam(ctx, "subject_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}
	title := ctx.PostForm("title")

	if _, err := c.materialService.UploadMaterial(ctx.Request.Context(), subjectID, title, file); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/materials/%d", subjectID))
}

// DeleteMaterial removes a material row and its backing file (admin only)
// @Summary Delete a material
// @Description Deletes the row first, then removes the file best-effort. A missing material id is a no-op with the same redirect.
// @Tags materials
// @Param mat_id path int true "Material ID"
// @Success 302
// @Failure 403 {string} string "Unauthorized"
// @Router /delete_material/{mat_id} [post]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	matID, err := parseIDParam(ctx, "mat_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	if err := c.materialService.DeleteMaterial(ctx.Request.Context(), matID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	redirectBack(ctx, "/study-material")
}

// Download streams a material file as an attachment
// @Summary Download a material
// @Description Streams the stored file with the original filename in the attachment header. Not role-gated: any session, including none, may download.
// @Tags materials
// @Produce octet-stream
// @Param mat_id path int true "Material ID"
// @Success 200 {file} file
// @Failure 404 {string} string "Not Found"
// @Router /download/{mat_id} [get]
func (c *MaterialController) Download(ctx *gin.Context) {
	matID, err := parseIDParam(ctx, "mat_id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMaterialNotFound)
		return
	}

	material, err := c.materialService.GetMaterial(ctx.Request.Context(), matID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	name := material.FileName
	if name == "" {
		name = filepath.Base(material.FilePath)
	}

	ctx.FileAttachment(c.fileStorage.FullPath(material.FilePath), name)
}
