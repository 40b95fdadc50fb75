package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/app/services"
	"github.com/studyportal/backend/internal/middleware"
)

// BatchController handles batch listing and creation
type BatchController struct {
	batchService services.BatchService
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService services.BatchService) *BatchController {
	return &BatchController{
		batchService: batchService,
	}
}

// StudyMaterial lists the batches for the session's department
// @Summary List batches for the selected department
// @Description Returns the batches whose department matches the session's selection exactly. An empty selection yields an empty list.
// @Tags batches
// @Produce json
// @Success 200 {object} dto.BatchListResponse
// @Router /study-material [get]
func (c *BatchController) StudyMaterial(ctx *gin.Context) {
	department := ctx.GetString(middleware.CtxDepartment)

	batches, err := c.batchService.ListByDepartment(ctx.Request.Context(), department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BatchListResponse{
		Batches:    batches,
		Department: department,
	})
}

// AddBatch creates a batch from form fields (admin only)
// @Summary Add a batch
// @Tags batches
// @Accept x-www-form-urlencoded
// @Param name formData string true "Batch name"
// @Param department formData string true "Department"
// @Success 302
// @Failure 403 {string} string "Unauthorized"
// @Router /add_batch [post]
func (c *BatchController) AddBatch(ctx *gin.Context) {
	name := ctx.PostForm("name")
	department := ctx.PostForm("department")

	if _, err := c.batchService.CreateBatch(ctx.Request.Context(), name, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	redirectBack(ctx, "/study-material")
}
