package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyportal/backend/internal/app/models/dto"
	"github.com/studyportal/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the portal's response surface.
// Authorization and validation failures answer plain text, matching what
// the browser-side scripts expect; everything unexpected collapses into a
// generic 500 payload.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.String(http.StatusForbidden, "Unauthorized")
		return
	case errors.Is(err, apperrors.ErrInvalidSubjectName):
		c.String(http.StatusBadRequest, "Invalid name")
		return
	case errors.Is(err, apperrors.ErrMaterialNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrBatchNotFound):
		c.String(http.StatusNotFound, "Not Found")
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format"),
		))
		return
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
		return
	}
}
