// Package controllers handles HTTP request handling
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	idStr := ctx.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: %s", paramName, idStr)
	}
	return id, nil
}

// redirectBack sends the browser back to the referring page after a form
// post, falling back to the given target when no referrer was sent.
func redirectBack(ctx *gin.Context, fallback string) {
	target := ctx.Request.Referer()
	if target == "" {
		target = fallback
	}
	ctx.Redirect(http.StatusFound, target)
}

// setSessionCookie writes the signed session token as an HTTP-only cookie
// scoped to the whole site.
func setSessionCookie(ctx *gin.Context, name, token string, maxAge int) {
	ctx.SetCookie(name, token, maxAge, "/", "", false, true)
}
