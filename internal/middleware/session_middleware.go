package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/pkg/auth"
)

// Context keys populated by the session middleware
const (
	CtxUserID     = "userID"
	CtxUsername   = "username"
	CtxRole       = "role"
	CtxDepartment = "department"
)

// SessionMiddleware resolves the signed session cookie into request-scoped
// identity values. It never rejects a request: an absent or invalid cookie
// just leaves the session slots empty, so deep routes keep working for
// anonymous visitors.
type SessionMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(jwtService *auth.JWTService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// Load parses the session cookie, if any, and stores its claims on the
// request context.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.cookieName)
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			// Expired or tampered cookie: treat as anonymous
			c.Next()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxDepartment, claims.Department)

		c.Next()
	}
}

// AdminRequired gates mutation endpoints on the session role. Anything but
// an admin session answers 403 plain text and performs no mutation.
func (m *SessionMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != string(models.RoleAdmin) {
			c.String(http.StatusForbidden, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SessionClaims rebuilds the claims currently attached to the request, for
// handlers that re-issue the cookie with one slot changed.
func SessionClaims(c *gin.Context) *auth.SessionClaims {
	return &auth.SessionClaims{
		UserID:     c.GetInt64(CtxUserID),
		Username:   c.GetString(CtxUsername),
		Role:       c.GetString(CtxRole),
		Department: c.GetString(CtxDepartment),
	}
}
