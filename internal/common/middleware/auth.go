package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/session"
)

// SessionKey is the gin context key holding the resolved *session.Session.
const SessionKey = "session"

// AuthRequired resolves the session token from the Authorization header
// (or X-Session-Token) and aborts unauthenticated requests.
func AuthRequired(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c)
		if token == "" {
			appErr := errors.Unauthorized("missing session token")
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}

		s, ok := sessions.Get(token)
		if !ok {
			appErr := errors.Unauthorized("no active session")
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}

		c.Set(SessionKey, s)
		c.Next()
	}
}

// RequireRole guards dashboard-specific routes. Must run after AuthRequired.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil || s.Account.Role != role {
			appErr := errors.Forbidden("not available for this role")
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session placed on the context by AuthRequired.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

func tokenFrom(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}
