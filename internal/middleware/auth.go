package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/model"
	"carbontrack-api/pkg/response"
)

const scopeKey = "scope"

// Auth verifies the Bearer token and stores the resolved scope on the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwt.Verify(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth.jwt.Verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// RequireAdmin rejects non-admin scopes. Must run after Auth.
func (m Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !sc.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetScope extracts the authenticated scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}

	sc, ok := v.(model.Scope)
	return sc, ok
}
