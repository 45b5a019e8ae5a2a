package middleware

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/pkg/response"
)

// Recovery turns panics into 500 responses and forwards the stack trace to
// the ops Discord channel.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: %v", err)
				response.PanicError(c, err, m.discord)
				c.Abort()
			}
		}()

		c.Next()
	}
}
