package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/middleware"
)

func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := r.Group("/alert", mw.Auth())

	g.POST("/check-total", h.CheckTotal)
	g.GET("/settings", h.GetSettings)
	g.POST("/settings", mw.RequireAdmin(), h.UpdateSettings)
}
