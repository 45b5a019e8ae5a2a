package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/middleware"
)

// MapRoutes wires the footprint endpoints. All of them require a valid
// bearer token.
func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := r.Group("/footprint", mw.Auth())

	g.POST("/calculate", h.Calculate)
	g.POST("/waste", h.LogWaste)
	g.GET("/history", h.History)
	g.DELETE("/:id", h.Delete)
}
