package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/middleware"
)

func MapRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := r.Group("/predict", mw.Auth())

	g.POST("/predict", h.Predict)
	g.POST("/trend", h.Trend)
}
