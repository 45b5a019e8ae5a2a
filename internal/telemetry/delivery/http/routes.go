package http

import "github.com/gin-gonic/gin"

// MapRoutes wires the widget ingestion endpoint. The widget authenticates
// with nothing but its payload; the endpoint stays public on purpose.
func MapRoutes(r *gin.RouterGroup, h Handler) {
	g := r.Group("/emission")

	g.POST("/widget", h.Widget)
}
