package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHealthRoutes() {
	srv.gin.GET("/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/health", srv.readyCheck)
}

// readyCheck reports whether the backing stores answer. Redis is optional
// and only degrades the report, it does not fail it.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.readyCheck.db.Ping: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": "down"})
		return
	}

	status := gin.H{"status": "ok", "postgres": "up"}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "internal.httpserver.readyCheck.redis.Ping: %v", err)
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}

	c.JSON(http.StatusOK, status)
}
