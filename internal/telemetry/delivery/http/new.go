package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/telemetry"
	pkgLog "carbontrack-api/pkg/log"
)

type Handler interface {
	Widget(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc telemetry.UseCase
}

func New(l pkgLog.Logger, uc telemetry.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
