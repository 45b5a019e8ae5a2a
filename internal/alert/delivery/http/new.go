package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/alert"
	pkgLog "carbontrack-api/pkg/log"
)

type Handler interface {
	CheckTotal(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc alert.UseCase
}

func New(l pkgLog.Logger, uc alert.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
