package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/record"
	pkgLog "carbontrack-api/pkg/log"
)

type Handler interface {
	Calculate(c *gin.Context)
	LogWaste(c *gin.Context)
	History(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc record.UseCase
}

func New(l pkgLog.Logger, uc record.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
