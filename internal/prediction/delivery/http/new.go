package http

import (
	"github.com/gin-gonic/gin"

	"carbontrack-api/internal/prediction"
	pkgLog "carbontrack-api/pkg/log"
)

type Handler interface {
	Predict(c *gin.Context)
	Trend(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc prediction.UseCase
}

func New(l pkgLog.Logger, uc prediction.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
