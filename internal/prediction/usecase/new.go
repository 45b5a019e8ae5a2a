package usecase

import (
	"carbontrack-api/internal/prediction"
	"carbontrack-api/internal/record"
	pkgLog "carbontrack-api/pkg/log"
)

type implUsecase struct {
	l        pkgLog.Logger
	recordUC record.UseCase
}

var _ prediction.UseCase = &implUsecase{}

func New(l pkgLog.Logger, recordUC record.UseCase) *implUsecase {
	return &implUsecase{
		l:        l,
		recordUC: recordUC,
	}
}
