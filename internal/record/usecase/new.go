package usecase

import (
	"time"

	"carbontrack-api/internal/record"
	"carbontrack-api/internal/record/repository"
	pkgLog "carbontrack-api/pkg/log"
)

type implUsecase struct {
	l    pkgLog.Logger
	repo repository.Repository

	// now is swapped out by tests pinning the aggregation window.
	now func() time.Time
}

var _ record.UseCase = &implUsecase{}

func New(l pkgLog.Logger, repo repository.Repository) *implUsecase {
	return &implUsecase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}
