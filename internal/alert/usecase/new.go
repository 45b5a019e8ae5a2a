package usecase

import (
	"time"

	"carbontrack-api/internal/alert"
	"carbontrack-api/internal/alert/repository"
	"carbontrack-api/internal/record"
	pkgLog "carbontrack-api/pkg/log"
	pkgMailer "carbontrack-api/pkg/mailer"
	pkgRedis "carbontrack-api/pkg/redis"
)

// notifyTimeout bounds each outbound notification so a slow SMTP server or
// Redis hiccup cannot hold up the evaluation response.
const notifyTimeout = 5 * time.Second

type implUsecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	recordUC record.UseCase
	notifier pkgMailer.Notifier
	redis    pkgRedis.IRedis
}

var _ alert.UseCase = &implUsecase{}

// New builds the alert engine. redis may be nil; the live feed publish is
// skipped when it is.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	recordUC record.UseCase,
	notifier pkgMailer.Notifier,
	redis pkgRedis.IRedis,
) *implUsecase {
	return &implUsecase{
		l:        l,
		repo:     repo,
		recordUC: recordUC,
		notifier: notifier,
		redis:    redis,
	}
}
