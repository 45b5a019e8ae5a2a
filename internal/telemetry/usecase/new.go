package usecase

import (
	"time"

	"carbontrack-api/internal/record"
	"carbontrack-api/internal/telemetry"
	pkgLog "carbontrack-api/pkg/log"
	pkgMailer "carbontrack-api/pkg/mailer"
	pkgRedis "carbontrack-api/pkg/redis"
)

const notifyTimeout = 5 * time.Second

type implUsecase struct {
	l        pkgLog.Logger
	recordUC record.UseCase
	notifier pkgMailer.Notifier
	redis    pkgRedis.IRedis
}

var _ telemetry.UseCase = &implUsecase{}

func New(l pkgLog.Logger, recordUC record.UseCase, notifier pkgMailer.Notifier, redis pkgRedis.IRedis) *implUsecase {
	return &implUsecase{
		l:        l,
		recordUC: recordUC,
		notifier: notifier,
		redis:    redis,
	}
}
