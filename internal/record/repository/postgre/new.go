package postgre

import (
	"github.com/jmoiron/sqlx"

	"carbontrack-api/internal/record/repository"
	pkgLog "carbontrack-api/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sqlx.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sqlx.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
