package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	pkgDiscord "carbontrack-api/pkg/discord"
	pkgJWT "carbontrack-api/pkg/jwt"
	pkgLog "carbontrack-api/pkg/log"
	pkgMailer "carbontrack-api/pkg/mailer"
	pkgRedis "carbontrack-api/pkg/redis"
)

type HTTPServer struct {
	gin     *gin.Engine
	l       pkgLog.Logger
	port    int
	mode    string
	db      *sqlx.DB
	redis   pkgRedis.IRedis
	jwt     pkgJWT.Manager
	mailer  pkgMailer.Notifier
	discord pkgDiscord.IDiscord
}

type Config struct {
	Port    int
	Mode    string
	DB      *sqlx.DB
	Redis   pkgRedis.IRedis
	JWT     pkgJWT.Manager
	Mailer  pkgMailer.Notifier
	Discord pkgDiscord.IDiscord
}

func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	h := &HTTPServer{
		l:       l,
		port:    cfg.Port,
		mode:    cfg.Mode,
		db:      cfg.DB,
		redis:   cfg.Redis,
		jwt:     cfg.JWT,
		mailer:  cfg.Mailer,
		discord: cfg.Discord,
	}

	if err := h.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(h.mode)
	h.gin = gin.New()

	return h, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwt == nil {
		return errors.New("jwt manager is required")
	}
	if srv.port <= 0 {
		return errors.New("port must be positive")
	}

	return nil
}
