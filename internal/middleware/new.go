package middleware

import (
	pkgDiscord "carbontrack-api/pkg/discord"
	pkgJWT "carbontrack-api/pkg/jwt"
	pkgLog "carbontrack-api/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	jwt     pkgJWT.Manager
	discord pkgDiscord.IDiscord
}

func New(l pkgLog.Logger, jwt pkgJWT.Manager, discord pkgDiscord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		jwt:     jwt,
		discord: discord,
	}
}
