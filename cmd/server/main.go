package main

import (
	"context"
	"os/signal"
	"syscall"

	"carbontrack-api/config"
	"carbontrack-api/config/postgre"
	"carbontrack-api/config/redis"
	"carbontrack-api/internal/httpserver"
	pkgDiscord "carbontrack-api/pkg/discord"
	pkgJWT "carbontrack-api/pkg/jwt"
	pkgLog "carbontrack-api/pkg/log"
	pkgMailer "carbontrack-api/pkg/mailer"
)

// @title           CarbonTrack API
// @version         1.0
// @description     Carbon footprint tracking backend with emission alerts and predictions.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		l.Fatalf(ctx, "main: postgres connect: %v", err)
	}
	defer func() {
		if err := postgre.Disconnect(); err != nil {
			l.Errorf(ctx, "main: postgres disconnect: %v", err)
		}
	}()

	// Redis powers the live alert feed only; the service runs without it.
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		l.Warnf(ctx, "main: redis connect: %v", err)
		redisClient = nil
	} else {
		defer func() {
			if err := redis.Disconnect(); err != nil {
				l.Errorf(ctx, "main: redis disconnect: %v", err)
			}
		}()
	}

	var discord pkgDiscord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discord, err = pkgDiscord.NewFromParts(l, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			l.Warnf(ctx, "main: discord webhook: %v", err)
		} else {
			defer discord.Close()
		}
	}

	var mailer pkgMailer.Notifier
	mailCfg, err := pkgMailer.LoadConfig()
	if err != nil {
		l.Warnf(ctx, "main: mailer config: %v, email alerts disabled", err)
	} else {
		mailer, err = pkgMailer.New(l, mailCfg)
		if err != nil {
			l.Warnf(ctx, "main: mailer init: %v, email alerts disabled", err)
		}
	}

	jwtManager := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
	})

	srv, err := httpserver.New(l, httpserver.Config{
		Port:    cfg.Server.Port,
		Mode:    cfg.Server.Mode,
		DB:      db,
		Redis:   redisClient,
		JWT:     jwtManager,
		Mailer:  mailer,
		Discord: discord,
	})
	if err != nil {
		l.Fatalf(ctx, "main: httpserver init: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		l.Fatalf(ctx, "main: httpserver run: %v", err)
	}
}
