package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "carbontrack-api/docs"
	alertHTTP "carbontrack-api/internal/alert/delivery/http"
	alertPostgre "carbontrack-api/internal/alert/repository/postgre"
	alertUC "carbontrack-api/internal/alert/usecase"
	"carbontrack-api/internal/middleware"
	predictionHTTP "carbontrack-api/internal/prediction/delivery/http"
	predictionUC "carbontrack-api/internal/prediction/usecase"
	recordHTTP "carbontrack-api/internal/record/delivery/http"
	recordPostgre "carbontrack-api/internal/record/repository/postgre"
	recordUC "carbontrack-api/internal/record/usecase"
	telemetryHTTP "carbontrack-api/internal/telemetry/delivery/http"
	telemetryUC "carbontrack-api/internal/telemetry/usecase"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.jwt, srv.discord)

	srv.gin.Use(mw.Recovery(), mw.CORS())

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	srv.mapHealthRoutes()

	// Repositories.
	recordRepo := recordPostgre.New(srv.l, srv.db)
	alertRepo := alertPostgre.New(srv.l, srv.db)

	// Usecases.
	recordUsecase := recordUC.New(srv.l, recordRepo)
	alertUsecase := alertUC.New(srv.l, alertRepo, recordUsecase, srv.mailer, srv.redis)
	predictionUsecase := predictionUC.New(srv.l, recordUsecase)
	telemetryUsecase := telemetryUC.New(srv.l, recordUsecase, srv.mailer, srv.redis)

	// Handlers.
	recordH := recordHTTP.New(srv.l, recordUsecase)
	alertH := alertHTTP.New(srv.l, alertUsecase)
	predictionH := predictionHTTP.New(srv.l, predictionUsecase)
	telemetryH := telemetryHTTP.New(srv.l, telemetryUsecase)

	api := srv.gin.Group("/api/v1")
	recordHTTP.MapRoutes(api, recordH, mw)
	alertHTTP.MapRoutes(api, alertH, mw)
	predictionHTTP.MapRoutes(api, predictionH, mw)
	telemetryHTTP.MapRoutes(api, telemetryH)
}
