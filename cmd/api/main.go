package main

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/app"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bootstrap"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/config"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(r, bootstrap.ServerConfigFrom(cfg))
}
