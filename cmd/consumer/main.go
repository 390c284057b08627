package main

import (
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/app"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bootstrap"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/config"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"

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

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
