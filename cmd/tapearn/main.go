package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tapearn/internal/app"
)

//	@title			Tapearn API
//	@version		1.0
//	@description	Time-partitioned click earnings and energy regeneration.

// @host		localhost:8080
// @BasePath	/
func main() {
	// zap is configured inside Start; failures before that only reach zerolog.
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("service", "tapearn").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		bootLog.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	if err := application.Wait(ctx, stop); err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
