package main

import (
	"os"
	"tasknest/config"
	"tasknest/di"
	"tasknest/shared/logger"
	"tasknest/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Tasknest API
// @version 1.0
// @description Projects and todos for authenticated users.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg, os.Stdout)

	timezone.Init(cfg.App.Timezone)

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	if err := http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}
}
