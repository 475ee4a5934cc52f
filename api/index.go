package handler

import (
	"net/http"
	"os"
	"sync"
	"tasknest/config"
	"tasknest/di"
	"tasknest/shared/constant"
	"tasknest/shared/logger"
	"tasknest/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg, os.Stdout)

		timezone.Init(cfg.App.Timezone)

		server, _, err := di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")

			return
		}

		handler = server.Handler()
	})

	if handler == nil {
		http.Error(w, constant.ResponseErrorInternal, http.StatusInternalServerError)

		return
	}

	handler.ServeHTTP(w, r)
}
