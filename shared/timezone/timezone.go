// Package timezone holds the application clock location.
//
// Init is called once at startup with APP_TIMEZONE. Until then, and for unknown
// names, everything is reported in UTC.
package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")
		location.Store(time.UTC)

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")
		location.Store(time.UTC)

		return
	}

	location.Store(loc)

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// GetLocation returns the configured location, UTC before Init.
func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Format renders t in the application location.
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
