// Package helper runs the SQL migrations in migrations/postgres against the write database.
package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"tasknest/config"
	"tasknest/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	migrationSource = "file://migrations/postgres"
)

var ErrUnknownAction = errors.New("unknown migration action")

type step struct {
	run  func(*migrate.Migrate) error
	done string
}

var actions = map[string]step{
	ActionUp:     {run: (*migrate.Migrate).Up, done: "applied all pending migrations"},
	ActionDown:   {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "rolled back one migration"},
	ActionStepUp: {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "applied one migration"},
	ActionDrop:   {run: (*migrate.Migrate).Down, done: "rolled back all migrations"},
}

// MigrationURL is the write database DSN with the migrations table appended.
func MigrationURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	dsn := postgres.DSN(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		cfg.DB.Postgres.Prefix+write.Name,
		write.SSLMode,
	)

	return fmt.Sprintf("%s&x-migrations-table=%s", dsn, cfg.DB.Postgres.MigrationTable)
}

// Runner executes action. ErrNoChange is not an error.
func Runner(cfg *config.Config, action string) error {
	act, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationSource, MigrationURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg(act.done)

	return nil
}
