package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"stayhub/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const defaultMigrationPath = "file://migrations/postgres"

// ConnectionString builds the migrate database URL for the write connection.
func ConnectionString(config *config.Config) string {
	pg := config.DB.Postgres

	var extra url.Values
	if pg.MigrationTable != "" {
		extra = url.Values{"x-migrations-table": {pg.MigrationTable}}
	}

	return pg.URL(pg.Write, extra)
}

func migrationPath(config *config.Config) string {
	if config.DB.Postgres.MigrationPath != "" {
		return config.DB.Postgres.MigrationPath
	}

	return defaultMigrationPath
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationPath(config), ConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(config *config.Config, action string, step func(*migrate.Migrate) error) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		srcErr, dbErr := mig.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close migrate instance")
		}
	}()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

// Up applies every pending migration.
func Up(config *config.Config) error {
	return run(config, "up", (*migrate.Migrate).Up)
}

// StepUp applies the next pending migration.
func StepUp(config *config.Config) error {
	return Steps(config, 1)
}

// Down rolls back the latest migration.
func Down(config *config.Config) error {
	return Steps(config, -1)
}

// Steps migrates n steps; negative n rolls back.
func Steps(config *config.Config, n int) error {
	return run(config, fmt.Sprintf("steps(%d)", n), func(mig *migrate.Migrate) error {
		return mig.Steps(n)
	})
}

// Drop rolls back every migration.
func Drop(config *config.Config) error {
	return run(config, "drop", (*migrate.Migrate).Down)
}

// Version reports the applied migration version and whether the last run left it dirty.
func Version(config *config.Config) (version uint, dirty bool, err error) {
	err = run(config, "version", func(mig *migrate.Migrate) error {
		var verErr error

		version, dirty, verErr = mig.Version()
		if errors.Is(verErr, migrate.ErrNilVersion) {
			return nil
		}

		return verErr
	})

	return version, dirty, err
}

// Force marks version as applied and clean without running it.
func Force(config *config.Config, version int) error {
	return run(config, fmt.Sprintf("force(%d)", version), func(mig *migrate.Migrate) error {
		return mig.Force(version)
	})
}
