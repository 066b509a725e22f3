package postgres

//nolint:revive
import (
	"errors"
	"time"

	"stayhub/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxIdleTime    = 5 * time.Minute
)

// Connection pairs the replica the repositories read from with the primary they write to.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", pg, pg.Read),
		Write: connect("write", pg, pg.Write),
	}
}

// Close closes both connections.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// connect retries MaxRetry times, RetryWaitTime seconds apart, and exits the process when the
// node stays unreachable.
func connect(role string, pg config.Postgres, node config.PostgresNode) *sqlx.DB {
	logger := log.With().
		Str("role", role).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("db_name", pg.DatabaseName(node)).
		Logger()

	attempts := max(pg.MaxRetry, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", pg.URL(node, nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
