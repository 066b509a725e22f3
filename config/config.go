package config

import (
	"fmt"
	"net"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server   Server   `envconfig:"SERVER"`
	App      App      `envconfig:"APP"`
	Cache    Cache    `envconfig:"CACHE"`
	JWT      JWT      `envconfig:"JWT"`
	DB       DB       `envconfig:"DB"`
	Kafka    Kafka    `envconfig:"KAFKA"`
	External External `envconfig:"EXTERNAL"`
}

type Server struct {
	Env      string `envconfig:"ENV"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	Port     string `envconfig:"PORT"`
	Host     string `envconfig:"HOST"`
	Shutdown struct {
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
	} `envconfig:"SHUTDOWN"`
}

type App struct {
	Name        string      `envconfig:"APP_NAME"`
	Timezone    string      `envconfig:"TIMEZONE"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
	APIKey      string      `envconfig:"API_KEY"`
}

type CORS struct {
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	Enable           bool     `envconfig:"ENABLE"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
}

// Cache holds the redis connection and the TTL in seconds of cached room types and properties.
type Cache struct {
	Redis struct {
		Primary struct {
			Host     string `envconfig:"HOST"`
			Port     string `envconfig:"PORT"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
	TTL int `envconfig:"TTL"`
}

type JWT struct {
	AccessSecret     string `envconfig:"ACCESS_SECRET"`
	RefreshSecret    string `envconfig:"REFRESH_SECRET"`
	AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
	RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
}

type DB struct {
	Postgres Postgres `envconfig:"POSTGRES"`
}

// Postgres describes the primary (Write) and the replica (Read) the repositories talk to.
type Postgres struct {
	MaxRetry       int          `envconfig:"MAX_RETRY"`
	RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME"`
	MigrationTable string       `envconfig:"MIGRATION_TABLE"`
	MigrationPath  string       `envconfig:"MIGRATION_PATH" default:"file://migrations/postgres"`
	Prefix         string       `envconfig:"PREFIX"`
	Read           PostgresNode `envconfig:"READ"`
	Write          PostgresNode `envconfig:"WRITE"`
}

type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

// DatabaseName is the node's database name with the configured prefix.
func (p Postgres) DatabaseName(node PostgresNode) string {
	return p.Prefix + node.Name
}

// URL returns the postgres:// connection URL of node. Extra query parameters are added to
// sslmode and the session timezone.
func (p Postgres) URL(node PostgresNode, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + p.DatabaseName(node),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

type Kafka struct {
	Enable  bool     `envconfig:"ENABLE"`
	Brokers []string `envconfig:"BROKERS"`
	SASL    struct {
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
	} `envconfig:"SASL"`
	Topics struct {
		AvailabilityChanged string `envconfig:"AVAILABILITY_CHANGED" default:"availability.changed"`
		PeakRateChanged     string `envconfig:"PEAK_RATE_CHANGED"    default:"peak_rate.changed"`
	} `envconfig:"TOPICS"`
}

type External struct {
	Otel struct {
		Endpoint string `envconfig:"ENDPOINT"`
	} `envconfig:"OTEL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("No .env file loaded, reading configuration from the environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Str("app", conf.App.Name).Msg("Configuration loaded")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
