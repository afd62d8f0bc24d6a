package app

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/chinook-backend/internal/data/db"
	"github.com/yungbote/chinook-backend/internal/observability"
	"github.com/yungbote/chinook-backend/internal/platform/envutil"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type Config struct {
	Port        string
	DB          db.Config
	AutoMigrate bool

	CORSOrigins     []string
	MetricsEnabled  bool
	Otel            observability.OtelConfig
	ShutdownTimeout time.Duration
	GinMode         string
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" by default)
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port: envutil.String("PORT", "8080", log),
		DB: db.Config{
			Driver: envutil.String("DB_DRIVER", db.DriverSQLite, log),
			DSN:    envutil.String("DB_DSN", "", log),
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", "localhost", log),
				Port:     envutil.String("POSTGRES_PORT", "5432", log),
				User:     envutil.String("POSTGRES_USER", "postgres", log),
				Password: envutil.String("POSTGRES_PASSWORD", "", log),
				Name:     envutil.String("POSTGRES_NAME", "chinook", log),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
			},
			MaxOpenConns:    envutil.Int("DB_MAX_OPEN_CONNS", 0, log),
			MaxIdleConns:    envutil.Int("DB_MAX_IDLE_CONNS", 0, log),
			ConnMaxLifetime: envutil.Duration("DB_CONN_MAX_LIFETIME", 0, log),
			SlowThreshold:   envutil.Duration("DB_SLOW_THRESHOLD", time.Second, log),
		},
		AutoMigrate:    envutil.Bool("DB_AUTO_MIGRATE", true, log),
		CORSOrigins:    envutil.CSV("CORS_ALLOW_ORIGINS", []string{"*"}, log),
		MetricsEnabled: observability.Enabled(),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "chinook-api", log),
			Environment: envutil.String("APP_ENV", "development", log),
			Version:     envutil.String("APP_VERSION", "", log),
			Exporter:    envutil.String("OTEL_EXPORTER", "", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1, log),
		},
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second, log),
		GinMode:         envutil.String("GIN_MODE", "", log),
	}
}
