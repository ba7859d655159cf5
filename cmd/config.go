package cmd

import (
	"fmt"
	"time"

	"mealbox/internal/jobs"

	"github.com/lib/pq"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	DefaultHTTPPort       = "8080"
	DefaultRequestTimeout = 5 * time.Second
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DatabaseURL    string
	StorageDriver  string
	RequestTimeout time.Duration
	ReportSchedule string
}

// LoadConfig reads the configuration through lookupEnv. Unset keys take their defaults;
// REPORT_SCHEDULE set to an empty value disables the report job.
func LoadConfig(lookupEnv func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:       get("HTTP_PORT", DefaultHTTPPort),
		DBHost:         get("DB_HOST", "localhost"),
		DBPort:         get("DB_PORT", "5432"),
		DBUser:         get("DB_USER", ""),
		DBPassword:     get("DB_PASSWORD", ""),
		DBName:         get("DB_NAME", ""),
		DBSslMode:      get("DB_SSLMODE", "disable"),
		DatabaseURL:    get("DATABASE_URL", ""),
		StorageDriver:  get("STORAGE_DRIVER", StorageDriverPostgres),
		RequestTimeout: DefaultRequestTimeout,
		ReportSchedule: jobs.DefaultReportSchedule,
	}

	if schedule, ok := lookupEnv("REPORT_SCHEDULE"); ok {
		config.ReportSchedule = schedule
	}

	if raw := get("REQUEST_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse REQUEST_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", raw)
		}
		config.RequestTimeout = timeout
	}

	switch config.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", config.StorageDriver)
	}

	return config, nil
}

// DSN returns the libpq connection string. DATABASE_URL takes precedence over the DB_* keys.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSslMode,
	), nil
}
