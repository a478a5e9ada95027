// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"employee_service/internal/platform/db"
	"employee_service/internal/platform/redis"
)

// Config is the full service configuration.
type Config struct {
	Env      string        // Env is the current environment: local, dev, prod.
	HTTP     HTTPConfig    // HTTP holds the listener settings.
	DB       db.Config     // DB holds the database connection settings.
	Redis    redis.Config  // Redis holds the optional cache connection.
	CacheTTL time.Duration // CacheTTL is how long an email lookup stays cached.
}

// HTTPConfig holds the HTTP listener settings.
type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// LoadDotEnv loads variables from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		slog.Debug(".env not found; using system environment variables", "path", path)
	}
}

// Load reads the configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "local")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("DB_DRIVER", db.DriverSQLite)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "employees")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "employees.db")
	v.SetDefault("DB_CONNECT_TIMEOUT", 60*time.Second)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CACHE_TTL", 5*time.Minute)

	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Addr:            v.GetString("HTTP_ADDR"),
			ShutdownTimeout: v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
		},
		DB: db.Config{
			Driver:         v.GetString("DB_DRIVER"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			SQLitePath:     v.GetString("DB_SQLITE_PATH"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
			RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		},
		Redis: redis.Config{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		CacheTTL: v.GetDuration("CACHE_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on an invalid configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config error: " + err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", db.DriverPostgres, db.DriverSQLite, c.DB.Driver)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}
