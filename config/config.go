package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"usersapi/db"
	"usersapi/db/mysql"
	"usersapi/db/sqlite"
)

type Config struct {
	DBType         db.DBType
	PostgresURL    string
	MySQLURL       string
	SQLitePath     string
	MongoURL       string
	MongoDatabase  string
	Port           string
	MigrationsPath string
	RunMigrations  bool
	Pool           db.PoolConfig

	LogLevel          string
	LogFormat         string
	CORSAllowedOrigin string
	ShutdownTimeout   int // seconds
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system environment variables")
	}

	return &Config{
		DBType:         db.DBType(strings.ToLower(getEnvOrDefault("DB_TYPE", string(db.Postgres)))),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MySQLURL:       os.Getenv("MYSQL_URL"),
		SQLitePath:     getEnvOrDefault("SQLITE_PATH", "users.db"),
		MongoURL:       os.Getenv("MONGO_URL"),
		MongoDatabase:  getEnvOrDefault("MONGO_DATABASE", "users"),
		Port:           getEnvOrDefault("PORT", "8080"),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", "db/migrations"),
		RunMigrations:  getBoolEnvOrDefault("RUN_MIGRATIONS", true),
		Pool: db.PoolConfig{
			MaxOpenConns:    getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30),
		},
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "json"),
		CORSAllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		ShutdownTimeout:   getIntEnvOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

// Validate reports settings the selected store cannot start without.
func (c *Config) Validate() error {
	switch c.DBType {
	case db.Postgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL not set in environment")
		}
	case db.MySQL:
		if c.MySQLURL == "" {
			return fmt.Errorf("MYSQL_URL not set in environment")
		}
	case db.SQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH not set in environment")
		}
	case db.Mongo:
		if c.MongoURL == "" {
			return fmt.Errorf("MONGO_URL not set in environment")
		}
	case db.Memory:
	default:
		return fmt.Errorf("DB_TYPE %q not supported", c.DBType)
	}
	return nil
}

// MigrationDSN is the data source name golang-migrate connects with for the
// selected store.
func (c *Config) MigrationDSN() (string, error) {
	switch c.DBType {
	case db.Postgres:
		return c.PostgresURL, nil
	case db.MySQL:
		return mysql.NormalizeDSN(c.MySQLURL)
	case db.SQLite:
		return sqlite.NewSQLiteDB(c.SQLitePath).DSN(), nil
	default:
		return "", fmt.Errorf("migrations not supported for %q", c.DBType)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		slog.Warn("invalid integer setting, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean setting, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return value
}
