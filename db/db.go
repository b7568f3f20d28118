package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	MySQL    DBType = "mysql"
	SQLite   DBType = "sqlite"
	Mongo    DBType = "mongo"
	Memory   DBType = "memory"
)

// DB is a store connection the server opens at boot and closes on shutdown.
type DB interface {
	Connect() error
	Disconnect() error
	Ping(ctx context.Context) error
}

// PoolConfig tunes a database/sql connection pool. Zero values keep the
// driver defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
}
