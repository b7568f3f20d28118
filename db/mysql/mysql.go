package mysql

import (
	"context"
	"database/sql"
	"time"

	"usersapi/db"

	"github.com/go-sql-driver/mysql"
)

type MySQLDB struct {
	Conn *sql.DB
	DSN  string
	Pool db.PoolConfig
}

func NewMySQLDB(dsn string, pool db.PoolConfig) *MySQLDB {
	return &MySQLDB{
		DSN:  dsn,
		Pool: pool,
	}
}

// NormalizeDSN forces the options the user repository relies on: matched
// rather than changed rows from UPDATE, and multi statements so migration
// files can hold more than one statement.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	cfg.MultiStatements = true
	return cfg.FormatDSN(), nil
}

func (m *MySQLDB) Connect() error {
	dsn, err := NormalizeDSN(m.DSN)
	if err != nil {
		return err
	}
	m.DSN = dsn

	conn, err := sql.Open("mysql", m.DSN)
	if err != nil {
		return err
	}

	if m.Pool.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(m.Pool.MaxOpenConns)
	}
	if m.Pool.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(m.Pool.MaxIdleConns)
	}
	if m.Pool.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(time.Duration(m.Pool.ConnMaxLifetime) * time.Minute)
	}

	m.Conn = conn
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Conn.PingContext(ctx)
}

func (m *MySQLDB) Disconnect() error {
	if m.Conn != nil {
		return m.Conn.Close()
	}
	return nil
}

func (m *MySQLDB) Ping(ctx context.Context) error {
	return m.Conn.PingContext(ctx)
}
