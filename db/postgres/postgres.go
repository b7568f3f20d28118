package postgres

import (
	"context"
	"database/sql"
	"time"

	"usersapi/db"

	_ "github.com/lib/pq"
)

type PostgresDB struct {
	Conn *sql.DB
	URL  string
	Pool db.PoolConfig
}

func NewPostgresDB(url string, pool db.PoolConfig) *PostgresDB {
	return &PostgresDB{
		URL:  url,
		Pool: pool,
	}
}

func (p *PostgresDB) Connect() error {
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}
	applyPool(conn, p.Pool)

	p.Conn = conn
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Conn.PingContext(ctx)
}

func (p *PostgresDB) Disconnect() error {
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.Conn.PingContext(ctx)
}

func applyPool(conn *sql.DB, pool db.PoolConfig) {
	if pool.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetime) * time.Minute)
	}
}
