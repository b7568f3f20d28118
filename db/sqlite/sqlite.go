package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDB is a file backed store for local development.
type SQLiteDB struct {
	Conn *sql.DB
	Path string
}

// DSN is the data source name used for both the pool and migrations.
func (s *SQLiteDB) DSN() string {
	return "file:" + s.Path + "?_foreign_keys=on&_busy_timeout=5000"
}

func NewSQLiteDB(path string) *SQLiteDB {
	return &SQLiteDB{Path: path}
}

func (s *SQLiteDB) Connect() error {
	conn, err := sql.Open("sqlite3", s.DSN())
	if err != nil {
		return err
	}
	// SQLite allows a single writer.
	conn.SetMaxOpenConns(1)

	s.Conn = conn
	return s.Conn.Ping()
}

func (s *SQLiteDB) Disconnect() error {
	if s.Conn != nil {
		return s.Conn.Close()
	}
	return nil
}

func (s *SQLiteDB) Ping(ctx context.Context) error {
	return s.Conn.PingContext(ctx)
}
