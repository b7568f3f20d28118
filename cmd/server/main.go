package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usersapi/config"
	"usersapi/db"
	"usersapi/db/mongo"
	"usersapi/db/mysql"
	"usersapi/db/postgres"
	"usersapi/db/sqlite"
	"usersapi/handlers"
	"usersapi/logger"
	"usersapi/repository"
	"usersapi/routes"
)

//	@title			Users API
//	@version		1.0
//	@description	Create, list, fetch, update, patch and delete user records.
//	@BasePath		/
func main() {
	// Load config from .env or the environment
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	if cfg.RunMigrations {
		if err := migrate(cfg, log); err != nil {
			return err
		}
	}

	store, userRepo, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Disconnect(); err != nil {
			log.Warn("disconnect failed", "error", err)
		}
	}()
	log.Info("database connected", "db_type", cfg.DBType)

	// Handlers
	userHandler := handlers.NewUserHandler(userRepo, log)
	healthHandler := &handlers.HealthHandler{DB: store}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(log, cfg.CORSAllowedOrigin, userHandler, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout_seconds", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(cfg *config.Config, log *slog.Logger) error {
	if cfg.DBType == db.Mongo || cfg.DBType == db.Memory {
		return db.RunMigrations(cfg.DBType, "", cfg.MigrationsPath, log)
	}
	dsn, err := cfg.MigrationDSN()
	if err != nil {
		return err
	}
	return db.RunMigrations(cfg.DBType, dsn, cfg.MigrationsPath, log)
}

// memoryStore lets the in-memory repository stand in for a connection.
type memoryStore struct {
	*repository.MemoryUserRepo
}

func (memoryStore) Connect() error    { return nil }
func (memoryStore) Disconnect() error { return nil }

func openStore(cfg *config.Config) (db.DB, repository.UserRepository, error) {
	switch cfg.DBType {
	case db.Postgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL, cfg.Pool)
		if err := pg.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return pg, repository.NewPostgresUserRepo(pg.Conn), nil

	case db.MySQL:
		my := mysql.NewMySQLDB(cfg.MySQLURL, cfg.Pool)
		if err := my.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect mysql: %w", err)
		}
		return my, repository.NewMySQLUserRepo(my.Conn), nil

	case db.SQLite:
		lite := sqlite.NewSQLiteDB(cfg.SQLitePath)
		if err := lite.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect sqlite: %w", err)
		}
		return lite, repository.NewPostgresUserRepo(lite.Conn), nil

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDatabase)
		if err := mg.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		return mg, repository.NewMongoUserRepo(mg.Client, mg.Database), nil

	case db.Memory:
		repo := repository.NewMemoryUserRepo()
		return memoryStore{repo}, repo, nil

	default:
		return nil, nil, fmt.Errorf("DB_TYPE %q not supported", cfg.DBType)
	}
}
