package store

import (
	"context"
	"fmt"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
)

// Storages aggregates the repositories built on one connection pool.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository

	db *DB
}

// NewStorages connects to PostgreSQL, runs the startup phase and builds the
// repositories. It blocks until the database answers or retries run out.
func NewStorages(ctx context.Context, cfg config.Storage, opts StartupOptions, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Startup(ctx, opts); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database startup failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
		db:             db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
