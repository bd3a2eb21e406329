package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	connMaxLifetime   = 30 * time.Minute
	pingTimeout       = 5 * time.Second
	defaultRetryDelay = 3 * time.Second
)

// DB is the PostgreSQL connection pool shared by all repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	retries    uint64
	retryDelay time.Duration

	// applySchema creates the tables. Replaced in tests.
	applySchema func(db *sql.DB) error

	startupOnce sync.Once
	startupErr  error
}

// NewConnectPostgres opens the connection pool described by cfg.
// It does not talk to the server: call [DB.Startup] before serving requests.
func NewConnectPostgres(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)

	return newDB(conn, cfg, log), nil
}

func newDB(conn *sql.DB, cfg config.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
		retries:            cfg.ConnectRetries,
		retryDelay:         cfg.ConnectRetryDelay,
		applySchema: func(db *sql.DB) error {
			return migrations.Migrate(db, log)
		},
	}
}

// StartupOptions tunes the one-time startup phase.
type StartupOptions struct {
	// SeedDemoUser creates admin/admin when the users table is empty.
	SeedDemoUser bool
}

// Startup waits for the database, applies the schema and optionally seeds
// the demo user. The work runs once per DB; later calls return the result
// of the first one.
func (db *DB) Startup(ctx context.Context, opts StartupOptions) error {
	db.startupOnce.Do(func() {
		db.startupErr = db.startup(ctx, opts)
	})

	return db.startupErr
}

func (db *DB) startup(ctx context.Context, opts StartupOptions) error {
	if err := db.waitForDatabase(ctx); err != nil {
		return err
	}

	if err := db.applySchema(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.startup").Msg("error applying schema")
		return fmt.Errorf("%w: %w", ErrApplyingSchema, err)
	}

	if opts.SeedDemoUser {
		if err := seedDemoUser(ctx, db); err != nil {
			return err
		}
	}

	db.logger.Info().Str("func", "*DB.startup").Msg("database is ready")
	return nil
}

// waitForDatabase pings the server with a constant backoff. Errors the server
// reports as permanent (bad password, unknown database) stop the loop early.
func (db *DB) waitForDatabase(ctx context.Context) error {
	delay := db.retryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	backoff := retry.WithMaxRetries(db.retries, retry.NewConstant(delay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		err := db.PingContext(pingCtx)
		if err == nil {
			return nil
		}

		db.logger.Warn().Err(err).
			Str("func", "*DB.waitForDatabase").
			Int("attempt", attempt).
			Msg("database is not ready")

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && db.errorClassificator.Classify(err) == NonRetryable {
			return err
		}

		return retry.RetryableError(err)
	})
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.waitForDatabase").Int("attempts", attempt).Msg("error connecting database (ping)")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	db.logger.Info().Str("func", "*DB.waitForDatabase").Msg("connected to database successfully")
	return nil
}
