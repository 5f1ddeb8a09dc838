// SPDX-License-Identifier: Apache-2.0

// Package store implements the persistence layer of the shop-rent API:
// the PostgreSQL connection bootstrap with retry and fallback, and the
// repositories for users, rents, and payments.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connection targets reported by [DB.Target].
const (
	targetPrimary  = "primary"
	targetFallback = "fallback"
	targetNone     = "none"
)

// fallbackPingTimeout bounds the single fallback connection attempt. The
// fallback is expected to be local, so it gets a shorter budget than the
// primary target.
const fallbackPingTimeout = 3 * time.Second

// openDB is swapped in tests to stub out the pgx driver.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// DB wraps the process-wide connection pool together with its readiness
// state. All repositories share one *DB; the pool itself multiplexes
// concurrent operations.
type DB struct {
	*sql.DB

	logger    *logger.Logger
	connected bool
	target    string
}

// Connect establishes the database session used by every later data access.
//
// The primary DSN is pinged up to cfg.RetryAttempts times with a fixed
// cfg.RetryDelay pause between attempts, each attempt bounded by
// cfg.ConnectTimeout. When all primary attempts fail and cfg.FallbackDSN is
// set, that target is attempted once with a shorter timeout.
//
// Connect never panics and converts every failure into either the
// disconnected-handle outcome or an error:
//   - missing DSN, or total connection failure, with exitOnFail set →
//     a non-nil error the caller is expected to treat as fatal;
//   - otherwise a *DB whose Connected method reports false, so the HTTP
//     server can still start and serve health checks.
func Connect(ctx context.Context, cfg config.DB, exitOnFail bool, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		log.Error().Msg("missing database URI: set STORAGE_DB_DATABASE_URI or pass -d")

		if exitOnFail {
			return nil, errors.New("missing database URI")
		}
		return &DB{logger: log, target: targetNone}, nil
	}

	log.Info().Int("attempts", cfg.RetryAttempts).Msg("connecting to primary database")

	primary, err := open(ctx, cfg.DSN, cfg, log)
	if err == nil {
		log.Info().Str("target", targetPrimary).Msg("connected to database successfully")
		return &DB{DB: primary, logger: log, connected: true, target: targetPrimary}, nil
	}
	log.Err(err).Msg("all primary connection attempts failed")

	if cfg.FallbackDSN != "" {
		log.Info().Msg("trying fallback database target")

		fallback, fbErr := openOnce(ctx, cfg.FallbackDSN, fallbackPingTimeout)
		if fbErr == nil {
			log.Info().Str("target", targetFallback).Msg("connected to database successfully")
			return &DB{DB: fallback, logger: log, connected: true, target: targetFallback}, nil
		}
		log.Err(fbErr).Msg("fallback connection failed")
	}

	if exitOnFail {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Keep the lazily opened primary handle so a later recovery of the
	// database makes the pool usable without a restart.
	handle, openErr := openDB(cfg.DSN)
	if openErr != nil {
		handle = nil
	}

	return &DB{DB: handle, logger: log, target: targetNone}, nil
}

// open pings the target with bounded retries and a constant delay between
// attempts.
func open(ctx context.Context, dsn string, cfg config.DB, log *logger.Logger) (*sql.DB, error) {
	conn, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// RetryAttempts counts pings, not retries, so one attempt means zero
	// retries. Clamp so a misconfigured negative value cannot underflow into
	// effectively infinite retries.
	maxRetries := uint64(0)
	if cfg.RetryAttempts > 1 {
		maxRetries = uint64(cfg.RetryAttempts - 1)
	}

	attempt := 0
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(cfg.RetryDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()

		if pingErr := conn.PingContext(pingCtx); pingErr != nil {
			log.Err(pingErr).
				Int("attempt", attempt).
				Int("attempts", cfg.RetryAttempts).
				Msg("primary connection attempt failed")
			return retry.RetryableError(pingErr)
		}

		return nil
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// openOnce performs a single bounded connection attempt against dsn.
func openOnce(ctx context.Context, dsn string, timeout time.Duration) (*sql.DB, error) {
	conn, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// Connected reports whether the bootstrap ended with a usable session.
func (db *DB) Connected() bool {
	return db != nil && db.connected
}

// Target names the connection target in use: "primary", "fallback", or
// "none".
func (db *DB) Target() string {
	if db == nil || db.target == "" {
		return targetNone
	}
	return db.target
}

// Ping probes the underlying pool. Used by the health endpoint to report
// the live readiness state rather than the bootstrap-time one.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return errors.New("database is not connected")
	}
	return db.PingContext(ctx)
}

// Migrate applies all embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// postgresError extracts the PostgreSQL error code from a driver error,
// or returns an empty string for non-postgres errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
