package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-script-error-collector/config"
	"github.com/ONSdigital/dp-script-error-collector/event"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/jackc/pgx/v5/pgxpool"
)

const initSQL = `
CREATE TABLE IF NOT EXISTS script_errors (
    id          BIGSERIAL PRIMARY KEY,
    event_type  TEXT        NOT NULL,
    reported_at TIMESTAMPTZ NOT NULL,
    message     TEXT        NOT NULL,
    filename    TEXT        NOT NULL,
    lineno      BIGINT      NOT NULL,
    colno       BIGINT      NOT NULL,
    error_value JSONB
);`

const insertSQL = `
INSERT INTO script_errors (event_type, reported_at, message, filename, lineno, colno, error_value)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id;`

// Store persists error-event records to Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// New establishes a connection pool with the provided config and ensures the
// script_errors table exists.
func New(ctx context.Context, cfg config.PostgresConfig) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	pcfg.MaxConns = int32(cfg.MaxConns)
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.MaxConnLifetime = 30 * time.Minute
	pcfg.HealthCheckPeriod = time.Minute
	pcfg.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if _, err := pool.Exec(ctx, initSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create script_errors table: %w", err)
	}

	return &Store{pool: pool}, nil
}

// SaveErrorEvent persists the record as a new row and returns its id. The
// row is the record's wire rendering: the thrown value is stored as jsonb,
// NULL when the record carries none.
func (s *Store) SaveErrorEvent(ctx context.Context, e *event.ErrorEvent) (int64, error) {
	r := event.NewErrorReported(e)

	var id int64
	if err := s.pool.QueryRow(ctx, insertSQL,
		r.EventType,
		e.Timestamp(),
		r.Message,
		r.Filename,
		r.Lineno,
		r.Colno,
		nullableErrorValue(r),
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert script error: %w", err)
	}

	log.Info(ctx, "script error stored", log.Data{"id": id})

	return id, nil
}

// nullableErrorValue returns the wire's JSON error payload, nil for records
// that carried no thrown value so the column is NULL rather than ''.
func nullableErrorValue(r *event.ErrorReported) any {
	if r.Error == "" {
		return nil
	}
	return r.Error
}

// Checker performs a health check on the Postgres connection pool and
// updates the provided CheckState accordingly.
func (s *Store) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	if err := s.pool.Ping(ctx); err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}

	return state.Update(healthcheck.StatusOK, "postgres is ok", 0)
}

// Close releases the connection pool.
func (s *Store) Close(ctx context.Context) error {
	s.pool.Close()
	log.Info(ctx, "closed postgres connection pool")
	return nil
}
