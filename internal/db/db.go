// Package db provides PostgreSQL storage for screening runs.
package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-screener/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// ErrRunNotFound is returned by DeleteRun when no run matches
var ErrRunNotFound = errors.New("run not found")

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// EnsureSchema creates the tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SaveRun stores a run and its ranked candidates in one transaction and returns the run ID
func (db *DB) SaveRun(ctx context.Context, in *RunInput) (uuid.UUID, error) {
	analysis, weights, summary, err := marshalRunFields(in)
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO screening_runs (id, client_id, job_description, job_url, job_analysis, weights, summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, in.ClientID, in.JobDescription, in.JobURL, analysis, weights, summary,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	batch := &pgx.Batch{}
	for rank, c := range in.Candidates {
		record, scores, err := marshalCandidate(c)
		if err != nil {
			return uuid.Nil, err
		}
		batch.Queue(
			`INSERT INTO scored_candidates (run_id, rank, position, record, scores) VALUES ($1, $2, $3, $4, $5)`,
			id, rank, c.Position, record, scores,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert candidates: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// GetRun retrieves a run with its candidates in rank order. Returns nil, nil when not found.
func (db *DB) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	var (
		run                        Run
		analysis, weights, summary []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, client_id, job_description, job_url, job_analysis, weights, summary, created_at
		 FROM screening_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.ClientID, &run.JobDescription, &run.JobURL, &analysis, &weights, &summary, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if err := unmarshalRunFields(&run, analysis, weights, summary); err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx,
		`SELECT position, record, scores FROM scored_candidates WHERE run_id = $1 ORDER BY rank`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	run.Candidates = make([]types.ScoredCandidate, 0)
	for rows.Next() {
		var (
			position       int
			record, scores []byte
		)
		if err := rows.Scan(&position, &record, &scores); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c, err := unmarshalCandidate(position, record, scores)
		if err != nil {
			return nil, err
		}
		run.Candidates = append(run.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first. A non-nil clientID restricts
// the list to that client's runs.
func (db *DB) ListRuns(ctx context.Context, clientID *uuid.UUID, limit int) ([]RunSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, client_id, job_url, summary, created_at
		 FROM screening_runs
		 WHERE $1::uuid IS NULL OR client_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		clientID, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]RunSummary, 0)
	for rows.Next() {
		var (
			r       RunSummary
			summary []byte
		)
		if err := rows.Scan(&r.ID, &r.ClientID, &r.JobURL, &summary, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal(summary, &r.Summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// DeleteRun deletes a run and its candidates (via cascade)
func (db *DB) DeleteRun(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM screening_runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// PruneRuns deletes runs older than the cutoff and returns how many were removed
func (db *DB) PruneRuns(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM screening_runs WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return result.RowsAffected(), nil
}
