package postgres

import (
	"context"
	"portfolio-contact-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const outcomeSchema = `
	CREATE TABLE IF NOT EXISTS contact_outcomes (
		id           UUID PRIMARY KEY,
		status       TEXT NOT NULL,
		reason       TEXT NOT NULL DEFAULT '',
		ack_attempts INTEGER NOT NULL DEFAULT 0,
		ack_error    TEXT NOT NULL DEFAULT '',
		test_mode    BOOLEAN NOT NULL DEFAULT FALSE,
		started_at   TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contact_outcomes_completed_at ON contact_outcomes (completed_at DESC);`

type outcomeRepo struct {
	db *pgxpool.Pool
}

// NewOutcomeRepository creates a new submission outcome repository
func NewOutcomeRepository(db *pgxpool.Pool) domain.OutcomeRepository {
	return &outcomeRepo{db: db}
}

// MigrateOutcomes creates the outcome table if it does not exist
func MigrateOutcomes(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, outcomeSchema)
	return err
}

// Save inserts an outcome; saving the same ID twice keeps the latest state
func (r *outcomeRepo) Save(ctx context.Context, o *domain.SubmissionOutcome) error {
	query := `
		INSERT INTO contact_outcomes (id, status, reason, ack_attempts, ack_error, test_mode, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			reason = EXCLUDED.reason,
			ack_attempts = EXCLUDED.ack_attempts,
			ack_error = EXCLUDED.ack_error,
			completed_at = EXCLUDED.completed_at`

	_, err := r.db.Exec(ctx, query,
		o.ID, string(o.Status), o.Reason, o.AckAttempts, o.AckError, o.TestMode, o.StartedAt, o.CompletedAt,
	)
	return err
}

// List returns the most recent outcomes, newest first
func (r *outcomeRepo) List(ctx context.Context, limit int) ([]domain.SubmissionOutcome, error) {
	query := `
		SELECT id::text, status, reason, ack_attempts, ack_error, test_mode, started_at, completed_at
		FROM contact_outcomes
		ORDER BY completed_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outcomes := []domain.SubmissionOutcome{}
	for rows.Next() {
		var o domain.SubmissionOutcome
		var status string
		if err := rows.Scan(&o.ID, &status, &o.Reason, &o.AckAttempts, &o.AckError, &o.TestMode, &o.StartedAt, &o.CompletedAt); err != nil {
			return nil, err
		}
		o.Status = domain.SubmissionStatus(status)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

// CountByStatus returns the number of stored outcomes per status
func (r *outcomeRepo) CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM contact_outcomes GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.SubmissionStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[domain.SubmissionStatus(status)] = count
	}
	return counts, rows.Err()
}

func (r *outcomeRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
