package sqlite

import (
	"context"
	"database/sql"
	"portfolio-contact-backend/internal/domain"
)

const outcomeSchema = `
	CREATE TABLE IF NOT EXISTS contact_outcomes (
		id           TEXT PRIMARY KEY,
		status       TEXT NOT NULL,
		reason       TEXT NOT NULL DEFAULT '',
		ack_attempts INTEGER NOT NULL DEFAULT 0,
		ack_error    TEXT NOT NULL DEFAULT '',
		test_mode    BOOLEAN NOT NULL DEFAULT 0,
		started_at   DATETIME NOT NULL,
		completed_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contact_outcomes_completed_at ON contact_outcomes (completed_at DESC);`

type outcomeRepo struct {
	db *sql.DB
}

// NewOutcomeRepository creates a submission outcome repository backed by SQLite
func NewOutcomeRepository(db *sql.DB) domain.OutcomeRepository {
	return &outcomeRepo{db: db}
}

// MigrateOutcomes creates the outcome table if it does not exist
func MigrateOutcomes(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, outcomeSchema)
	return err
}

func (r *outcomeRepo) Save(ctx context.Context, o *domain.SubmissionOutcome) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_outcomes (id, status, reason, ack_attempts, ack_error, test_mode, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			reason = excluded.reason,
			ack_attempts = excluded.ack_attempts,
			ack_error = excluded.ack_error,
			completed_at = excluded.completed_at`,
		o.ID, string(o.Status), o.Reason, o.AckAttempts, o.AckError, o.TestMode, o.StartedAt.UTC(), o.CompletedAt.UTC(),
	)
	return err
}

func (r *outcomeRepo) List(ctx context.Context, limit int) ([]domain.SubmissionOutcome, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, reason, ack_attempts, ack_error, test_mode, started_at, completed_at
		FROM contact_outcomes
		ORDER BY completed_at DESC
		LIMIT ?`, limit)
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

func (r *outcomeRepo) CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM contact_outcomes GROUP BY status`)
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
	return r.db.PingContext(ctx)
}
