package database

import (
	"context"
	"database/sql"
	"fmt"
	"portfolio-contact-backend/pkg/logger"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection opens (creating if needed) a SQLite database file
func NewSQLiteConnection(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows a single writer; serialise through one connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure sqlite: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Info("Database connection established", "driver", "sqlite", "path", path)
	return db, nil
}
