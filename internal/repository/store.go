package repository

import (
	"context"
	"fmt"
	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/repository/postgres"
	"portfolio-contact-backend/internal/repository/sqlite"
	"portfolio-contact-backend/pkg/database"
)

// OpenOutcomeStore connects the submission audit store selected by cfg.
// DATABASE_URL takes precedence over SQLITE_PATH. With neither set it
// returns a nil repository and outcomes are not recorded.
func OpenOutcomeStore(ctx context.Context, cfg *config.Config) (domain.OutcomeRepository, func(), error) {
	switch {
	case cfg.DBUrl != "":
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.MigrateOutcomes(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to migrate outcome table: %w", err)
		}
		return postgres.NewOutcomeRepository(pool), pool.Close, nil

	case cfg.SQLitePath != "":
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.MigrateOutcomes(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to migrate outcome table: %w", err)
		}
		return sqlite.NewOutcomeRepository(db), func() { db.Close() }, nil
	}

	return nil, func() {}, nil
}
