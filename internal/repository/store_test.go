package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOutcomeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return no store when nothing is configured", func(t *testing.T) {
		repo, closeFn, err := OpenOutcomeStore(ctx, &config.Config{})
		require.NoError(t, err)
		assert.Nil(t, repo)
		closeFn()
	})

	t.Run("Should open and migrate sqlite", func(t *testing.T) {
		cfg := &config.Config{SQLitePath: filepath.Join(t.TempDir(), "outcomes.db")}
		repo, closeFn, err := OpenOutcomeStore(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()

		now := time.Now().UTC()
		require.NoError(t, repo.Save(ctx, &domain.SubmissionOutcome{
			ID:          "6f1c6d8e-2a8f-4c62-9d7b-4a3c2f1e0b9a",
			Status:      domain.StatusSucceededFully,
			AckAttempts: 1,
			StartedAt:   now,
			CompletedAt: now,
		}))

		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[domain.StatusSucceededFully])
	})
}
