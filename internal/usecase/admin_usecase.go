package usecase

import (
	"context"
	"errors"
	"net/http"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"
	"time"
)

const (
	defaultSubmissionLimit = 50
	maxSubmissionLimit     = 200
)

type adminUsecase struct {
	outcomes domain.OutcomeRepository
}

// NewAdminUsecase creates the admin usecase. outcomes may be nil when no audit store is configured.
func NewAdminUsecase(outcomes domain.OutcomeRepository) domain.AdminUsecase {
	return &adminUsecase{outcomes: outcomes}
}

// GetStats returns counts of stored outcomes per status
func (u *adminUsecase) GetStats(ctx context.Context) (*domain.SubmissionStats, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if u.outcomes == nil {
		return nil, errAuditStoreUnavailable
	}

	counts, err := u.outcomes.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch statistics: " + err.Error()))
	}

	stats := &domain.SubmissionStats{
		SucceededFully:       counts[domain.StatusSucceededFully],
		SucceededPrimaryOnly: counts[domain.StatusSucceededPrimaryOnly],
		Failed:               counts[domain.StatusFailed],
		SystemHealth: domain.SystemHealth{
			Status:      "healthy",
			LastChecked: time.Now().UTC().Format(time.RFC3339),
		},
	}
	stats.Total = stats.SucceededFully + stats.SucceededPrimaryOnly + stats.Failed

	if err := u.outcomes.Ping(ctx); err != nil {
		stats.SystemHealth.Status = "degraded"
	}

	return stats, nil
}

// ListSubmissions returns the most recent outcomes, newest first
func (u *adminUsecase) ListSubmissions(ctx context.Context, limit int) ([]domain.SubmissionOutcome, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if u.outcomes == nil {
		return nil, errAuditStoreUnavailable
	}

	if limit < 1 {
		limit = defaultSubmissionLimit
	}
	if limit > maxSubmissionLimit {
		limit = maxSubmissionLimit
	}

	outcomes, err := u.outcomes.List(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch submissions: " + err.Error()))
	}
	return outcomes, nil
}

var errAuditStoreUnavailable = apperror.New(http.StatusServiceUnavailable, "Submission audit storage is not configured", nil)

// requireAdmin checks if the current caller has admin role
// Works with both Gin context (c.Set) and standard context.WithValue
func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	var role string

	// First try Gin context string key (from c.Set)
	if r, ok := ctx.Value(string(domain.KeyUserRole)).(string); ok {
		role = r
	}

	// Fallback to CtxKey type (from context.WithValue)
	if role == "" {
		if r, ok := ctx.Value(domain.KeyUserRole).(string); ok {
			role = r
		}
	}

	if role != "admin" {
		return apperror.Forbidden(domain.ErrAdminAccessRequired.Error())
	}
	return nil
}
