package usecase

import (
	"context"
	"portfolio-contact-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Pinger is anything whose liveness can be probed
type Pinger func(ctx context.Context) error

type healthUsecase struct {
	contact  domain.ContactUsecase
	outcomes domain.OutcomeRepository
	redis    Pinger
}

// NewHealthUsecase creates the health usecase. outcomes and redis may be nil.
func NewHealthUsecase(contact domain.ContactUsecase, outcomes domain.OutcomeRepository, redis Pinger) HealthUsecase {
	return &healthUsecase{contact: contact, outcomes: outcomes, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status":      "ok",
		"contact":     "ok",
		"audit_store": "disabled",
		"redis":       "disabled",
	}

	if !u.contact.IsAvailable() {
		result["contact"] = "unconfigured"
		result["status"] = "degraded"
	}

	if u.outcomes != nil {
		result["audit_store"] = "ok"
		if err := u.outcomes.Ping(ctx); err != nil {
			result["audit_store"] = "down"
			result["status"] = "degraded"
		}
	}

	if u.redis != nil {
		result["redis"] = "ok"
		if err := u.redis(ctx); err != nil {
			result["redis"] = "down"
			result["status"] = "degraded"
		}
	}

	return result
}
