package domain

import "context"

// SubmissionStats summarises stored outcomes for the admin dashboard
type SubmissionStats struct {
	Total                int64        `json:"total"`
	SucceededFully       int64        `json:"succeededFully"`
	SucceededPrimaryOnly int64        `json:"succeededPrimaryOnly"`
	Failed               int64        `json:"failed"`
	SystemHealth         SystemHealth `json:"systemHealth"`
}

type SystemHealth struct {
	Status      string `json:"status"`      // "healthy", "degraded"
	LastChecked string `json:"lastChecked"` // ISO8601 timestamp
}

// AdminUsecase exposes stored submission outcomes to the site owner
type AdminUsecase interface {
	GetStats(ctx context.Context) (*SubmissionStats, error)
	ListSubmissions(ctx context.Context, limit int) ([]SubmissionOutcome, error)
}
