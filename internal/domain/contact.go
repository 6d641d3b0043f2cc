package domain

import (
	"context"
	"time"
)

// SubmissionRequest represents a contact form submission
type SubmissionRequest struct {
	SenderName  string `json:"name" binding:"required"`
	SenderEmail string `json:"email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required,no_header_injection"`
	Body        string `json:"message" binding:"required"`
}

// SubmissionStatus is the state of a contact form submission
type SubmissionStatus string

const (
	StatusIdle                 SubmissionStatus = "idle"
	StatusSubmitting           SubmissionStatus = "submitting"
	StatusSucceededFully       SubmissionStatus = "succeeded_fully"
	StatusSucceededPrimaryOnly SubmissionStatus = "succeeded_primary_only"
	StatusFailed               SubmissionStatus = "failed"
)

// IsTerminal reports whether no further transition happens from s.
func (s SubmissionStatus) IsTerminal() bool {
	switch s {
	case StatusSucceededFully, StatusSucceededPrimaryOnly, StatusFailed:
		return true
	}
	return false
}

// IsSuccess reports whether the site owner was notified.
// The acknowledgment result does not matter here.
func (s SubmissionStatus) IsSuccess() bool {
	return s == StatusSucceededFully || s == StatusSucceededPrimaryOnly
}

// SubmissionOutcome is the result of one submission.
// Only metadata lives here; the request itself is never stored.
type SubmissionOutcome struct {
	ID          string           `json:"id"`
	Status      SubmissionStatus `json:"status"`
	Reason      string           `json:"reason,omitempty"`
	AckAttempts int              `json:"ackAttempts"`
	AckError    string           `json:"ackError,omitempty"`
	TestMode    bool             `json:"testMode"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt time.Time        `json:"completedAt"`
}

// ContactUsecase defines the contact submission flow
type ContactUsecase interface {
	// Submit delivers the message to the site owner and best-effort acknowledges the sender.
	// It never returns an error; failures are reported through the outcome status.
	Submit(ctx context.Context, req *SubmissionRequest) *SubmissionOutcome
	// IsAvailable reports whether submissions can be delivered (or simulated).
	IsAvailable() bool
}

// OutcomeRepository stores submission outcomes for later review
type OutcomeRepository interface {
	Save(ctx context.Context, outcome *SubmissionOutcome) error
	List(ctx context.Context, limit int) ([]SubmissionOutcome, error)
	CountByStatus(ctx context.Context) (map[SubmissionStatus]int64, error)
	Ping(ctx context.Context) error
}
