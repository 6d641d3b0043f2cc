package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrSubmissionInFlight    = errors.New("a submission is already in progress")
	ErrProviderNotConfigured = errors.New("email provider is not configured")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
