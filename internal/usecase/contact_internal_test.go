package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"portfolio-contact-backend/pkg/email"

	"github.com/stretchr/testify/assert"
)

func TestBodyPreview(t *testing.T) {
	exact := strings.Repeat("a", 100)
	long := strings.Repeat("b", 101)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"short body is verbatim", "Hello there", "Hello there"},
		{"empty body", "", ""},
		{"exactly 100 characters has no ellipsis", exact, exact},
		{"101 characters is cut", long, strings.Repeat("b", 100) + "..."},
		{"counts characters not bytes", strings.Repeat("é", 120), strings.Repeat("é", 100) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bodyPreview(tt.body))
		})
	}
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, "Error: Account not found", failureReason(&email.SendError{Status: 400, Text: "Account not found"}))
	assert.Equal(t, "Error: Account not found", failureReason(fmt.Errorf("wrapped: %w", &email.SendError{Status: 400, Text: "Account not found"})))
	assert.Equal(t, genericFailureReason, failureReason(&email.SendError{Status: 500}))
	assert.Equal(t, genericFailureReason, failureReason(errors.New("connection reset")))
	assert.Equal(t, genericFailureReason, failureReason(&email.SendError{
		Status:      502,
		Text:        "<html><body><h1>502 Bad Gateway</h1></body></html>",
		ContentType: "text/html",
	}))
	assert.Equal(t, genericFailureReason, failureReason(&email.SendError{Status: 400, Text: strings.Repeat("x", 500)}))
}
