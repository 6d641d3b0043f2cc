package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane@x.io", "j***@x.io"},
		{"élodie@example.fr", "é***@example.fr"},
		{"@example.com", "***"},
		{"not-an-email", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), tt.in)
	}
}

func TestHashValue(t *testing.T) {
	a := HashValue("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, HashValue("203.0.113.7"))
	assert.NotEqual(t, a, HashValue("203.0.113.8"))
}
