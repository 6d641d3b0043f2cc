//go:build property
// +build property

package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestBodyPreviewProperties checks truncation over arbitrary message bodies
func TestBodyPreviewProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: bodies up to the limit are echoed verbatim
	properties.Property("short bodies are verbatim", prop.ForAll(
		func(body string) bool {
			if utf8.RuneCountInString(body) > previewLimit {
				return true
			}
			return bodyPreview(body) == body
		},
		gen.AnyString(),
	))

	// Property: longer bodies keep exactly the first 100 characters plus an ellipsis
	properties.Property("long bodies are cut with ellipsis", prop.ForAll(
		func(body string, extra int) bool {
			body = body + strings.Repeat("x", previewLimit+extra)
			preview := bodyPreview(body)

			if !strings.HasSuffix(preview, "...") {
				return false
			}
			kept := strings.TrimSuffix(preview, "...")
			return utf8.RuneCountInString(kept) == previewLimit && strings.HasPrefix(body, kept)
		},
		gen.AnyString(),
		gen.IntRange(1, 500),
	))

	// Property: the preview never exceeds limit plus the ellipsis
	properties.Property("preview length is bounded", prop.ForAll(
		func(body string) bool {
			return utf8.RuneCountInString(bodyPreview(body)) <= previewLimit+3
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
