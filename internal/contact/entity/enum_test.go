package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLPolicyFromString(t *testing.T) {
	t.Parallel()

	tests := map[string]HTMLPolicy{
		"":           HTMLPolicyRaw,
		"raw":        HTMLPolicyRaw,
		" Escape ":   HTMLPolicyEscape,
		"SANITIZE":   HTMLPolicySanitize,
		"strip-tags": HTMLPolicyRaw,
	}

	for in, want := range tests {
		got := HTMLPolicyFromString(in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, HTMLPolicyFromString(got.String()), got)
	}
}
