package entity

import "strings"

// HTMLPolicy controls how user input is placed into the HTML body.
type HTMLPolicy int8

const (
	// HTMLPolicyRaw interpolates user input verbatim.
	HTMLPolicyRaw HTMLPolicy = 0
	// HTMLPolicyEscape HTML-escapes user input.
	HTMLPolicyEscape HTMLPolicy = 1
	// HTMLPolicySanitize strips every tag from user input.
	HTMLPolicySanitize HTMLPolicy = 2
)

// HTMLPolicyFromString parses a config value; unknown values fall back to raw.
func HTMLPolicyFromString(raw string) HTMLPolicy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "escape":
		return HTMLPolicyEscape
	case "sanitize":
		return HTMLPolicySanitize
	default:
		return HTMLPolicyRaw
	}
}

func (p HTMLPolicy) String() string {
	switch p {
	case HTMLPolicyEscape:
		return "escape"
	case HTMLPolicySanitize:
		return "sanitize"
	default:
		return "raw"
	}
}
