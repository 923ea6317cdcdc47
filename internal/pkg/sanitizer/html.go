// Package sanitizer cleans user supplied text before it is embedded in HTML.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func policy() *bluemonday.Policy {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripTags removes every HTML element and returns escaped plain text.
// Script and style contents are dropped entirely.
func StripTags(s string) string {
	return policy().Sanitize(s)
}
