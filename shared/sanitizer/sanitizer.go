// Package sanitizer strips markup from user supplied text before it is validated or stored.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Sanitizable is implemented by request bodies that clean their own string fields.
type Sanitizable interface {
	Sanitize()
}

// String removes every HTML element from s and trims surrounding whitespace.
// The remaining text is stored unescaped.
func String(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// Strings sanitizes each non-nil target in place.
func Strings(targets ...*string) {
	for _, target := range targets {
		if target == nil {
			continue
		}

		*target = String(*target)
	}
}
