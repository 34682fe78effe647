// Package sanitize cleans operator-submitted form fields before they enter
// the user working set. Fields like names and roles are plain text, so the
// policy strips all markup rather than allowlisting any.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy is the shared bluemonday policy for plain-text fields.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared strict policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Field cleans a single plain-text form field: markup is stripped and
// surrounding whitespace trimmed.
func Field(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(getPolicy().Sanitize(s))
}

// Fields cleans each element of a slice in place and returns it.
func Fields(ss []string) []string {
	for i, s := range ss {
		ss[i] = Field(s)
	}
	return ss
}
