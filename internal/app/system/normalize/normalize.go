// Package normalize canonicalizes user-supplied strings before storage
// or comparison. Keep the rules here so handlers do not grow their own
// scattered ToLower/TrimSpace combinations.
package normalize

import "strings"

// Email lowercases and trims an email address. Every email comparison
// in the service goes through this first, so " Ada@Example.COM " and
// "ada@example.com" are the same account.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role trims a role value and matches it case-insensitively against
// the canonical spellings the directory uses. Unknown roles pass
// through trimmed.
func Role(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "admin":
		return "Admin"
	case "user":
		return "User"
	}
	return s
}

// Status lowercases and trims a status value. The directory reports
// lowercase statuses; operator input gets folded to match.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
