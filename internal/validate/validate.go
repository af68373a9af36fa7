// Package validate holds the single validation policy shared by the
// server handlers and the embedded client forms. Both sides must agree,
// so the rules live here as pure functions and the client mirrors them.
package validate

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like a well-formed email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// NewPassword checks a freshly chosen password against the account
// policy: 6-12 characters with at least one uppercase letter, one
// lowercase letter, one digit, and one special character. It returns a
// human-readable reason or "" when the password is acceptable.
//
// The policy applies only where a password is being set (registration,
// admin update). Login accepts whatever the account already has.
func NewPassword(s string) string {
	if len(s) < 6 || len(s) > 12 {
		return "Password must be 6-12 characters"
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !upper:
		return "Password must contain an uppercase letter"
	case !lower:
		return "Password must contain a lowercase letter"
	case !digit:
		return "Password must contain a digit"
	case !special:
		return "Password must contain a special character"
	}
	return ""
}
