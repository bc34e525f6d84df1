// Package validate contains the shape rules for registration input.
// Each predicate returns false for non-matching input; there are no error
// results, a string either has the required shape or it does not.
package validate

import "regexp"

// Patterns for the name and email fields. Both are anchored: the whole
// string must match, not a substring.
var (
	// One or more space-separated words, each an uppercase letter
	// (including Á É Í Ó Ú Ñ) followed by one or more lowercase letters.
	namePattern = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+( [A-ZÁÉÍÓÚÑ][a-záéíóúñ]+)*$`)

	// local@domain.tld with a 2-6 letter tld.
	emailPattern = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,6}$`)
)

// Name reports whether s is a valid full name.
func Name(s string) bool {
	return namePattern.MatchString(s)
}

// Email reports whether s is a valid email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password reports whether s is a valid password: at least 8 characters,
// at least two uppercase ASCII letters, three lowercase ASCII letters, one
// digit, and one character outside ASCII letters and digits. RE2 has no
// lookahead, so the independent counts are gathered in a single scan.
func Password(s string) bool {
	var length, upper, lower, digit, special int
	for _, r := range s {
		length++
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		case r >= '0' && r <= '9':
			digit++
		default:
			special++
		}
	}
	return length >= 8 && upper >= 2 && lower >= 3 && digit >= 1 && special >= 1
}
