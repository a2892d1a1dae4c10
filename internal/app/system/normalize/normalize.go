// Package normalize canonicalizes user-entered fields before storage.
package normalize

import "strings"

// Email trims whitespace and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims whitespace. Validation happens in inputval; storage keeps
// the number exactly as entered otherwise.
func Phone(s string) string {
	return strings.TrimSpace(s)
}

// Area trims surrounding whitespace. Case is preserved.
func Area(s string) string {
	return strings.TrimSpace(s)
}
