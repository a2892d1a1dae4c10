// Package inputval validates raw user input before it reaches a store.
package inputval

import (
	"net/mail"
	"regexp"
	"strings"
)

// phoneRe accepts international-format phone numbers: an optional "+",
// an optional leading "1", then 9 to 15 digits.
var phoneRe = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// IsValidPhone reports whether s is a well-formed phone number.
// Example of an accepted value: "+8801900000000".
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsValidEmail reports whether s is a plain RFC 5322 address.
// Display-name forms ("Name <a@b>") are rejected: stored emails are bare
// addresses.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}
