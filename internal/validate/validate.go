// Package validate provides syntax checks for user-supplied identity fields.
// The checks are pure functions invoked before any network or cache access.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidUsername = errors.New("invalid username")
)

const (
	maxEmailLen     = 254
	maxLocalPartLen = 64
	maxUsernameLen  = 32
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`)

	// Usernames start with a letter or digit; dots, dashes and underscores
	// are allowed inside, which keeps placeholder values like "..." out.
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// Email reports ErrInvalidEmail unless value is a plausibly formed,
// bounded-length address (local-part@domain with a dotted domain).
func Email(value string) error {
	if value == "" || len(value) > maxEmailLen {
		return ErrInvalidEmail
	}
	local, _, found := strings.Cut(value, "@")
	if !found || local == "" || len(local) > maxLocalPartLen {
		return ErrInvalidEmail
	}
	if !emailRe.MatchString(value) {
		return ErrInvalidEmail
	}
	return nil
}

// Username reports ErrInvalidUsername unless value is a non-empty,
// bounded-length identifier.
func Username(value string) error {
	if value == "" || len(value) > maxUsernameLen {
		return ErrInvalidUsername
	}
	if !usernameRe.MatchString(value) {
		return ErrInvalidUsername
	}
	return nil
}
