// Package validation holds the credential policy: pure checks on usernames,
// passwords, emails and login identifiers. Nothing here performs I/O.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

// Username and password limits.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 12
	// PasswordMaxBytes is the longest input bcrypt accepts.
	PasswordMaxBytes = 72
)

// PasswordSpecialChars is the set a password must draw at least one character from.
const PasswordSpecialChars = "!@#$%^&*()_+-=[]{};:\"\\|,.<>/?`~"

// Error is a user-correctable input violation.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newError(field, msg string) *Error {
	return &Error{Field: field, Message: msg}
}

// ValidateUsername trims s and checks its length and charset.
// It returns the trimmed username.
func ValidateUsername(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "", newError("username", "Username is required")
	case len(s) < UsernameMinLength:
		return "", newError("username", "Username must be at least 3 characters long")
	case len(s) > UsernameMaxLength:
		return "", newError("username", "Username must be no more than 20 characters long")
	}
	for _, r := range s {
		if !isUsernameRune(r) {
			return "", newError("username", "Username can only contain letters, numbers, and underscores")
		}
	}
	return s, nil
}

// ValidatePassword checks password complexity, reporting the first failed rule
// in the order length, uppercase, lowercase, digit, special character.
func ValidatePassword(s string) error {
	if s == "" {
		return newError("password", "Password is required")
	}
	if len(s) < PasswordMinLength {
		return newError("password", "Password must be at least 12 characters")
	}
	if len(s) > PasswordMaxBytes {
		return newError("password", "Password must be no more than 72 bytes")
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
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		}
	}

	switch {
	case !upper:
		return newError("password", "Password must contain at least one uppercase letter")
	case !lower:
		return newError("password", "Password must contain at least one lowercase letter")
	case !digit:
		return newError("password", "Password must contain at least one digit")
	case !special:
		return newError("password", "Password must contain at least one special character")
	}
	return nil
}

// ValidateEmail checks that s is a single bare address with a dotted domain
// and returns it trimmed and lower-cased.
func ValidateEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", newError("email", "Email is required")
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", newError("email", "Email is invalid")
	}

	at := strings.LastIndex(s, "@")
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", newError("email", "Email is invalid")
	}

	return NormalizeEmail(s), nil
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IdentifierKind tells which account field a login identifier refers to.
type IdentifierKind int

const (
	IdentifierUsername IdentifierKind = iota
	IdentifierEmail
)

// ClassifyLoginIdentifier treats anything containing "@" as an email and
// everything else as a username. It returns the lookup key in canonical form;
// format is not validated.
func ClassifyLoginIdentifier(s string) (IdentifierKind, string) {
	if strings.Contains(s, "@") {
		return IdentifierEmail, NormalizeEmail(s)
	}
	return IdentifierUsername, strings.TrimSpace(s)
}

func isUsernameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
