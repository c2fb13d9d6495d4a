package domain

import (
	"strings"
	"unicode/utf8"
)

// Field constraints shared by users and contacts.
const (
	MinNameLength     = 4
	MinPasswordLength = 6
	// MaxPasswordBytes is bcrypt's input limit.
	MaxPasswordBytes = 72
	PhoneDigits      = 11
)

// NormalizePhone strips every non-digit character from s.
// Applying it twice yields the same result as applying it once.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether s has exactly PhoneDigits digits once normalized.
func ValidPhone(s string) bool {
	return len(NormalizePhone(s)) == PhoneDigits
}

// ValidName reports whether s has at least MinNameLength characters.
// Length is counted in runes so accented names are measured as written.
func ValidName(s string) bool {
	return utf8.RuneCountInString(s) >= MinNameLength
}

// ValidEmail is deliberately loose: the address only has to contain '@'.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@")
}

// HasUpper reports whether s contains at least one ASCII letter A-Z.
func HasUpper(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

// HasDigit reports whether s contains at least one ASCII digit 0-9.
func HasDigit(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
}

// ValidatePassword applies the password rules in order and returns the first
// violation.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case !HasUpper(password):
		return ErrPasswordNoUpper
	case !HasDigit(password):
		return ErrPasswordNoDigit
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}
