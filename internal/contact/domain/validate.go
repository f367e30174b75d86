package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinNameLen    = 2
	MinMessageLen = 10
	MaxMessageLen = 5000

	// RateLimitWindow is the minimum spacing between submissions from the
	// same normalized email. Fixed policy constant.
	RateLimitWindow = 60 * time.Second

	// AdminListLimit caps how many submissions the listing returns.
	AdminListLimit = 50
)

// emailShape accepts local@domain.tld: a non-space, non-@ run, an @, then a
// non-space run containing a dot.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmissionInput is a normalized {name, email, message} triple.
type SubmissionInput struct {
	Name    string
	Email   string
	Message string
}

// ValidateSubmission trims the three fields and checks them in a fixed
// order: required fields, email shape, name length, message bounds. The
// order determines which error surfaces when several violations co-occur.
// Email is lower-cased on success. Pure, no I/O.
func ValidateSubmission(name, email, message string) (SubmissionInput, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return SubmissionInput{}, ErrMissingField
	}
	if !emailShape.MatchString(email) {
		return SubmissionInput{}, ErrInvalidEmailFormat
	}
	if utf8.RuneCountInString(name) < MinNameLen {
		return SubmissionInput{}, ErrNameTooShort
	}
	if utf8.RuneCountInString(message) < MinMessageLen {
		return SubmissionInput{}, ErrMessageTooShort
	}
	if utf8.RuneCountInString(message) > MaxMessageLen {
		return SubmissionInput{}, ErrMessageTooLong
	}

	return SubmissionInput{
		Name:    name,
		Email:   strings.ToLower(email),
		Message: message,
	}, nil
}
