package domain

import "errors"

var (
	ErrMissingField       = errors.New("missing_field")
	ErrInvalidEmailFormat = errors.New("invalid_email_format")
	ErrNameTooShort       = errors.New("name_too_short")
	ErrMessageTooShort    = errors.New("message_too_short")
	ErrMessageTooLong     = errors.New("message_too_long")
	ErrRateLimited        = errors.New("rate_limited")
	ErrStorageUnavailable = errors.New("storage_unavailable")
)

// IsValidationError reports whether err is one of the pre-side-effect
// validation rejections.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidEmailFormat),
		errors.Is(err, ErrNameTooShort),
		errors.Is(err, ErrMessageTooShort),
		errors.Is(err, ErrMessageTooLong):
		return true
	default:
		return false
	}
}
