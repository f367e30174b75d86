package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/jvrel/portfolio/internal/contact/domain"
)

var ErrUnauthorized = errors.New("unauthorized")

// ErrorHandlingMiddleware maps tagged domain errors attached via
// AbortWithError onto the response after the handler chain ran. Handlers
// never translate errors themselves and driver details never reach the body.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	if contactdomain.IsValidationError(err) {
		return http.StatusBadRequest, validationMessage(err)
	}

	switch {
	case errors.Is(err, contactdomain.ErrRateLimited):
		return http.StatusTooManyRequests, "Please wait a moment before sending another message"
	case errors.Is(err, contactdomain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Database connection error. Please try again later."
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	default:
		return http.StatusInternalServerError, "Failed to send message. Please try again later."
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, contactdomain.ErrMissingField):
		return "All fields are required"
	case errors.Is(err, contactdomain.ErrInvalidEmailFormat):
		return "Invalid email format"
	case errors.Is(err, contactdomain.ErrNameTooShort):
		return "Name must be at least 2 characters long"
	case errors.Is(err, contactdomain.ErrMessageTooShort):
		return "Message must be at least 10 characters long"
	case errors.Is(err, contactdomain.ErrMessageTooLong):
		return "Message too long"
	default:
		return "Invalid request"
	}
}
