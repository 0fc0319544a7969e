// Package apperr defines the error taxonomy shared by services, repositories
// and handlers, and its mapping onto HTTP status codes.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrUnauthenticated covers a missing, malformed or expired credential,
	// and a credential whose subject no longer exists.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidID is returned when a resource id fails to parse. It is
	// distinct from ErrNotFound: a malformed id is a 400, never a 404.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound covers both a truly absent resource and one owned by a
	// different user. The two cases must stay indistinguishable.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when registration hits a duplicate email.
	ErrConflict = errors.New("resource already exists")

	// ErrCourseNotFound is returned when task creation references a course
	// that is absent or owned by someone else.
	ErrCourseNotFound = errors.New("course not found for this user")

	// ErrStoreUnavailable is returned on store timeout or connection loss.
	// The core never retries; that is left to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Status maps an error to its HTTP status code. Unknown errors map to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the error response for err. Taxonomy errors echo their own
// message; anything unknown gets a generic message so internals don't leak.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
