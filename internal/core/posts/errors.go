package posts

import (
	"errors"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when no post exists for the requested id
	ErrNotFound = errors.New("post not found")

	// ErrDuplicateTitle is returned when the title uniqueness constraint
	// is violated; the repository translates the store's conflict signal
	ErrDuplicateTitle = errors.New("a post with the same title already exists")

	// ErrInvalidID is returned when a lookup key is not a well-formed UUID.
	// Raised before any store access happens.
	ErrInvalidID = errors.New("invalid id format")
)

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if error is due to a duplicate title
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateTitle)
}

// IsInvalidID checks if error is a malformed identifier error
func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}
