package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCourseNotFound signals a missing course.
	ErrCourseNotFound = errors.New("course not found")
	// ErrCatalogUnavailable signals that the remote course catalog failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidConfig signals a missing or malformed required setting.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CatalogError wraps ErrCatalogUnavailable with details of the failed call.
// Status is the HTTP status code, or 0 for transport-level failures.
type CatalogError struct {
	Status  int
	Message string
}

func (e *CatalogError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("catalog API error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("catalog request failed: %s", e.Message)
}

func (e *CatalogError) Unwrap() error { return ErrCatalogUnavailable }

// NewCatalogError creates a catalog error for a failed remote call.
func NewCatalogError(status int, message string) error {
	return &CatalogError{Status: status, Message: message}
}
