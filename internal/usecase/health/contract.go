package health

import (
	"context"

	"github.com/daha-edu/coursegate/internal/domain/course"
)

// CatalogPinger probes the remote catalog.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// FallbackReader exposes the offline dataset for the readiness check.
type FallbackReader interface {
	Courses() []course.Course
}
