package course

import (
	"context"

	"github.com/daha-edu/coursegate/internal/domain/course"
	"github.com/daha-edu/coursegate/internal/domain/filter"
)

// CatalogClient lists courses from the remote catalog API.
type CatalogClient interface {
	// Courses fetches courses constrained by the given query parameters.
	Courses(ctx context.Context, params filter.Params) ([]course.Course, error)
	// AllCourses fetches the unconstrained course list.
	AllCourses(ctx context.Context) ([]course.Course, error)
}

// FallbackSource provides the static offline course dataset.
type FallbackSource interface {
	Courses() []course.Course
}
