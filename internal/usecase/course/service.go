package course

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/daha-edu/coursegate/internal/domain"
	"github.com/daha-edu/coursegate/internal/domain/course"
	"github.com/daha-edu/coursegate/internal/domain/filter"
	"github.com/daha-edu/coursegate/internal/metrics"
)

// Service orchestrates course search: filter translation, the remote
// catalog fetch, authoritative local re-filtering, and degradation to the
// offline dataset when the catalog cannot be reached.
//
// The operating mode is fixed at construction: a nil client puts the
// service into degraded mode for the lifetime of the process and every
// read is served from the fallback source. FilterCourses and CourseByID
// never return an error; failures degrade to best-effort data and are
// observable only in the logs.
type Service struct {
	client   CatalogClient
	fallback FallbackSource
	logger   *zap.Logger
}

// New creates a course service. client may be nil (degraded mode).
func New(client CatalogClient, fallback FallbackSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, fallback: fallback, logger: logger}
}

// Degraded reports whether the service runs without a catalog client.
func (s *Service) Degraded() bool {
	return s.client == nil
}

// FilterCourses returns the courses matching the filter bag. Candidates are
// fetched from the catalog constrained by the translated parameters (or the
// full list when the bag translates to nothing), then re-filtered locally.
// Any fetch failure falls back to the offline dataset.
func (s *Service) FilterCourses(ctx context.Context, bag filter.Bag) []course.Course {
	if s.client == nil {
		s.logger.Warn("catalog client unavailable, serving fallback courses")
		return s.fallbackCourses(bag)
	}

	params := Translate(bag)

	var (
		candidates []course.Course
		err        error
	)
	if params.IsEmpty() {
		candidates, err = s.client.AllCourses(ctx)
	} else {
		candidates, err = s.client.Courses(ctx, params)
	}
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			s.logger.Error("catalog fetch failed, serving fallback courses", zap.Error(err))
		} else {
			s.logger.Error("unexpected error fetching courses, serving fallback courses", zap.Error(err))
		}
		return s.fallbackCourses(bag)
	}

	results := Evaluate(candidates, bag)
	s.logger.Info("courses filtered",
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)
	return results
}

// CourseByID fetches the full course list and scans for the given id.
// Returns false in degraded mode, when the fetch fails, or when no course
// carries the id; there is no fallback lookup by id.
func (s *Service) CourseByID(ctx context.Context, id int) (course.Course, bool) {
	if s.client == nil {
		s.logger.Warn("catalog client unavailable for course lookup", zap.Int("course_id", id))
		return course.Course{}, false
	}

	all, err := s.client.AllCourses(ctx)
	if err != nil {
		s.logger.Error("course lookup failed", zap.Int("course_id", id), zap.Error(err))
		return course.Course{}, false
	}

	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return course.Course{}, false
}

// fallbackCourses applies the full filter bag to the offline dataset.
func (s *Service) fallbackCourses(bag filter.Bag) []course.Course {
	metrics.FallbackServedTotal.Inc()
	if s.fallback == nil {
		return []course.Course{}
	}
	return Evaluate(s.fallback.Courses(), bag)
}
