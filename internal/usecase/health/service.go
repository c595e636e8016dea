package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the remote catalog is reachable.
	Healthy Status = "ok"
	// Degraded indicates reads are served from the offline dataset.
	Degraded Status = "degraded"
	// Unhealthy indicates the catalog is down and no offline data exists.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks. A catalog failure alone only degrades
// the service; courses are still served from the offline dataset.
type Service struct {
	catalog  CatalogPinger
	fallback FallbackReader
}

// New creates a Service. catalog may be nil (degraded mode).
func New(catalog CatalogPinger, fallback FallbackReader) *Service {
	return &Service{catalog: catalog, fallback: fallback}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.catalog == nil {
		checks["catalog"] = CheckError
	} else if err := s.catalog.Ping(ctx); err != nil {
		checks["catalog"] = CheckError
	} else {
		checks["catalog"] = CheckOK
	}

	if s.fallback != nil && len(s.fallback.Courses()) > 0 {
		checks["fallback"] = CheckOK
	} else {
		checks["fallback"] = CheckError
	}

	status := Healthy
	if checks["catalog"] == CheckError {
		status = Degraded
		if checks["fallback"] == CheckError {
			status = Unhealthy
		}
	}

	return Report{Status: status, Checks: checks}
}
