// Package health aggregates component health checks for the readiness
// endpoint.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates a failing component.
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
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	corpus CorpusReader
}

// New creates a Service.
func New(corpus CorpusReader) *Service {
	return &Service{corpus: corpus}
}

// Check verifies the corpus is loaded and non-empty. The corpus is read
// once at startup, so an empty corpus here means the process booted in a
// state it should never serve from.
func (s *Service) Check(_ context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.corpus == nil || len(s.corpus.Quotes()) == 0 {
		checks["corpus"] = CheckError
		return Report{Status: Unhealthy, Checks: checks}
	}
	checks["corpus"] = CheckOK
	return Report{Status: Healthy, Checks: checks}
}
