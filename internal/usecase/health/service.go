package health

import (
	"context"
	"maps"
	"slices"
)

// Status represents the aggregated preflight status.
type Status string

const (
	// Healthy indicates every check passed.
	Healthy Status = "ok"
	// Degraded indicates at least one check failed.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing check.
	CheckError CheckResult = "error"
)

// Report aggregates check results. Errors holds the cause of each failed check.
type Report struct {
	Status Status
	Checks map[string]CheckResult
	Errors map[string]error
}

// Names returns the check names, sorted.
func (r Report) Names() []string { return slices.Sorted(maps.Keys(r.Checks)) }

// Service runs the preflight checks before a benchmark.
type Service struct {
	cluster ClusterPinger
	sources map[string]SourceChecker
}

// New creates a Service. cluster can be nil when no cluster is configured.
func New(cluster ClusterPinger, sources map[string]SourceChecker) *Service {
	return &Service{cluster: cluster, sources: sources}
}

// Check runs every configured check.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Checks: make(map[string]CheckResult), Errors: make(map[string]error)}

	record := func(name string, err error) {
		if err != nil {
			r.Checks[name] = CheckError
			r.Errors[name] = err
			return
		}
		r.Checks[name] = CheckOK
	}

	if s.cluster != nil {
		record("cluster", s.cluster.Ping(ctx))
	}
	for name, d := range s.sources {
		record("source:"+name, d.CheckSource(ctx))
	}

	r.Status = Healthy
	if len(r.Errors) > 0 {
		r.Status = Degraded
	}
	return r
}
