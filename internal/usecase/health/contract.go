package health

import "context"

// ClusterPinger checks search cluster availability.
type ClusterPinger interface {
	Ping(ctx context.Context) error
}

// SourceChecker checks that a param source can be built and produce a parameter set.
type SourceChecker interface {
	CheckSource(ctx context.Context) error
}
