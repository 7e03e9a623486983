// Package db holds the search cluster client contracts used by runners.
package db

import (
	"context"
	"time"
)

// Store is the cluster client facade used by the CLI.
type Store interface {
	Pinger
	Refresher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks cluster connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Refresher makes recent writes to an index visible to search.
type Refresher interface {
	Refresh(ctx context.Context, index string) error
}
