// Package rally describes the extension surface of the benchmark harness:
// param sources, runners and the registry that holds them.
package rally

import (
	"context"

	"github.com/kailas-cloud/nestedbench/internal/domain/query"
)

// Track is the harness's descriptor of the running track.
type Track struct {
	Name string
	// Dir is the directory the track was loaded from; co-located data files live here.
	Dir string
}

// ParamSource produces one parameter set per request.
type ParamSource interface {
	// Partition returns the source to use for client index out of total.
	Partition(index, total int) ParamSource
	// Size reports how many parameter sets one iteration consumes.
	Size() int
	// Params builds the next parameter set.
	Params() (query.Request, error)
}

// ParamSourceFactory creates a param source for one harness client.
type ParamSourceFactory func(t *Track, p Params) (ParamSource, error)

// Client is the administrative part of the harness's search client.
type Client interface {
	Refresh(ctx context.Context, index string) error
}

// Runner executes one operation against the cluster.
type Runner func(ctx context.Context, c Client, p Params) error

// MetaData is harness metadata exposed to plugins.
type MetaData struct {
	// RallyVersion is nil on harness versions that predate version metadata.
	RallyVersion *Version
}

// Registry accepts plugin registrations at track load time.
type Registry interface {
	RegisterParamSource(name string, factory ParamSourceFactory)
	RegisterRunner(name string, runner Runner)
	MetaData() MetaData
}
