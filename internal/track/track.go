// Package track wires the nested documents param sources and the refresh
// runner into the harness registry.
package track

import (
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/dataset"
	"github.com/kailas-cloud/nestedbench/internal/metrics"
	"github.com/kailas-cloud/nestedbench/internal/paramsource"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

// Registry names.
const (
	NestedQuerySource              = "nested-query-source"
	NestedQuerySourceWithInnerHits = "nested-query-source-with-inner-hits"
	TermQuerySource                = "term-query-source"
	SortedTermQuerySource          = "sorted-term-query-source"
	RefreshRunner                  = "refresh"
)

// Option configures Register.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	seed        uint64
	datasetPath string
	metricsReg  prometheus.Registerer
}

// WithLogger sets the logger used for registration and dataset loads.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed overrides the random seed (default paramsource.DefaultSeed).
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDatasetPath pins the dataset file instead of resolving it next to the track.
func WithDatasetPath(path string) Option {
	return func(o *options) { o.datasetPath = path }
}

// WithMetrics registers param source metrics on reg and instruments every source.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.metricsReg = reg }
}

type sourceCtor func(ds *dataset.Dataset, p rally.Params, seed uint64) rally.ParamSource

// Register adds the param sources, and the refresh runner on harness versions
// without version metadata.
func Register(reg rally.Registry, opts ...Option) error {
	o := options{logger: zap.NewNop(), seed: paramsource.DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	instrument := false
	if o.metricsReg != nil {
		if err := metrics.Register(o.metricsReg); err != nil {
			return err //nolint:wrapcheck // already wrapped by metrics
		}
		instrument = true
	}

	// Presence of the metadata attribute decides, not the version it reports:
	// harness versions that publish it ship a native refresh operation.
	if v := reg.MetaData().RallyVersion; v == nil {
		o.logger.Info("Harness reports no version metadata, registering refresh runner")
		reg.RegisterRunner(RefreshRunner, Refresh)
	} else {
		o.logger.Debug("Harness provides refresh natively", zap.Stringer("rally_version", v))
	}

	sources := []struct {
		name string
		ctor sourceCtor
	}{
		{NestedQuerySource, func(ds *dataset.Dataset, p rally.Params, seed uint64) rally.ParamSource {
			return paramsource.NewNestedQuery(ds, p, seed)
		}},
		{NestedQuerySourceWithInnerHits, func(ds *dataset.Dataset, p rally.Params, seed uint64) rally.ParamSource {
			return paramsource.NewNestedQueryWithInnerHits(ds, p, seed)
		}},
		{TermQuerySource, func(ds *dataset.Dataset, p rally.Params, seed uint64) rally.ParamSource {
			return paramsource.NewTermQuery(ds, p, seed)
		}},
		{SortedTermQuerySource, func(ds *dataset.Dataset, p rally.Params, seed uint64) rally.ParamSource {
			return paramsource.NewSortedTermQuery(ds, p, seed)
		}},
	}
	for _, s := range sources {
		reg.RegisterParamSource(s.name, newFactory(s.name, s.ctor, o, instrument))
	}

	o.logger.Info("Track registered", zap.Int("param_sources", len(sources)))
	return nil
}

// newFactory loads the dataset on every call: each harness client gets its own copy.
func newFactory(name string, ctor sourceCtor, o options, instrument bool) rally.ParamSourceFactory {
	return func(t *rally.Track, p rally.Params) (rally.ParamSource, error) {
		path := resolveDatasetPath(t, o.datasetPath)
		ds, err := dataset.Load(path)
		if err != nil {
			o.logger.Error("Failed to load dataset",
				zap.String("source", name),
				zap.String("path", path),
				zap.Error(err),
			)
			return nil, err //nolint:wrapcheck // dataset errors carry the path
		}
		o.logger.Debug("Dataset loaded",
			zap.String("source", name),
			zap.String("path", path),
			zap.Int("rows", ds.Len()),
		)

		src := ctor(ds, p, o.seed)
		if instrument {
			metrics.DatasetRows.WithLabelValues(name).Set(float64(ds.Len()))
			return paramsource.NewInstrumented(src, name, o.logger), nil
		}
		return src, nil
	}
}

// resolveDatasetPath prefers an explicit path, then the track directory, then the bundled file.
func resolveDatasetPath(t *rally.Track, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if t != nil && t.Dir != "" {
		return filepath.Join(t.Dir, dataset.FileName)
	}
	return dataset.DefaultPath()
}
