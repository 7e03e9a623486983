package paramsource

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/domain/query"
	"github.com/kailas-cloud/nestedbench/internal/metrics"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

// Instrumented wraps a ParamSource with counters and failure logging.
type Instrumented struct {
	inner  rally.ParamSource
	name   string
	logger *zap.Logger
}

// NewInstrumented wraps inner, labelling metrics with name.
func NewInstrumented(inner rally.ParamSource, name string, logger *zap.Logger) *Instrumented {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Instrumented{inner: inner, name: name, logger: logger}
}

// Partition partitions the inner source, keeping the wrapper when it returns itself.
func (p *Instrumented) Partition(index, total int) rally.ParamSource {
	inner := p.inner.Partition(index, total)
	if inner == p.inner {
		return p
	}
	return NewInstrumented(inner, p.name, p.logger)
}

// Size delegates to the inner source.
func (p *Instrumented) Size() int { return p.inner.Size() }

// Params delegates to the inner source and records the outcome.
func (p *Instrumented) Params() (query.Request, error) {
	req, err := p.inner.Params()
	if err != nil {
		metrics.ParamsGeneratedTotal.WithLabelValues(p.name, metrics.StatusError).Inc()
		p.logger.Error("Param generation failed",
			zap.String("source", p.name),
			zap.Error(err),
		)
		return query.Request{}, err
	}
	metrics.ParamsGeneratedTotal.WithLabelValues(p.name, metrics.StatusOK).Inc()
	return req, nil
}
