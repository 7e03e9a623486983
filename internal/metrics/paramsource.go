package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Param source Prometheus metrics.
var (
	ParamsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nestedbench",
			Subsystem: "param_source",
			Name:      "params_total",
			Help:      "Parameter sets produced by param sources",
		},
		[]string{"source", "status"},
	)

	DatasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "nestedbench",
			Subsystem: "dataset",
			Name:      "rows",
			Help:      "Rows in the most recently loaded dataset",
		},
		[]string{"source"},
	)
)

// Register adds the param source metrics to reg. Registering twice is a no-op.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{ParamsGeneratedTotal, DatasetRows} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register metrics: %w", err)
		}
	}
	return nil
}
