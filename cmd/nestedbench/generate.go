package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateCount      int
	generateClient     int
	generateClients    int
	generateMetricsOut string
)

var generateCmd = &cobra.Command{
	Use:   "generate <param-source>",
	Short: "Print parameter sets as JSON lines",
	Long: `Instantiate a registered param source the way the harness does for one client
and print the parameter sets it produces, one JSON document per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 10, "Number of parameter sets")
	generateCmd.Flags().IntVar(&generateClient, "client", 0, "Client index passed to Partition")
	generateCmd.Flags().IntVar(&generateClients, "clients", 1, "Total clients passed to Partition")
	generateCmd.Flags().StringVar(&generateMetricsOut, "metrics-out", "",
		"Write param source metrics to this file in Prometheus text format (requires metrics.enabled)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateCount < 0 {
		return fmt.Errorf("--count must not be negative")
	}
	if generateClients < 1 || generateClient < 0 || generateClient >= generateClients {
		return fmt.Errorf("--client must be in [0, --clients)")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	name := args[0]
	factory, ok := a.registry.ParamSource(name)
	if !ok {
		return fmt.Errorf("unknown param source %q", name)
	}

	src, err := factory(a.track(), a.cfg.Params)
	if err != nil {
		return fmt.Errorf("create param source %s: %w", name, err)
	}
	src = src.Partition(generateClient, generateClients)

	enc := json.NewEncoder(cmd.OutOrStdout())
	for i := 0; i < generateCount; i += src.Size() {
		req, err := src.Params()
		if err != nil {
			return fmt.Errorf("param set %d: %w", i, err)
		}
		if err := enc.Encode(req); err != nil {
			return fmt.Errorf("encode param set %d: %w", i, err)
		}
	}
	a.logger.Debug("Parameter sets generated",
		zap.String("source", name),
		zap.Int("count", generateCount),
	)

	if generateMetricsOut != "" {
		if a.metrics == nil {
			return fmt.Errorf("--metrics-out requires metrics.enabled in config")
		}
		if err := prometheus.WriteToTextfile(generateMetricsOut, a.metrics); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
