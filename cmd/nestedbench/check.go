package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/db/elastic"
	"github.com/kailas-cloud/nestedbench/internal/rally"
	"github.com/kailas-cloud/nestedbench/internal/usecase/health"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Preflight: build every param source and ping the cluster",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

// sourceCheck builds a param source and draws one parameter set from it.
type sourceCheck struct {
	factory rally.ParamSourceFactory
	track   *rally.Track
	params  rally.Params
}

func (c sourceCheck) CheckSource(_ context.Context) error {
	src, err := c.factory(c.track, c.params)
	if err != nil {
		return err
	}
	_, err = src.Params()
	return err
}

func runCheck(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	sources := make(map[string]health.SourceChecker)
	for _, name := range a.registry.ParamSourceNames() {
		f, _ := a.registry.ParamSource(name)
		sources[name] = sourceCheck{factory: f, track: a.track(), params: a.cfg.Params}
	}

	var cluster health.ClusterPinger
	if len(a.cfg.Elasticsearch.URLs) > 0 {
		store, err := elastic.NewStore(elastic.Config{
			URLs:     a.cfg.Elasticsearch.URLs,
			Username: a.cfg.Elasticsearch.Username,
			Password: a.cfg.Elasticsearch.Password,
			Logger:   a.logger,
		})
		if err != nil {
			return fmt.Errorf("create cluster client: %w", err)
		}
		defer store.Close()
		cluster = store
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(a.cfg.Elasticsearch.ReadinessTimeout)*time.Second)
	defer cancel()

	report := health.New(cluster, sources).Check(ctx)
	out := cmd.OutOrStdout()
	for _, name := range report.Names() {
		if err := report.Errors[name]; err != nil {
			fmt.Fprintf(out, "%-45s %s: %v\n", name, report.Checks[name], err)
			continue
		}
		fmt.Fprintf(out, "%-45s %s\n", name, report.Checks[name])
	}
	if report.Status != health.Healthy {
		a.logger.Warn("Preflight failed", zap.Int("failed_checks", len(report.Errors)))
		return fmt.Errorf("preflight %s", report.Status)
	}
	return nil
}
