package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/db/elastic"
	logpkg "github.com/kailas-cloud/nestedbench/internal/logger"
	"github.com/kailas-cloud/nestedbench/internal/rally"
	"github.com/kailas-cloud/nestedbench/internal/track"
)

var refreshIndex string

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run the refresh runner against the configured cluster",
	Long: `Run the registered refresh runner. It is only registered when the configured
harness reports no version metadata (track.harness_version empty).`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVarP(&refreshIndex, "index", "i", "", "Index to refresh (default: all indices)")
}

func runRefresh(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	run, ok := a.registry.Runner(track.RefreshRunner)
	if !ok {
		return fmt.Errorf("runner %q not registered: harness %s provides it natively",
			track.RefreshRunner, a.cfg.Track.HarnessVersion)
	}

	esCfg := a.cfg.Elasticsearch
	store, err := elastic.NewStore(elastic.Config{
		URLs:     esCfg.URLs,
		Username: esCfg.Username,
		Password: esCfg.Password,
		Sniff:    esCfg.Sniff,
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("create cluster client: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.WaitForReady(ctx, time.Duration(esCfg.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("cluster not ready: %w", err)
	}

	params := rally.Params{}
	if refreshIndex != "" {
		params["index"] = refreshIndex
	}
	ctx = logpkg.ContextWithLogger(ctx, a.logger.With(zap.String("runner", track.RefreshRunner)))
	if err := run(ctx, store, params); err != nil {
		a.logger.Error("Refresh failed", zap.Error(err))
		return err
	}
	a.logger.Info("Refresh completed", zap.String("index", params.StringOr("index", track.AllIndices)))
	return nil
}
