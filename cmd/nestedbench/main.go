package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/config"
	logpkg "github.com/kailas-cloud/nestedbench/internal/logger"
	"github.com/kailas-cloud/nestedbench/internal/rally"
	"github.com/kailas-cloud/nestedbench/internal/track"
	"github.com/kailas-cloud/nestedbench/internal/version"
)

var (
	configPath string
	env        string
)

// app is what every subcommand needs: config, logger and a populated registry.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *rally.InMemoryRegistry
	metrics  *prometheus.Registry
}

var rootCmd = &cobra.Command{
	Use:   "nestedbench",
	Short: "Query parameter generators for the nested documents benchmark",
	Long: `nestedbench registers the nested documents param sources and the refresh
runner with an in-process harness registry and drives them from the command line.

Configuration is read from config/<env>.yaml (ENV, default "local") or --config.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: config/<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&env, "env", config.GetEnv(), "Environment: local, dev, prod")

	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp loads configuration, builds the logger and registers the track.
func newApp() (*app, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Debug("Starting nestedbench",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("track", cfg.Track.Name),
		zap.String("harness_version", cfg.Track.HarnessVersion),
	)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: rally.NewRegistry(cfg.Track.MetaData(), logger),
	}

	opts := []track.Option{
		track.WithLogger(logger),
		track.WithSeed(*cfg.Track.Seed),
		track.WithDatasetPath(cfg.Track.DatasetPath),
	}
	if cfg.Metrics.Enabled {
		a.metrics = prometheus.NewRegistry()
		opts = append(opts, track.WithMetrics(a.metrics))
	}
	if err := track.Register(a.registry, opts...); err != nil {
		return nil, fmt.Errorf("register track: %w", err)
	}
	return a, nil
}

func (a *app) track() *rally.Track {
	return &rally.Track{Name: a.cfg.Track.Name, Dir: a.cfg.Track.Dir}
}

func (a *app) close() {
	_ = a.logger.Sync()
}
