package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/config"
	"github.com/agenthands/kgraph/internal/core/community"
	"github.com/agenthands/kgraph/internal/core/merge"
	"github.com/agenthands/kgraph/internal/core/metrics"
	"github.com/agenthands/kgraph/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "kgraph",
		Short:         "Knowledge graph analytics service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $CONFIG_PATH or config/config.toml)")

	root.AddCommand(newServeCmd(&cfgFile), newMetricsCmd(&cfgFile))
	return root
}

// loadConfig reads .env, then the TOML file when one exists, then the
// environment overrides.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if path == "" {
		path = "config/config.toml"
	}

	cfg := config.Default()
	if _, err := os.Stat(path); err == nil || explicit {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func newCoordinator(cfg config.MetricsConfig, logger *zap.Logger) (*merge.Coordinator, error) {
	detector, err := community.NewDetector(cfg.Community, cfg.LouvainResolution, cfg.LouvainMaxPasses)
	if err != nil {
		return nil, err
	}
	engine := metrics.NewEngine(metrics.Options{
		EigenTolerance:        cfg.EigenTolerance,
		EigenMaxIterations:    cfg.EigenMaxIterations,
		PageRankAlpha:         cfg.PageRankAlpha,
		PageRankTolerance:     cfg.PageRankTolerance,
		PageRankMaxIterations: cfg.PageRankMaxIterations,
		Parallel:              cfg.Parallel,
	}, detector, logger)
	return merge.NewCoordinator(engine, logger), nil
}
