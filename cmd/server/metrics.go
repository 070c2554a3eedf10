package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/core/merge"
	"github.com/agenthands/kgraph/internal/core/model"
)

func newMetricsCmd(cfgFile *string) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Annotate a graph file with centrality and community metrics",
		Long: `Reads {"nodes": [...], "edges": [...]} where edge endpoints may be ids or
objects with an "id", normalizes it, and writes the annotated graph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			coordinator, err := newCoordinator(cfg.Metrics, logger)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", in, err)
			}
			var delta model.Delta
			if err := json.Unmarshal(data, &delta); err != nil {
				return fmt.Errorf("failed to parse %s: %w", in, err)
			}

			state, report := coordinator.Merge(merge.State{}, delta)
			logger.Info("Graph annotated",
				zap.Int("nodes", len(state.Nodes)),
				zap.Int("edges", len(state.Edges)),
				zap.Int("nodes_rejected", report.NodesRejected),
				zap.Int("edges_dropped", report.EdgesDangling+report.EdgesMalformed+report.EdgesSelfLoop+report.EdgesExisting))

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input graph JSON file")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
