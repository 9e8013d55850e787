// Package main provides the kmedoids CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TrevorS/kmedoids"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kmedoids [flags] <source>",
		Short: "Find the exact best pair of medoids for a set of 3-D points",
		Long: `kmedoids evaluates every pair of points as candidate medoids and prints
the pair minimizing the total city-block distance from every point to the
nearer of the two, followed by that distance.

<source> is a generator expression or a point file:
  uniform(n, seed[, side])       n points uniform in [0, side)^3
  gaussian(n, seed, k[, sigma])  n points around k random centers
  line(n[, step])                the points (i*step, 0, 0)
  file(path) or path             text or .bin point file, optionally .zst/.lz4

Output is three lines: the first index, the second index, and the cost.`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.Flags().Int("workers", 0, "Worker goroutines (0 = number of CPUs)")
	rootCmd.Flags().Int("tile-size", kmedoids.DefaultTileSize, "Candidate second medoids per work unit")
	rootCmd.Flags().String("metric", "manhattan", "Distance metric (manhattan, euclidean, chebyshev)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "resources",
		Short: "Print the resources a search run requires",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r := kmedoids.RequiredResources()
			fmt.Fprintf(cmd.OutOrStdout(), "cores: %d\naccelerators: %d\n", r.Cores, r.Accelerators)
		},
	})

	return rootCmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// A malformed source is a usage error; later failures are not.
	src, err := kmedoids.ParseSource(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	fc, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := fc.Config()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), fc.Log)
	if err != nil {
		return err
	}

	result, err := kmedoids.NewDriver(cfg, logger).Run(src)
	if err != nil {
		return err
	}
	return kmedoids.WriteResult(cmd.OutOrStdout(), result)
}

// loadFileConfig reads --config when given and overlays every flag the user
// set explicitly.
func loadFileConfig(cmd *cobra.Command) (kmedoids.FileConfig, error) {
	fc := kmedoids.DefaultFileConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if fc, err = kmedoids.LoadFileConfig(path); err != nil {
			return fc, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		fc.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("tile-size") {
		fc.TileSize, _ = flags.GetInt("tile-size")
	}
	if flags.Changed("metric") {
		fc.Metric, _ = flags.GetString("metric")
	}
	if flags.Changed("log-level") {
		fc.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		fc.Log.Format, _ = flags.GetString("log-format")
	}
	return fc, nil
}

func newLogger(w io.Writer, lc kmedoids.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(lc.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", lc.Format)
	}
}
