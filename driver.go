package kmedoids

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Resources is the scheduling hint a run declares to the job system that
// launches it.
type Resources struct {
	// Cores is the number of host cores the driver needs.
	Cores int
	// Accelerators is the number of parallel devices the search needs. Here
	// the device is the goroutine worker pool.
	Accelerators int
}

// RequiredResources returns what one search run needs: one host core and
// one parallel device.
func RequiredResources() Resources {
	return Resources{Cores: 1, Accelerators: 1}
}

// Driver loads points from a source, runs the search and reports the result.
type Driver struct {
	cfg    Config
	logger *slog.Logger
}

// NewDriver returns a Driver using cfg for every run. A nil logger discards
// log output.
func NewDriver(cfg Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{cfg: cfg, logger: logger}
}

// Run materializes src and searches it. An invalid config is reported before
// src is read; fewer than two points or bad coordinates are reported before
// any search work starts. No partial result is returned on error.
func (d *Driver) Run(src PointSource) (*Result, error) {
	log := d.logger.With("run_id", uuid.NewString())

	cfg := d.cfg
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		log.Error("invalid config", "error", err)
		return nil, err
	}

	start := time.Now()
	points, err := Load(src)
	if err != nil {
		log.Error("loading points failed", "error", err)
		return nil, err
	}
	log.Debug("points loaded", "count", len(points), "elapsed", time.Since(start))

	log.Info("search started",
		"points", len(points),
		"workers", cfg.Workers,
		"tile_size", cfg.TileSize,
		"metric", fmt.Sprintf("%T", cfg.Metric),
	)

	searchStart := time.Now()
	result, err := Solve(points, cfg)
	if err != nil {
		log.Error("search failed", "error", err)
		return nil, err
	}
	log.Info("search completed",
		"a", result.Best.A,
		"b", result.Best.B,
		"cost", result.Best.Cost,
		"pairs", result.Pairs,
		"elapsed", time.Since(searchStart),
	)
	return result, nil
}

// WriteResult writes the winning indices and cost as three lines: a, b and
// the cost with three decimals.
func WriteResult(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "%d\n%d\n%.3f\n", r.Best.A, r.Best.B, r.Best.Cost)
	return err
}
