package kmedoids

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrTooFewPoints is returned when fewer than two points are supplied;
	// no pair of medoids exists.
	ErrTooFewPoints = errors.New("too few points")

	// ErrNonFinitePoint is returned when a coordinate is NaN or infinite.
	ErrNonFinitePoint = errors.New("non-finite coordinate")

	// ErrUnknownMetric is returned by MetricByName for an unrecognized name.
	ErrUnknownMetric = errors.New("unknown metric")
)

// DefaultTileSize is the default number of candidate second medoids evaluated
// by one work unit.
const DefaultTileSize = 256

// Config controls how the search is scheduled. None of the fields change the
// result, only how the work is split.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the distance between points. Default: ManhattanMetric.
	Metric Metric

	// Workers is the number of goroutines evaluating candidates. 1 runs the
	// whole search on the calling goroutine. 0 means use runtime.NumCPU().
	// Default: 0 (auto).
	Workers int

	// TileSize is the number of candidate second medoids in one work unit.
	// Smaller tiles balance load better across workers at the cost of more
	// scheduling. Must be >= 1 after defaulting. Default: 256.
	TileSize int
}

// Result is the outcome of one search.
type Result struct {
	// Best is the winning pair and its cost.
	Best Solution

	// Points is the number of input points.
	Points int

	// Pairs is the number of candidate pairs evaluated, N*(N-1)/2.
	Pairs int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric:   ManhattanMetric{},
		TileSize: DefaultTileSize,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = ManhattanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.TileSize == 0 {
		cfg.TileSize = DefaultTileSize
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("kmedoids: Workers must be >= 1 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	if cfg.TileSize < 1 {
		return fmt.Errorf("kmedoids: TileSize must be >= 1, got %d", cfg.TileSize)
	}
	return nil
}

// Solve finds the pair of points (a, b), a < b, minimizing the total distance
// from every point to the nearer of the two. It returns an error if the config
// is invalid, if there are fewer than two points, or if a coordinate is not
// finite; no search work starts in those cases.
func Solve(points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	n := len(points)
	var best Solution
	if cfg.Workers == 1 {
		best = Search(points, cfg.Metric)
	} else {
		best = SearchParallel(points, cfg.Metric, cfg.Workers, cfg.TileSize)
	}

	return &Result{
		Best:   best,
		Points: n,
		Pairs:  n * (n - 1) / 2,
	}, nil
}
