package kmedoids

import (
	"fmt"
	"math"
	"strings"
)

// Metric computes the distance between two points. Implementations must be
// symmetric and non-negative; nothing else is assumed by the search.
type Metric interface {
	Distance(p, q Point) float64
}

// DistanceFunc adapts a plain function into a Metric.
type DistanceFunc func(p, q Point) float64

func (f DistanceFunc) Distance(p, q Point) float64 { return f(p, q) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
// It is the default metric.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(p, q Point) float64 { return cityBlock(p, q) }

func cityBlock(p, q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y) + math.Abs(p.Z-q.Z)
}

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(p, q Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(p, q Point) float64 {
	return max(math.Abs(p.X-q.X), math.Abs(p.Y-q.Y), math.Abs(p.Z-q.Z))
}

// MetricByName resolves a metric name as used in config files and flags.
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "manhattan", "cityblock", "city-block", "l1":
		return ManhattanMetric{}, nil
	case "euclidean", "l2":
		return EuclideanMetric{}, nil
	case "chebyshev", "linf":
		return ChebyshevMetric{}, nil
	default:
		return nil, fmt.Errorf("kmedoids: metric %q: %w", name, ErrUnknownMetric)
	}
}
