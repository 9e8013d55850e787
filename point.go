package kmedoids

import (
	"fmt"
	"math"
)

// Point is a point in 3-D space. Points are identified by their index in the
// input, not by value: two points with equal coordinates are distinct.
type Point struct {
	X, Y, Z float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// validatePoints checks the search preconditions: at least two points, all
// coordinates finite.
func validatePoints(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("kmedoids: need at least 2 points, got %d: %w", len(points), ErrTooFewPoints)
	}
	for i, p := range points {
		if !p.finite() {
			return fmt.Errorf("kmedoids: point %d %v: %w", i, p, ErrNonFinitePoint)
		}
	}
	return nil
}
