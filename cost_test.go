package kmedoids

import (
	"math/rand"
	"testing"
)

// naiveCost recomputes the assignment cost with a single running sum.
func naiveCost(points []Point, a, b int) float64 {
	var sum float64
	for _, p := range points {
		sum += min(cityBlock(p, points[a]), cityBlock(p, points[b]))
	}
	return sum
}

// integerPoints returns n points with integer coordinates in [0, span).
// Costs over such points are exact in float64, so any summation order gives
// the same bits.
func integerPoints(n, span int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X: float64(rng.Intn(span)),
			Y: float64(rng.Intn(span)),
			Z: float64(rng.Intn(span)),
		}
	}
	return pts
}

func randomPoints(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100, Z: rng.Float64() * 100}
	}
	return pts
}

func TestEvaluateCost_ThreePointExample(t *testing.T) {
	pts := []Point{{0, 0, 0}, {10, 0, 0}, {5, 0, 0}}
	// Point 2 is 5 from either medoid; the medoids contribute 0.
	if c := EvaluateCost(pts, 0, 1, ManhattanMetric{}); c != 5 {
		t.Errorf("expected 5, got %v", c)
	}
}

func TestEvaluateCost_TwoPoints(t *testing.T) {
	pts := []Point{{1, 2, 3}, {-4, 5, 6}}
	if c := EvaluateCost(pts, 0, 1, ManhattanMetric{}); c != 0 {
		t.Errorf("expected 0, got %v", c)
	}
}

func TestEvaluateCost_Symmetric(t *testing.T) {
	pts := randomPoints(30, 1)
	for _, pair := range [][2]int{{0, 1}, {3, 17}, {28, 29}} {
		ab := EvaluateCost(pts, pair[0], pair[1], ManhattanMetric{})
		ba := EvaluateCost(pts, pair[1], pair[0], ManhattanMetric{})
		if ab != ba {
			t.Errorf("cost(%d,%d)=%v != cost(%d,%d)=%v", pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestEvaluateCost_NilMetricIsManhattan(t *testing.T) {
	pts := randomPoints(20, 2)
	if EvaluateCost(pts, 2, 9, nil) != EvaluateCost(pts, 2, 9, ManhattanMetric{}) {
		t.Error("nil metric should behave as ManhattanMetric")
	}
}

func TestEvaluateCost_SpansSeveralBlocks(t *testing.T) {
	// More than two blocks, with a partial final block.
	n := 2*costBlockSize + 37
	pts := integerPoints(n, 1000, 3)

	for _, pair := range [][2]int{{0, 1}, {5, n - 1}, {costBlockSize, costBlockSize + 1}} {
		got := EvaluateCost(pts, pair[0], pair[1], ManhattanMetric{})
		want := naiveCost(pts, pair[0], pair[1])
		if got != want {
			t.Errorf("cost(%d,%d) = %v, expected %v", pair[0], pair[1], got, want)
		}
	}
}

func TestEvaluateCost_FloatBlocksCloseToNaive(t *testing.T) {
	n := costBlockSize + 500
	pts := randomPoints(n, 4)
	got := EvaluateCost(pts, 10, 20, ManhattanMetric{})
	want := naiveCost(pts, 10, 20)
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("cost = %v, expected %v", got, want)
	}
}

func TestEvaluateCost_GenericMetricPath(t *testing.T) {
	pts := randomPoints(40, 5)
	// A DistanceFunc computing L1 must match the specialized path.
	l1 := DistanceFunc(func(p, q Point) float64 { return ManhattanMetric{}.Distance(p, q) })
	if EvaluateCost(pts, 4, 33, l1) != EvaluateCost(pts, 4, 33, ManhattanMetric{}) {
		t.Error("generic and specialized L1 paths differ")
	}
}

func TestEvaluateCost_OtherMetrics(t *testing.T) {
	pts := []Point{{0, 0, 0}, {3, 4, 0}, {6, 8, 0}}
	// Medoids 0 and 2: point 1 is 5 (L2) or 4 (Linf) from either.
	if c := EvaluateCost(pts, 0, 2, EuclideanMetric{}); !almostEqual(c, 5, floatTol) {
		t.Errorf("euclidean: expected 5, got %v", c)
	}
	if c := EvaluateCost(pts, 0, 2, ChebyshevMetric{}); c != 4 {
		t.Errorf("chebyshev: expected 4, got %v", c)
	}
}
