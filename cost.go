package kmedoids

import "gonum.org/v1/gonum/floats"

// costBlockSize is the number of points summed into one partial cost before
// partials are combined. It is a constant so that every decomposition of the
// search produces bit-identical costs.
const costBlockSize = 1024

// EvaluateCost returns the total cost of medoids a and b: the sum over every
// point of the distance to the nearer medoid. The medoids themselves are
// included and contribute zero.
func EvaluateCost(points []Point, a, b int, metric Metric) float64 {
	e := newCostEvaluator(points, metric)
	return e.cost(a, b)
}

// costEvaluator holds the per-worker scratch space for partial sums. It is
// not safe for concurrent use; each work unit owns one.
type costEvaluator struct {
	points    []Point
	metric    Metric
	manhattan bool
	partials  []float64
}

func newCostEvaluator(points []Point, metric Metric) *costEvaluator {
	if metric == nil {
		metric = ManhattanMetric{}
	}
	_, manhattan := metric.(ManhattanMetric)
	return &costEvaluator{
		points:    points,
		metric:    metric,
		manhattan: manhattan,
		partials:  make([]float64, (len(points)+costBlockSize-1)/costBlockSize),
	}
}

func (e *costEvaluator) cost(a, b int) float64 {
	pa, pb := e.points[a], e.points[b]
	n := len(e.points)
	for blk := range e.partials {
		start := blk * costBlockSize
		end := min(start+costBlockSize, n)
		if e.manhattan {
			e.partials[blk] = blockCostL1(e.points[start:end], pa, pb)
		} else {
			e.partials[blk] = blockCost(e.points[start:end], pa, pb, e.metric)
		}
	}
	if len(e.partials) == 1 {
		return e.partials[0]
	}
	return floats.Sum(e.partials)
}

// blockCostL1 is blockCost for the default metric without the interface call.
func blockCostL1(block []Point, pa, pb Point) float64 {
	var sum float64
	for _, p := range block {
		sum += min(cityBlock(p, pa), cityBlock(p, pb))
	}
	return sum
}

func blockCost(block []Point, pa, pb Point, metric Metric) float64 {
	var sum float64
	for _, p := range block {
		sum += min(metric.Distance(p, pa), metric.Distance(p, pb))
	}
	return sum
}
