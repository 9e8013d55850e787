package kmedoids

// ReduceGroup evaluates every candidate second medoid b in (a, N) for the
// fixed first medoid a and returns the best pair. Ties keep the smallest b.
// It returns false when the group has no candidates (a >= N-1 or a < 0).
func ReduceGroup(points []Point, a int, metric Metric) (Solution, bool) {
	n := len(points)
	if a < 0 || a >= n-1 {
		return noSolution, false
	}
	e := newCostEvaluator(points, metric)
	return reduceTile(e, a, a+1, n), true
}

// reduceTile evaluates candidates b in [lo, hi) for first medoid a.
// Candidates are visited in ascending b and only a strictly lower cost
// replaces the incumbent, so the first of equal-cost candidates wins.
func reduceTile(e *costEvaluator, a, lo, hi int) Solution {
	best := noSolution
	for b := lo; b < hi; b++ {
		c := e.cost(a, b)
		if best.Empty() || c < best.Cost {
			best = Solution{A: a, B: b, Cost: c}
		}
	}
	return best
}

// groupTiles returns the number of tiles of size tileSize covering the
// candidates of group a among n points.
func groupTiles(n, a, tileSize int) int {
	candidates := n - 1 - a
	if candidates <= 0 {
		return 0
	}
	return (candidates + tileSize - 1) / tileSize
}

// tileLayout indexes the flat arena of per-tile solutions: group a owns
// arena[offsets[a]:offsets[a+1]].
type tileLayout struct {
	n        int
	tileSize int
	offsets  []int
}

func newTileLayout(n, tileSize int) tileLayout {
	offsets := make([]int, n+1)
	for a := 0; a < n; a++ {
		offsets[a+1] = offsets[a] + groupTiles(n, a, tileSize)
	}
	return tileLayout{n: n, tileSize: tileSize, offsets: offsets}
}

func (l tileLayout) total() int { return l.offsets[l.n] }

// bounds returns the candidate range [lo, hi) of tile t in group a.
func (l tileLayout) bounds(a, t int) (lo, hi int) {
	lo = a + 1 + t*l.tileSize
	hi = min(lo+l.tileSize, l.n)
	return lo, hi
}

// foldGroup combines the tile results of group a in tile order.
func (l tileLayout) foldGroup(arena []Solution, a int) Solution {
	best := noSolution
	for _, s := range arena[l.offsets[a]:l.offsets[a+1]] {
		best = Combine(best, s)
	}
	return best
}
