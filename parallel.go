package kmedoids

import (
	"golang.org/x/sync/errgroup"
)

// Search finds the best pair of medoids on the calling goroutine.
// points must hold at least two points; see Solve for the checked entry point.
//
// The result is bitwise identical to SearchParallel for any worker count and
// tile size.
func Search(points []Point, metric Metric) Solution {
	groups := make([]Solution, len(points))
	for a := range points {
		groups[a], _ = ReduceGroup(points, a, metric)
	}
	best, _ := ReduceGlobal(groups, 1)
	return best
}

// SearchParallel finds the best pair of medoids using up to numWorkers
// goroutines. Falls back to Search if numWorkers <= 1.
//
// Work is split into units of one first medoid a and a tile of at most
// tileSize consecutive candidates b. The search runs in three phases with a
// barrier after each:
//
//  1. every unit reduces its tile to one Solution in its own arena slot;
//  2. every group folds its tiles in order into a group Solution;
//  3. the group Solutions are tree-reduced into the global best.
//
// No unit writes to state another unit reads, so the point slice and the
// arenas need no locking.
func SearchParallel(points []Point, metric Metric, numWorkers, tileSize int) Solution {
	n := len(points)
	if numWorkers <= 1 || n <= 2 {
		return Search(points, metric)
	}
	tileSize = max(tileSize, 1)

	layout := newTileLayout(n, tileSize)
	tiles := make([]Solution, layout.total())

	var g errgroup.Group
	g.SetLimit(numWorkers)
	for a := 0; a < n-1; a++ {
		for t := 0; t < layout.offsets[a+1]-layout.offsets[a]; t++ {
			slot := layout.offsets[a] + t
			g.Go(func() error {
				lo, hi := layout.bounds(a, t)
				tiles[slot] = reduceTile(newCostEvaluator(points, metric), a, lo, hi)
				return nil
			})
		}
	}
	_ = g.Wait()

	groups := make([]Solution, n)
	forEachChunk(n, numWorkers, func(start, end int) {
		for a := start; a < end; a++ {
			groups[a] = layout.foldGroup(tiles, a)
		}
	})

	best, _ := ReduceGlobal(groups, numWorkers)
	return best
}

// forEachChunk splits [0, n) into contiguous ranges, one per worker, and runs
// fn on each concurrently. Ranges do not overlap, so fn may write to its own
// indices without synchronization.
func forEachChunk(n, numWorkers int, fn func(start, end int)) {
	var g errgroup.Group
	perWorker := (n + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		if start >= n {
			break
		}
		end := min(start+perWorker, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
