package kmedoids

import "sync"

// reduceLeafSize is the largest sub-range ReduceGlobal folds sequentially.
const reduceLeafSize = 4096

// ReduceGlobal returns the best of the given per-group solutions, skipping
// empty groups. Ties go to the smallest A, then the smallest B. It returns
// false when no solution is non-empty.
//
// The reduction is a pairwise tree: the range is halved recursively and the
// halves are combined. With workers > 1 sub-ranges larger than the leaf size
// are reduced on separate goroutines. Combine is a total order, so the result
// does not depend on workers.
func ReduceGlobal(solutions []Solution, workers int) (Solution, bool) {
	best := reduceRange(solutions, max(workers, 1))
	return best, !best.Empty()
}

func reduceRange(solutions []Solution, workers int) Solution {
	if workers <= 1 || len(solutions) <= reduceLeafSize {
		best := noSolution
		for _, s := range solutions {
			best = Combine(best, s)
		}
		return best
	}

	mid := len(solutions) / 2
	var left, right Solution
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		left = reduceRange(solutions[:mid], workers/2)
	}()
	right = reduceRange(solutions[mid:], workers-workers/2)
	wg.Wait()
	return Combine(left, right)
}
