// Package kmedoids finds the exact best pair of medoids for a set of 3-D
// points under the city-block (L1) distance.
//
// For N points it evaluates every candidate pair (a, b) with a < b, computes
// the total distance from every point to the nearer of the two, and reports
// the pair with the smallest total. The search is brute force: O(N²) pairs
// with O(N) work each. It is split into independent work units and reduced in
// two levels, first within each group of pairs sharing the same first medoid
// and then across groups.
//
// Basic usage:
//
//	cfg := kmedoids.DefaultConfig()
//	cfg.Workers = 8
//	result, err := kmedoids.Solve(points, cfg)
//	// result.Best.A, result.Best.B are the medoid indices (A < B)
//	// result.Best.Cost is the minimized total distance
//
// Reading points from a source expression or file:
//
//	src, err := kmedoids.ParseSource("uniform(1000, 42)")
//	d := kmedoids.NewDriver(cfg, logger)
//	result, err := d.Run(src)
//	kmedoids.WriteResult(os.Stdout, result)
//
// # Determinism
//
// The result depends only on the input points. Ties are broken by the
// smallest first index, then the smallest second index, and the inner cost
// sum is always partitioned into the same fixed blocks, so Workers and
// TileSize change how fast the answer arrives but never the answer.
package kmedoids
