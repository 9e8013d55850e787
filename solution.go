package kmedoids

import (
	"fmt"
	"math"
)

// Solution is a candidate pair of medoid indices with its total assignment
// cost. A < B always holds for a real solution.
type Solution struct {
	A, B int
	Cost float64
}

// noSolution marks a scope that evaluated no candidate, such as the group
// whose first index is the last point. It loses every comparison.
var noSolution = Solution{A: -1, B: -1, Cost: math.Inf(1)}

// Empty reports whether s is the no-candidate sentinel.
func (s Solution) Empty() bool { return s.B < 0 }

func (s Solution) String() string {
	if s.Empty() {
		return "Medoids (none)"
	}
	return fmt.Sprintf("Medoids (%d, %d): %.3f", s.A, s.B, s.Cost)
}

// Better reports whether s beats t: lower cost wins, then the smaller first
// index, then the smaller second index. Empty solutions never win.
// This is a strict total order over non-empty solutions, so reductions built
// on it give the same answer in any grouping or order.
func (s Solution) Better(t Solution) bool {
	if s.Empty() {
		return false
	}
	if t.Empty() {
		return true
	}
	if s.Cost != t.Cost {
		return s.Cost < t.Cost
	}
	if s.A != t.A {
		return s.A < t.A
	}
	return s.B < t.B
}

// Combine returns the better of two solutions.
func Combine(s, t Solution) Solution {
	if t.Better(s) {
		return t
	}
	return s
}
