package kmedoids

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMorePoints is returned by PointSource.Next once the source is
	// exhausted. It marks the normal end of input, not a fault.
	ErrNoMorePoints = errors.New("no more points")

	// ErrShortSource is returned by Load when a source ends before yielding
	// the number of points it announced.
	ErrShortSource = errors.New("source ended early")
)

// PointSource yields a finite sequence of points once. N is known before the
// first call to Next. Next returns ErrNoMorePoints after the last point; any
// other error is a fault in the source.
type PointSource interface {
	N() int
	Next() (Point, error)
}

// SliceSource is a PointSource over an in-memory slice.
type SliceSource struct {
	points []Point
	pos    int
}

// NewSliceSource returns a source yielding points in order.
func NewSliceSource(points []Point) *SliceSource {
	return &SliceSource{points: points}
}

func (s *SliceSource) N() int { return len(s.points) }

func (s *SliceSource) Next() (Point, error) {
	if s.pos >= len(s.points) {
		return Point{}, ErrNoMorePoints
	}
	p := s.points[s.pos]
	s.pos++
	return p, nil
}

// maxLoadPrealloc bounds the capacity Load reserves up front; N comes from the
// source and is not trusted for allocation.
const maxLoadPrealloc = 1 << 20

// Load materializes a source into a slice of exactly src.N() points.
// Points beyond N are not read. A source that reports fewer than two points
// fails with ErrTooFewPoints before anything is read.
func Load(src PointSource) ([]Point, error) {
	n := src.N()
	if n < 2 {
		return nil, fmt.Errorf("kmedoids: source has %d points: %w", n, ErrTooFewPoints)
	}

	points := make([]Point, 0, min(n, maxLoadPrealloc))
	for len(points) < n {
		p, err := src.Next()
		if errors.Is(err, ErrNoMorePoints) {
			return nil, fmt.Errorf("kmedoids: got %d of %d points: %w", len(points), n, ErrShortSource)
		}
		if err != nil {
			return nil, fmt.Errorf("kmedoids: reading point %d: %w", len(points), err)
		}
		points = append(points, p)
	}
	return points, nil
}
