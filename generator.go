package kmedoids

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ErrUnknownSource is returned by ParseSource for an unrecognized expression.
var ErrUnknownSource = errors.New("unknown point source")

// MaxGeneratedPoints is the largest point count a generator expression accepts.
const MaxGeneratedPoints = 1 << 24

// generatorSource yields n points computed on demand by gen.
type generatorSource struct {
	n   int
	i   int
	gen func(i int) Point
}

func (s *generatorSource) N() int { return s.n }

func (s *generatorSource) Next() (Point, error) {
	if s.i >= s.n {
		return Point{}, ErrNoMorePoints
	}
	p := s.gen(s.i)
	s.i++
	return p, nil
}

// UniformSource yields n points drawn uniformly from the cube [0, side)³.
// The same seed always yields the same points.
func UniformSource(n int, seed uint64, side float64) PointSource {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &generatorSource{n: n, gen: func(int) Point {
		return Point{X: rng.Float64() * side, Y: rng.Float64() * side, Z: rng.Float64() * side}
	}}
}

// GaussianSource yields n points scattered with standard deviation sigma
// around k centers drawn uniformly from [0, 100)³. Point i belongs to center
// i mod k.
func GaussianSource(n int, seed uint64, k int, sigma float64) PointSource {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	centers := make([]Point, max(k, 1))
	for i := range centers {
		centers[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100, Z: rng.Float64() * 100}
	}
	return &generatorSource{n: n, gen: func(i int) Point {
		c := centers[i%len(centers)]
		return Point{
			X: c.X + rng.NormFloat64()*sigma,
			Y: c.Y + rng.NormFloat64()*sigma,
			Z: c.Z + rng.NormFloat64()*sigma,
		}
	}}
}

// LineSource yields the points (i*step, 0, 0) for i in [0, n).
func LineSource(n int, step float64) PointSource {
	return &generatorSource{n: n, gen: func(i int) Point {
		return Point{X: float64(i) * step}
	}}
}

// ParseSource builds a point source from an expression:
//
//	uniform(n, seed[, side])       side defaults to 100
//	gaussian(n, seed, k[, sigma])  sigma defaults to 5
//	line(n[, step])                step defaults to 1
//	file(path)                     a point file, see OpenPointFile
//
// Any expression without parentheses is taken as a point file path.
func ParseSource(expr string) (PointSource, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("kmedoids: empty source expression: %w", ErrUnknownSource)
	}

	open := strings.IndexByte(expr, '(')
	if open < 0 {
		return OpenPointFile(expr)
	}
	if !strings.HasSuffix(expr, ")") {
		return nil, fmt.Errorf("kmedoids: source %q: missing closing parenthesis: %w", expr, ErrUnknownSource)
	}

	name := strings.ToLower(strings.TrimSpace(expr[:open]))
	inner := strings.TrimSpace(expr[open+1 : len(expr)-1])
	var args []string
	if inner != "" {
		for _, a := range strings.Split(inner, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}

	p := argParser{expr: expr, args: args}
	switch name {
	case "uniform":
		p.arity(2, 3)
		n, seed, side := p.count(0), p.seed(1), p.float(2, 100)
		if p.err != nil {
			return nil, p.err
		}
		return UniformSource(n, seed, side), nil
	case "gaussian":
		p.arity(3, 4)
		n, seed, k, sigma := p.count(0), p.seed(1), p.count(2), p.float(3, 5)
		if p.err == nil && k < 1 {
			p.fail("k must be >= 1")
		}
		if p.err != nil {
			return nil, p.err
		}
		return GaussianSource(n, seed, k, sigma), nil
	case "line":
		p.arity(1, 2)
		n, step := p.count(0), p.float(1, 1)
		if p.err != nil {
			return nil, p.err
		}
		return LineSource(n, step), nil
	case "file":
		// The path is taken whole; it may contain commas.
		if inner == "" {
			p.fail("want a path")
			return nil, p.err
		}
		return OpenPointFile(inner)
	default:
		return nil, fmt.Errorf("kmedoids: source %q: generator %q: %w", expr, name, ErrUnknownSource)
	}
}

// argParser accumulates the first argument error so that ParseSource can
// read all arguments and check once.
type argParser struct {
	expr string
	args []string
	err  error
}

func (p *argParser) fail(format string, a ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("kmedoids: source %q: %s: %w", p.expr, fmt.Sprintf(format, a...), ErrUnknownSource)
	}
}

func (p *argParser) arity(lo, hi int) {
	if len(p.args) < lo || len(p.args) > hi {
		if lo == hi {
			p.fail("want %d arguments, got %d", lo, len(p.args))
		} else {
			p.fail("want %d to %d arguments, got %d", lo, hi, len(p.args))
		}
	}
}

func (p *argParser) count(i int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.args[i])
	if err != nil || v < 0 {
		p.fail("argument %d: invalid count %q", i+1, p.args[i])
		return 0
	}
	if v > MaxGeneratedPoints {
		p.fail("argument %d: count %d exceeds %d", i+1, v, MaxGeneratedPoints)
		return 0
	}
	return v
}

func (p *argParser) seed(i int) uint64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(p.args[i], 10, 64)
	if err != nil {
		p.fail("argument %d: invalid seed %q", i+1, p.args[i])
	}
	return v
}

func (p *argParser) float(i int, def float64) float64 {
	if p.err != nil {
		return 0
	}
	if i >= len(p.args) {
		return def
	}
	v, err := strconv.ParseFloat(p.args[i], 64)
	if err != nil {
		p.fail("argument %d: invalid number %q", i+1, p.args[i])
	}
	return v
}
