// Package integrate provides the adaptive quadrature used to resolve wing
// shapes from spanwise sweep and dihedral distributions.
package integrate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

// Default settings for Adaptive.
const (
	DefaultTolerance = 1e-12
	DefaultMaxDepth  = 40

	// Gauss-Legendre points per panel. Integrands are smooth between
	// breakpoints, so a low order converges in very few bisections.
	legendrePoints = 8
)

var (
	ErrNoConvergence = errors.New("quadrature did not converge")
	ErrNonFinite     = errors.New("integrand is not finite")
)

// Options controls the adaptive rule. Zero values select the defaults.
type Options struct {
	Tolerance float64 // absolute/relative panel tolerance
	MaxDepth  int     // maximum bisection depth per panel
}

// Adaptive integrates f over [a, b].
//
// The interval is first split at every breakpoint lying strictly inside it,
// so integrands that are only piecewise smooth (kinks at table rows) are
// integrated panel by panel. Each panel is bisected until the Gauss-Legendre
// estimate of the whole panel agrees with the sum of its halves.
// If b < a the result is negated, and a == b yields exactly zero.
func Adaptive(f func(float64) float64, a, b float64, breakpoints []float64, opts Options) (float64, error) {
	if a == b {
		return 0, nil
	}
	if b < a {
		v, err := Adaptive(f, b, a, breakpoints, opts)
		return -v, err
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	edges := panelEdges(a, b, breakpoints)

	var total float64
	for i := 0; i < len(edges)-1; i++ {
		v, err := panel(f, edges[i], edges[i+1], opts, 0)
		if err != nil {
			return 0, fmt.Errorf("panel [%g, %g]: %w", edges[i], edges[i+1], err)
		}
		total += v
	}
	return total, nil
}

// panelEdges returns a, the sorted unique breakpoints inside (a, b), and b.
func panelEdges(a, b float64, breakpoints []float64) []float64 {
	edges := []float64{a}
	inner := make([]float64, 0, len(breakpoints))
	for _, p := range breakpoints {
		if p > a && p < b {
			inner = append(inner, p)
		}
	}
	sort.Float64s(inner)
	for _, p := range inner {
		if p != edges[len(edges)-1] {
			edges = append(edges, p)
		}
	}
	return append(edges, b)
}

func panel(f func(float64) float64, a, b float64, opts Options, depth int) (float64, error) {
	whole := quad.Fixed(f, a, b, legendrePoints, quad.Legendre{}, 0)
	m := a + (b-a)/2
	left := quad.Fixed(f, a, m, legendrePoints, quad.Legendre{}, 0)
	right := quad.Fixed(f, m, b, legendrePoints, quad.Legendre{}, 0)
	halves := left + right

	if math.IsNaN(halves) || math.IsInf(halves, 0) {
		return 0, ErrNonFinite
	}

	if math.Abs(halves-whole) <= opts.Tolerance*math.Max(1, math.Abs(halves)) {
		return halves, nil
	}
	if depth >= opts.MaxDepth || m <= a || m >= b {
		return 0, ErrNoConvergence
	}

	l, err := panel(f, a, m, opts, depth+1)
	if err != nil {
		return 0, err
	}
	r, err := panel(f, m, b, opts, depth+1)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}
