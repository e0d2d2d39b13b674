package wing

import "math"

// DefaultGridSize is the node count used when a segment does not set "grid".
const DefaultGridSize = 40

// Grid is the spanwise discretization of a segment: N+1 node fractions and
// N control-point fractions, one inside each node interval.
type Grid struct {
	n          int
	clustered  bool
	nodes      []float64
	controlPts []float64
}

// NewGrid builds a grid of n intervals. With clustering the nodes follow
// half-cosine spacing, concentrating points at both ends of the span;
// otherwise they are uniform.
func NewGrid(n int, clustering bool) (*Grid, error) {
	if n < 1 {
		return nil, configErr("", "grid", "node count must be a positive integer, got %d", n)
	}

	g := &Grid{
		n:          n,
		clustered:  clustering,
		nodes:      make([]float64, n+1),
		controlPts: make([]float64, n),
	}

	N := float64(n)
	if clustering {
		for k := 0; k <= n; k++ {
			g.nodes[k] = (1 - math.Cos(math.Pi*float64(k)/N)) / 2
		}
		for k := 0; k < n; k++ {
			g.controlPts[k] = (1 - math.Cos(math.Pi*(float64(k)+0.5)/N)) / 2
		}
	} else {
		for k := 0; k <= n; k++ {
			g.nodes[k] = float64(k) / N
		}
		for k := 0; k < n; k++ {
			g.controlPts[k] = (float64(k) + 0.5) / N
		}
	}

	// Pin the ends so roundoff never leaves them off [0, 1].
	g.nodes[0], g.nodes[n] = 0, 1
	return g, nil
}

// N returns the number of intervals.
func (g *Grid) N() int { return g.n }

// Clustered reports whether cosine clustering was used.
func (g *Grid) Clustered() bool { return g.clustered }

// Nodes returns a copy of the node span fractions.
func (g *Grid) Nodes() []float64 {
	out := make([]float64, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// ControlPoints returns a copy of the control-point span fractions.
func (g *Grid) ControlPoints() []float64 {
	out := make([]float64, len(g.controlPts))
	copy(out, g.controlPts)
	return out
}
