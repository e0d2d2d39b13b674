package wing

import (
	"errors"
	"math"
	"testing"
)

func TestClusteredGridN4(t *testing.T) {
	g, err := NewGrid(4, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 0.1464466, 0.5, 0.8535534, 1}
	nodes := g.Nodes()
	if len(nodes) != len(want) {
		t.Fatalf("nodes = %v, want %d entries", nodes, len(want))
	}
	for i := range want {
		if math.Abs(nodes[i]-want[i]) > 1e-6 {
			t.Errorf("node[%d] = %.7f, want %.7f", i, nodes[i], want[i])
		}
	}
}

func TestClusteredGridSymmetry(t *testing.T) {
	g, err := NewGrid(9, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes := g.Nodes()
	n := len(nodes) - 1
	for k := 0; k < n; k++ {
		head := nodes[k+1] - nodes[k]
		tail := nodes[n-k] - nodes[n-k-1]
		if math.Abs(head-tail) > 1e-12 {
			t.Errorf("spacing %d from root = %g, from tip = %g", k, head, tail)
		}
	}
	if nodes[1]-nodes[0] >= nodes[5]-nodes[4] {
		t.Error("clustered spacing should be finer at the ends than at midspan")
	}
}

func TestGridMonotonic(t *testing.T) {
	for _, clustering := range []bool{true, false} {
		for _, n := range []int{1, 2, 3, 7, 40, 101} {
			g, err := NewGrid(n, clustering)
			if err != nil {
				t.Fatalf("NewGrid(%d, %v): %v", n, clustering, err)
			}
			nodes, cps := g.Nodes(), g.ControlPoints()
			if len(nodes) != n+1 || len(cps) != n {
				t.Fatalf("NewGrid(%d, %v): %d nodes, %d control points", n, clustering, len(nodes), len(cps))
			}
			if nodes[0] != 0 || nodes[n] != 1 {
				t.Errorf("NewGrid(%d, %v): ends = %g, %g", n, clustering, nodes[0], nodes[n])
			}
			for k := 0; k < n; k++ {
				if nodes[k+1] <= nodes[k] {
					t.Errorf("NewGrid(%d, %v): nodes not increasing at %d", n, clustering, k)
				}
				if cps[k] <= nodes[k] || cps[k] >= nodes[k+1] {
					t.Errorf("NewGrid(%d, %v): control point %d = %g not inside (%g, %g)",
						n, clustering, k, cps[k], nodes[k], nodes[k+1])
				}
			}
		}
	}
}

func TestUniformGrid(t *testing.T) {
	g, err := NewGrid(4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantNodes := []float64{0, 0.25, 0.5, 0.75, 1}
	wantCPs := []float64{0.125, 0.375, 0.625, 0.875}
	for i, v := range g.Nodes() {
		if v != wantNodes[i] {
			t.Errorf("node[%d] = %g, want %g", i, v, wantNodes[i])
		}
	}
	for i, v := range g.ControlPoints() {
		if v != wantCPs[i] {
			t.Errorf("cp[%d] = %g, want %g", i, v, wantCPs[i])
		}
	}
	if g.Clustered() {
		t.Error("Clustered() = true for uniform grid")
	}
}

func TestGridRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := NewGrid(n, true)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("NewGrid(%d): error = %v, want configuration error", n, err)
		}
	}
}
