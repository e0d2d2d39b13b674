package wing

import (
	"math"

	"github.com/alexiusacademia/golift/internal/integrate"
)

// Geometry locates the quarter-chord line of a segment in body-fixed
// coordinates. It keeps no reference to the parent: the origin is a copy of
// the parent's attachment point taken when the segment was attached.
type Geometry struct {
	origin   Vec3
	offset   Vec3
	span     float64
	side     Side
	sweep    SpanFunction
	dihedral SpanFunction
	isOrigin bool
}

// RootLocation returns the root quarter-chord point.
func (g *Geometry) RootLocation() Vec3 {
	if g.isOrigin {
		return g.origin
	}
	return g.origin.Add(g.offset)
}

// TipLocation returns the tip quarter-chord point.
func (g *Geometry) TipLocation() (Vec3, error) {
	return g.QuarterChordLocation(1)
}

// QuarterChordLocation returns the quarter-chord point at span fraction s,
// found by integrating the local sweep and dihedral angles from the root:
//
//	dx = -b ∫ tan(sweep) ds
//	dy = ±b ∫ cos(dihedral) ds   (- on the left side)
//	dz = -b ∫ sin(dihedral) ds
func (g *Geometry) QuarterChordLocation(s float64) (Vec3, error) {
	root := g.RootLocation()
	if g.isOrigin || s == 0 {
		return root, nil
	}

	sweepBreaks := g.sweep.Breakpoints()
	dihedralBreaks := g.dihedral.Breakpoints()

	tanSweep, err := integrate.Adaptive(func(t float64) float64 {
		return math.Tan(radians(g.sweep.Evaluate(t)))
	}, 0, s, sweepBreaks, integrate.Options{})
	if err != nil {
		return Vec3{}, &IntegrationError{Quantity: "sweep", Err: err}
	}

	cosDihedral, err := integrate.Adaptive(func(t float64) float64 {
		return math.Cos(radians(g.dihedral.Evaluate(t)))
	}, 0, s, dihedralBreaks, integrate.Options{})
	if err != nil {
		return Vec3{}, &IntegrationError{Quantity: "dihedral", Err: err}
	}

	sinDihedral, err := integrate.Adaptive(func(t float64) float64 {
		return math.Sin(radians(g.dihedral.Evaluate(t)))
	}, 0, s, dihedralBreaks, integrate.Options{})
	if err != nil {
		return Vec3{}, &IntegrationError{Quantity: "dihedral", Err: err}
	}

	lateral := cosDihedral
	if g.side == SideLeft {
		lateral = -lateral
	}

	ds := Vec3{X: -tanSweep, Y: lateral, Z: -sinDihedral}.Scale(g.span)
	return root.Add(ds), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
