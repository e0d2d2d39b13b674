// Package wing models the lifting surfaces of an aircraft as a tree of wing
// segments.
//
// Each segment is described by spanwise distributions of twist, dihedral,
// sweep and chord, and by one airfoil or a blend of airfoils along its span.
// From these the package resolves the quarter-chord line in body-fixed
// coordinates, discretizes the span for a lifting-line solver, and answers
// section coefficient queries.
//
// Trees are built once, parents before children, and are read-only
// afterwards; concurrent queries on a built tree are safe.
package wing

// Tree is a wing-segment tree rooted at the origin segment (ID 0).
type Tree struct {
	origin *Segment
}

// NewTree returns an empty tree whose origin segment sits at origin.
func NewTree(origin Vec3) *Tree {
	return &Tree{origin: newOriginSegment(origin)}
}

// Origin returns the root segment.
func (t *Tree) Origin() *Segment { return t.origin }

// Attach adds a segment below the segment with ID spec.ConnectTo.ID on the
// given side. See Segment.Attach.
func (t *Tree) Attach(name string, spec SegmentSpec, side Side, p Providers) (*Segment, error) {
	return t.origin.Attach(name, spec, side, p)
}

// Find returns the segment with the given name, or nil.
func (t *Tree) Find(name string) *Segment {
	return t.origin.Find(name)
}

// Walk calls fn for every segment except the origin, depth first in
// attachment order. It stops at the first error.
func (t *Tree) Walk(fn func(*Segment) error) error {
	stack := t.origin.Children()
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}

	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(seg); err != nil {
			return err
		}
		children := seg.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// Segments returns every segment except the origin in Walk order.
func (t *Tree) Segments() []*Segment {
	var out []*Segment
	t.Walk(func(s *Segment) error {
		out = append(out, s)
		return nil
	})
	return out
}

// Len returns the number of segments, excluding the origin.
func (t *Tree) Len() int {
	return len(t.Segments())
}
