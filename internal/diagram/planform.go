package diagram

import (
	"github.com/alexiusacademia/golift/internal/wing"
)

// PlanformSegment is the plan-view outline of one wing segment.
type PlanformSegment struct {
	Name         string
	LeadingEdge  []Point // root to tip
	TrailingEdge []Point // root to tip
	QuarterChord []Point // root to tip
}

// PlanformData holds the outlines of every segment of a tree.
type PlanformData struct {
	Title    string
	Unit     string
	Segments []PlanformSegment
}

// PlanformFromTree samples every segment of tree at stations+1 evenly spaced
// span fractions. The leading edge lies a quarter chord ahead of the
// quarter-chord line and the trailing edge three quarters behind it.
func PlanformFromTree(title, unit string, tree *wing.Tree, stations int) (PlanformData, error) {
	if stations < 1 {
		stations = 1
	}
	data := PlanformData{Title: title, Unit: unit}

	err := tree.Walk(func(seg *wing.Segment) error {
		ps := PlanformSegment{Name: seg.Name()}
		for i := 0; i <= stations; i++ {
			s := float64(i) / float64(stations)
			qc, err := seg.QuarterChordLocation(s)
			if err != nil {
				return err
			}
			c := seg.Chord(s)
			ps.QuarterChord = append(ps.QuarterChord, Point{X: qc.X, Y: qc.Y})
			ps.LeadingEdge = append(ps.LeadingEdge, Point{X: qc.X + c/4, Y: qc.Y})
			ps.TrailingEdge = append(ps.TrailingEdge, Point{X: qc.X - 3*c/4, Y: qc.Y})
		}
		data.Segments = append(data.Segments, ps)
		return nil
	})
	if err != nil {
		return PlanformData{}, err
	}
	return data, nil
}

// Outline returns the closed outline of the segment: leading edge root to
// tip, then trailing edge tip to root, back to the leading-edge root.
func (ps PlanformSegment) Outline() []Point {
	out := make([]Point, 0, len(ps.LeadingEdge)+len(ps.TrailingEdge)+1)
	out = append(out, ps.LeadingEdge...)
	for i := len(ps.TrailingEdge) - 1; i >= 0; i-- {
		out = append(out, ps.TrailingEdge[i])
	}
	if len(ps.LeadingEdge) > 0 {
		out = append(out, ps.LeadingEdge[0])
	}
	return out
}
