package wing

import (
	"errors"
	"math"

	"github.com/alexiusacademia/golift/internal/units"
)

// Segment is one node of the wing tree: a lifting surface piece described by
// spanwise distributions of twist, dihedral, sweep and chord, an airfoil
// section model, its geometry and its discretization. A segment owns the
// segments attached to it.
type Segment struct {
	id     int
	name   string
	side   Side
	isMain bool
	span   float64

	twist    SpanFunction
	dihedral SpanFunction
	sweep    SpanFunction
	chord    SpanFunction

	section  Section
	geometry *Geometry
	grid     *Grid

	parent   *Segment
	children map[string]*Segment
	order    []string // child names in attachment order
}

func newOriginSegment(origin Vec3) *Segment {
	return &Segment{
		name:     OriginName,
		geometry: &Geometry{origin: origin, isOrigin: true},
		children: make(map[string]*Segment),
	}
}

// newSegment builds a non-origin segment rooted at origin. Nothing is linked
// into the tree here, so a failure leaves the tree untouched.
func newSegment(name string, spec SegmentSpec, side Side, p Providers, origin Vec3) (*Segment, error) {
	if spec.ID == 0 && name != OriginName {
		return nil, configErr(name, "ID", "wing segment ID may not be 0")
	}
	if spec.ID < 0 {
		return nil, configErr(name, "ID", "must be a positive integer, got %d", spec.ID)
	}

	seg := &Segment{
		id:       spec.ID,
		name:     name,
		side:     side,
		isMain:   spec.IsMain,
		children: make(map[string]*Segment),
	}

	spanRaw, spanField := spec.Span, "span"
	if len(spanRaw) == 0 {
		spanRaw, spanField = spec.Semispan, "semispan"
	}
	span, err := importValue(name, spanField, spanRaw, p.Units, units.None())
	if err != nil {
		return nil, err
	}
	if span.Kind != units.KindScalar {
		return nil, configErr(name, "span", "is required and must be a number")
	}
	if span.Scalar <= 0 || math.IsInf(span.Scalar, 0) {
		return nil, configErr(name, "span", "must be positive, got %g", span.Scalar)
	}
	seg.span = span.Scalar

	n := DefaultGridSize
	if spec.Grid != nil {
		n = *spec.Grid
	}
	clustering := true
	if spec.UseClustering != nil {
		clustering = *spec.UseClustering
	}
	if seg.grid, err = NewGrid(n, clustering); err != nil {
		return nil, withSegment(name, err)
	}

	switch spec.ConnectTo.Location {
	case "", LocationRoot, LocationTip:
	default:
		return nil, configErr(name, "connect_to.location", "must be %q or %q, got %q", LocationRoot, LocationTip, spec.ConnectTo.Location)
	}

	distributions := []struct {
		field string
		raw   []byte
		def   float64
		dst   *SpanFunction
	}{
		{"twist", spec.Twist, 0, &seg.twist},
		{"dihedral", spec.Dihedral, 0, &seg.dihedral},
		{"sweep", spec.Sweep, 0, &seg.sweep},
		{"chord", spec.Chord, 1, &seg.chord},
	}
	for _, d := range distributions {
		v, err := importValue(name, d.field, d.raw, p.Units, units.Scalar(d.def))
		if err != nil {
			return nil, err
		}
		if *d.dst, err = NewSpanFunction(d.field, v); err != nil {
			return nil, withSegment(name, err)
		}
	}

	def := units.None()
	if p.DefaultAirfoil != "" {
		def = units.Name(p.DefaultAirfoil)
	}
	airfoil, err := importValue(name, "airfoil", spec.Airfoil, p.Units, def)
	if err != nil {
		return nil, err
	}
	if airfoil.Kind == units.KindNone {
		return nil, configErr(name, "airfoil", "not given and no default airfoil is defined")
	}
	if seg.section, err = NewSection(airfoil, p.Airfoils); err != nil {
		return nil, withSegment(name, err)
	}

	var dx, dy, dz, yOffset float64
	offsets := []struct {
		field string
		raw   []byte
		dst   *float64
	}{
		{"dx", spec.ConnectTo.DX, &dx},
		{"dy", spec.ConnectTo.DY, &dy},
		{"dz", spec.ConnectTo.DZ, &dz},
		{"y_offset", spec.ConnectTo.YOffset, &yOffset},
	}
	for _, o := range offsets {
		v, err := importValue(name, o.field, o.raw, p.Units, units.Scalar(0))
		if err != nil {
			return nil, err
		}
		if v.Kind != units.KindScalar {
			return nil, configErr(name, "connect_to."+o.field, "must be a number or [value, \"unit\"]")
		}
		*o.dst = v.Scalar
	}

	offset := Vec3{X: dx, Y: dy + yOffset, Z: dz}
	if side == SideLeft {
		offset.Y = -offset.Y
	}

	seg.geometry = &Geometry{
		origin:   origin,
		offset:   offset,
		span:     seg.span,
		side:     side,
		sweep:    seg.sweep,
		dihedral: seg.dihedral,
	}
	return seg, nil
}

// Attach builds a new segment and attaches it to the segment whose ID is
// spec.ConnectTo.ID, searching only segments on the given side. It may only
// be called on the origin segment.
func (s *Segment) Attach(name string, spec SegmentSpec, side Side, p Providers) (*Segment, error) {
	if !s.IsOrigin() {
		return nil, configErr(name, "", "segments may only be attached through the origin segment, not %q", s.name)
	}
	if name == "" {
		return nil, configErr("", "name", "segment name may not be empty")
	}
	if side != SideLeft && side != SideRight {
		return nil, configErr(name, "side", "must be left or right, got %s", side)
	}
	if s.Find(name) != nil {
		return nil, configErr(name, "name", "a segment with this name already exists")
	}
	if spec.ID != 0 && s.findID(spec.ID, side) != nil {
		return nil, configErr(name, "ID", "ID %d is already used on the %s side", spec.ID, side)
	}

	parent := s.findID(spec.ConnectTo.ID, side)
	if parent == nil {
		return nil, &AttachmentError{Segment: name, ParentID: spec.ConnectTo.ID, Side: side}
	}

	var point Vec3
	if spec.AttachLocation() == LocationRoot {
		point = parent.RootLocation()
	} else {
		tip, err := parent.TipLocation()
		if err != nil {
			return nil, err
		}
		point = tip
	}

	child, err := newSegment(name, spec, side, p, point)
	if err != nil {
		return nil, err
	}
	child.parent = parent
	parent.children[name] = child
	parent.order = append(parent.order, name)
	return child, nil
}

// findID searches depth first for the segment with the given ID, entering
// only children on the given side.
func (s *Segment) findID(id int, side Side) *Segment {
	if s.id == id {
		return s
	}
	for _, key := range s.order {
		child := s.children[key]
		if child.side != side {
			continue
		}
		if found := child.findID(id, side); found != nil {
			return found
		}
	}
	return nil
}

// Find returns the first segment named name found depth first below and
// including s, or nil.
func (s *Segment) Find(name string) *Segment {
	if s.name == name {
		return s
	}
	if child, ok := s.children[name]; ok {
		return child
	}
	for _, key := range s.order {
		if found := s.children[key].Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Children returns the directly attached segments in attachment order.
func (s *Segment) Children() []*Segment {
	out := make([]*Segment, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.children[key])
	}
	return out
}

// Parent returns the segment s is attached to, or nil for the origin.
func (s *Segment) Parent() *Segment { return s.parent }

func (s *Segment) ID() int        { return s.id }
func (s *Segment) Name() string   { return s.name }
func (s *Segment) Side() Side     { return s.side }
func (s *Segment) IsMain() bool   { return s.isMain }
func (s *Segment) Span() float64  { return s.span }
func (s *Segment) IsOrigin() bool { return s.geometry.isOrigin }

// Grid returns the spanwise discretization; nil for the origin.
func (s *Segment) Grid() *Grid { return s.grid }

// Airfoils lists the airfoils used by the segment in span order.
func (s *Segment) Airfoils() []string {
	if s.section == nil {
		return nil
	}
	return s.section.Airfoils()
}

// Twist returns the local twist in degrees.
func (s *Segment) Twist(span float64) float64 { return s.twist.Evaluate(span) }

// Dihedral returns the local dihedral in degrees.
func (s *Segment) Dihedral(span float64) float64 { return s.dihedral.Evaluate(span) }

// Sweep returns the local quarter-chord sweep in degrees.
func (s *Segment) Sweep(span float64) float64 { return s.sweep.Evaluate(span) }

// Chord returns the local chord length.
func (s *Segment) Chord(span float64) float64 { return s.chord.Evaluate(span) }

// RootLocation returns the root quarter-chord point.
func (s *Segment) RootLocation() Vec3 { return s.geometry.RootLocation() }

// TipLocation returns the tip quarter-chord point.
func (s *Segment) TipLocation() (Vec3, error) {
	return s.QuarterChordLocation(1)
}

// QuarterChordLocation returns the quarter-chord point at span fraction span.
func (s *Segment) QuarterChordLocation(span float64) (Vec3, error) {
	p, err := s.geometry.QuarterChordLocation(span)
	if err != nil {
		var ie *IntegrationError
		if errors.As(err, &ie) {
			ie.Segment = s.name
		}
		return Vec3{}, err
	}
	return p, nil
}

// NodeSpanLocations returns the span fractions of the grid nodes.
func (s *Segment) NodeSpanLocations() []float64 {
	if s.grid == nil {
		return nil
	}
	return s.grid.Nodes()
}

// ControlPointSpanLocations returns the span fractions of the control points.
func (s *Segment) ControlPointSpanLocations() []float64 {
	if s.grid == nil {
		return nil
	}
	return s.grid.ControlPoints()
}

// NodePoints returns the quarter-chord points of the grid nodes.
func (s *Segment) NodePoints() ([]Vec3, error) {
	return s.pointsAt(s.NodeSpanLocations())
}

// ControlPoints returns the quarter-chord points of the control points.
func (s *Segment) ControlPoints() ([]Vec3, error) {
	return s.pointsAt(s.ControlPointSpanLocations())
}

func (s *Segment) pointsAt(spans []float64) ([]Vec3, error) {
	pts := make([]Vec3, len(spans))
	for i, f := range spans {
		p, err := s.QuarterChordLocation(f)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

// LiftCoefficient returns the section lift coefficient at span fraction span.
// params[0] is the angle of attack in radians. The origin has no section and
// returns NaN.
func (s *Segment) LiftCoefficient(span float64, params ...float64) float64 {
	return s.coefficient(Lift, span, params)
}

// DragCoefficient returns the section drag coefficient at span fraction span.
func (s *Segment) DragCoefficient(span float64, params ...float64) float64 {
	return s.coefficient(Drag, span, params)
}

// MomentCoefficient returns the section quarter-chord moment coefficient at
// span fraction span.
func (s *Segment) MomentCoefficient(span float64, params ...float64) float64 {
	return s.coefficient(Moment, span, params)
}

func (s *Segment) coefficient(kind CoefficientKind, span float64, params []float64) float64 {
	if s.section == nil {
		return math.NaN()
	}
	return s.section.Coefficient(kind, span, params...)
}
