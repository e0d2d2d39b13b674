package wing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golift/internal/units"
)

// Provider is an airfoil section model. The first parameter is always the
// angle of attack in radians; providers may accept further parameters
// (Reynolds number, Mach number, flap deflection).
type Provider interface {
	LiftCoefficient(params ...float64) float64
	DragCoefficient(params ...float64) float64
	MomentCoefficient(params ...float64) float64
}

// CoefficientKind selects which section coefficient is requested.
type CoefficientKind int

const (
	Lift CoefficientKind = iota
	Drag
	Moment
)

func (k CoefficientKind) String() string {
	switch k {
	case Lift:
		return "CL"
	case Drag:
		return "CD"
	case Moment:
		return "Cm"
	default:
		return fmt.Sprintf("CoefficientKind(%d)", int(k))
	}
}

func coefficient(p Provider, kind CoefficientKind, params []float64) float64 {
	switch kind {
	case Drag:
		return p.DragCoefficient(params...)
	case Moment:
		return p.MomentCoefficient(params...)
	default:
		return p.LiftCoefficient(params...)
	}
}

// Section resolves section coefficients along the span of a segment.
type Section interface {
	Coefficient(kind CoefficientKind, span float64, params ...float64) float64
	// Airfoils lists the provider names used, in span order.
	Airfoils() []string
}

// constantSection is a segment with one airfoil over its whole span.
type constantSection struct {
	name     string
	provider Provider
}

func (c constantSection) Coefficient(kind CoefficientKind, _ float64, params ...float64) float64 {
	return coefficient(c.provider, kind, params)
}

func (c constantSection) Airfoils() []string { return []string{c.name} }

type blendRow struct {
	span     float64
	name     string
	provider Provider
}

// blendedSection interpolates linearly between the airfoils bounding a span
// fraction. A repeated span fraction gives a sharp transition.
type blendedSection struct {
	rows []blendRow
}

func (b blendedSection) Coefficient(kind CoefficientKind, span float64, params ...float64) float64 {
	last := len(b.rows) - 1
	if span <= b.rows[0].span {
		return coefficient(b.rows[0].provider, kind, params)
	}
	if span >= b.rows[last].span {
		return coefficient(b.rows[last].provider, kind, params)
	}

	i := 0
	for ; i < last; i++ {
		if span >= b.rows[i].span && span <= b.rows[i+1].span {
			break
		}
	}
	if i == last {
		// only NaN falls through every bracket
		return math.NaN()
	}

	r0, r1 := b.rows[i], b.rows[i+1]
	c0 := coefficient(r0.provider, kind, params)
	if r1.span == r0.span {
		return c0
	}
	c1 := coefficient(r1.provider, kind, params)
	return c0 + (span-r0.span)*(c1-c0)/(r1.span-r0.span)
}

func (b blendedSection) Airfoils() []string {
	names := make([]string, 0, len(b.rows))
	for _, r := range b.rows {
		if len(names) == 0 || names[len(names)-1] != r.name {
			names = append(names, r.name)
		}
	}
	return names
}

// NewSection builds the Section for an airfoil specification, which must be
// a provider name or a (span fraction, name) table starting at 0 and ending
// at 1 with non-decreasing span fractions.
func NewSection(v units.Value, providers map[string]Provider) (Section, error) {
	switch v.Kind {
	case units.KindName:
		p, ok := providers[v.Name]
		if !ok || p == nil {
			return nil, configErr("", "airfoil", "%q must be specified in airfoils", v.Name)
		}
		return constantSection{name: v.Name, provider: p}, nil

	case units.KindNameTable:
		rows := v.Names
		if len(rows) < 2 {
			return nil, configErr("", "airfoil", "distribution needs at least two rows")
		}
		if rows[0].Span != 0 || rows[len(rows)-1].Span != 1 {
			return nil, configErr("", "airfoil", "distribution must start at span fraction 0 and end at 1")
		}

		blend := blendedSection{rows: make([]blendRow, len(rows))}
		for i, r := range rows {
			if i > 0 && r.Span < rows[i-1].Span {
				return nil, configErr("", "airfoil", "span fractions must not decrease (row %d: %g after %g)", i, r.Span, rows[i-1].Span)
			}
			p, ok := providers[r.Name]
			if !ok || p == nil {
				return nil, configErr("", "airfoil", "%q must be specified in airfoils", r.Name)
			}
			blend.rows[i] = blendRow{span: r.Span, name: r.Name, provider: p}
		}
		return blend, nil

	default:
		return nil, configErr("", "airfoil", "must be a name or a distribution table, got %s", v.Kind)
	}
}
