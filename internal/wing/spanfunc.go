package wing

import (
	"github.com/alexiusacademia/golift/internal/units"
)

// SpanFunction is a scalar quantity (twist, dihedral, sweep, chord) given
// either as a constant or as a piecewise-linear table over span fraction.
// It is immutable once built.
type SpanFunction struct {
	constant bool
	value    float64
	spans    []float64
	values   []float64
}

// ConstantSpanFunction returns a SpanFunction that evaluates to v everywhere.
func ConstantSpanFunction(v float64) SpanFunction {
	return SpanFunction{constant: true, value: v}
}

// TableSpanFunction builds a piecewise-linear SpanFunction. Span fractions
// must lie in [0, 1] and be strictly increasing.
func TableSpanFunction(field string, rows []units.Row) (SpanFunction, error) {
	if len(rows) == 0 {
		return SpanFunction{}, configErr("", field, "table has no rows")
	}

	f := SpanFunction{
		spans:  make([]float64, len(rows)),
		values: make([]float64, len(rows)),
	}
	for i, r := range rows {
		if r.Span < 0 || r.Span > 1 {
			return SpanFunction{}, configErr("", field, "span fraction %g in row %d is outside [0, 1]", r.Span, i)
		}
		if i > 0 && r.Span <= rows[i-1].Span {
			return SpanFunction{}, configErr("", field, "span fractions must be strictly increasing (row %d: %g after %g)", i, r.Span, rows[i-1].Span)
		}
		f.spans[i] = r.Span
		f.values[i] = r.Value
	}
	return f, nil
}

// NewSpanFunction builds a SpanFunction from an imported value, which must be
// a scalar or a numeric table.
func NewSpanFunction(field string, v units.Value) (SpanFunction, error) {
	switch v.Kind {
	case units.KindScalar:
		return ConstantSpanFunction(v.Scalar), nil
	case units.KindTable:
		return TableSpanFunction(field, v.Table)
	default:
		return SpanFunction{}, configErr("", field, "must be a number or a two-column numeric table, got %s", v.Kind)
	}
}

// Evaluate returns the value at span fraction s. Outside the table the
// nearest endpoint value is held.
func (f SpanFunction) Evaluate(s float64) float64 {
	if f.constant {
		return f.value
	}
	n := len(f.spans)
	if s <= f.spans[0] {
		return f.values[0]
	}
	if s >= f.spans[n-1] {
		return f.values[n-1]
	}

	// Tables are short; a linear scan keeps evaluation allocation free.
	i := 1
	for f.spans[i] < s {
		i++
	}
	s0, s1 := f.spans[i-1], f.spans[i]
	v0, v1 := f.values[i-1], f.values[i]
	return v0 + (s-s0)*(v1-v0)/(s1-s0)
}

// IsConstant reports whether f was built from a scalar.
func (f SpanFunction) IsConstant() bool { return f.constant }

// Breakpoints returns the tabulated span fractions. Constants have none.
func (f SpanFunction) Breakpoints() []float64 {
	out := make([]float64, len(f.spans))
	copy(out, f.spans)
	return out
}
