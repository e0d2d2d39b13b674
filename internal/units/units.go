// Package units converts raw, possibly unit-tagged input values into the
// consistent internal unit system.
//
// A raw value may be:
//
//	6.0                               scalar in the system's default unit
//	[6.0, "m"]                        scalar with an explicit unit
//	"NACA_2410"                       name
//	[[0.0, 1.0], [1.0, 0.5]]          two-column table (span fraction, value)
//	[[0.0, 1.0], [1.0, 0.5], ["-", "in"]]   table with a trailing units row
//	[[0.0, "NACA_0010"], [1.0, "NACA_2410"]] table of names
//
// Lengths are converted to feet (English) or metres (SI). Angles are kept in
// degrees.
package units

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// System is a consistent set of units.
type System int

const (
	English System = iota
	SI
)

func (s System) String() string {
	switch s {
	case English:
		return "English"
	case SI:
		return "SI"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// ParseSystem accepts "English" or "SI" (case-insensitive). Empty selects
// English.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "english":
		return English, nil
	case "si":
		return SI, nil
	default:
		return 0, fmt.Errorf("unknown unit system %q", name)
	}
}

// Dimension selects which conversion table a field uses.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length
	Angle
)

// Kind tags the shape of a Value.
type Kind int

const (
	KindNone Kind = iota
	KindScalar
	KindTable
	KindName
	KindNameTable
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindScalar:
		return "scalar"
	case KindTable:
		return "table"
	case KindName:
		return "name"
	case KindNameTable:
		return "name table"
	default:
		return "unknown"
	}
}

// Row is one (span fraction, value) pair of a numeric table.
type Row struct {
	Span  float64
	Value float64
}

// NameRow is one (span fraction, name) pair of a name table.
type NameRow struct {
	Span float64
	Name string
}

// Value is a converted input value. Only the field matching Kind is set.
type Value struct {
	Kind   Kind
	Scalar float64
	Table  []Row
	Name   string
	Names  []NameRow
}

// Scalar returns a scalar Value.
func Scalar(v float64) Value { return Value{Kind: KindScalar, Scalar: v} }

// Name returns a name Value.
func Name(s string) Value { return Value{Kind: KindName, Name: s} }

// None is the zero Value, used as a default for fields with no fallback.
func None() Value { return Value{} }

// FieldError reports a raw value that could not be imported.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var dimensions = map[string]Dimension{
	"span":     Length,
	"semispan": Length,
	"chord":    Length,
	"dx":       Length,
	"dy":       Length,
	"dz":       Length,
	"y_offset": Length,
	"twist":    Angle,
	"dihedral": Angle,
	"sweep":    Angle,
}

// DimensionOf returns the physical dimension of a known input field.
func DimensionOf(field string) Dimension {
	return dimensions[field]
}

// Import converts the raw JSON value of field into the internal unit system.
// An absent or null raw value yields def unchanged.
func Import(field string, raw json.RawMessage, sys System, def Value) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return def, nil
	}

	dim := DimensionOf(field)

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Value{}, &FieldError{field, fmt.Sprintf("invalid JSON: %v", err)}
	}

	switch v := decoded.(type) {
	case float64:
		return Scalar(v), nil
	case string:
		return Name(v), nil
	case []any:
		return importArray(field, v, dim, sys)
	default:
		return Value{}, &FieldError{field, "must be a number, a name, or a table"}
	}
}

func importArray(field string, arr []any, dim Dimension, sys System) (Value, error) {
	if len(arr) == 0 {
		return Value{}, &FieldError{field, "empty array"}
	}

	// [value, "unit"]
	if num, ok := arr[0].(float64); ok {
		if len(arr) != 2 {
			return Value{}, &FieldError{field, "tagged scalar must be [value, \"unit\"]"}
		}
		unit, ok := arr[1].(string)
		if !ok {
			return Value{}, &FieldError{field, "unit must be a string"}
		}
		converted, err := Convert(num, unit, dim, sys)
		if err != nil {
			return Value{}, &FieldError{field, err.Error()}
		}
		return Scalar(converted), nil
	}

	rows := make([][]any, 0, len(arr))
	for i, r := range arr {
		row, ok := r.([]any)
		if !ok || len(row) != 2 {
			return Value{}, &FieldError{field, fmt.Sprintf("row %d must have exactly two columns", i)}
		}
		rows = append(rows, row)
	}

	if _, ok := rows[0][1].(string); ok {
		return importNameTable(field, rows)
	}

	unit := ""
	if last := rows[len(rows)-1]; isUnitsRow(last) {
		unit, _ = last[1].(string)
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Value{}, &FieldError{field, "table has no data rows"}
	}

	table := make([]Row, 0, len(rows))
	for i, row := range rows {
		s, ok1 := row[0].(float64)
		v, ok2 := row[1].(float64)
		if !ok1 || !ok2 {
			return Value{}, &FieldError{field, fmt.Sprintf("row %d must be numeric", i)}
		}
		if unit != "" {
			var err error
			if v, err = Convert(v, unit, dim, sys); err != nil {
				return Value{}, &FieldError{field, err.Error()}
			}
		}
		table = append(table, Row{Span: s, Value: v})
	}
	return Value{Kind: KindTable, Table: table}, nil
}

func importNameTable(field string, rows [][]any) (Value, error) {
	names := make([]NameRow, 0, len(rows))
	for i, row := range rows {
		s, ok1 := row[0].(float64)
		n, ok2 := row[1].(string)
		if !ok1 || !ok2 {
			return Value{}, &FieldError{field, fmt.Sprintf("row %d must be [span, \"name\"]", i)}
		}
		names = append(names, NameRow{Span: s, Name: n})
	}
	return Value{Kind: KindNameTable, Names: names}, nil
}

func isUnitsRow(row []any) bool {
	_, ok1 := row[0].(string)
	_, ok2 := row[1].(string)
	return ok1 && ok2
}
