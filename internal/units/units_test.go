package units

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestImportScalar(t *testing.T) {
	tests := []struct {
		field string
		raw   string
		sys   System
		want  float64
	}{
		{"span", `6.0`, English, 6},
		{"span", `[2.0, "m"]`, SI, 2},
		{"span", `[12.0, "in"]`, English, 1},
		{"chord", `[0.3048, "m"]`, English, 1},
		{"sweep", `[1.0, "rad"]`, SI, 180 / math.Pi},
		{"twist", `[2.0, "deg"]`, English, 2},
	}

	for _, tt := range tests {
		t.Run(tt.field+" "+tt.raw, func(t *testing.T) {
			v, err := Import(tt.field, json.RawMessage(tt.raw), tt.sys, None())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != KindScalar {
				t.Fatalf("kind = %s, want scalar", v.Kind)
			}
			if math.Abs(v.Scalar-tt.want) > 1e-12 {
				t.Errorf("value = %.15f, want %.15f", v.Scalar, tt.want)
			}
		})
	}
}

func TestImportDefault(t *testing.T) {
	for _, raw := range []string{``, `null`, `  `} {
		v, err := Import("twist", json.RawMessage(raw), English, Scalar(3))
		if err != nil {
			t.Fatalf("raw %q: unexpected error: %v", raw, err)
		}
		if v.Kind != KindScalar || v.Scalar != 3 {
			t.Errorf("raw %q: got %+v, want default scalar 3", raw, v)
		}
	}
}

func TestImportTable(t *testing.T) {
	v, err := Import("chord", json.RawMessage(`[[0.0, 12.0], [1.0, 6.0], ["-", "in"]]`), English, None())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindTable {
		t.Fatalf("kind = %s, want table", v.Kind)
	}
	if len(v.Table) != 2 {
		t.Fatalf("rows = %d, want 2", len(v.Table))
	}
	if math.Abs(v.Table[0].Value-1) > 1e-12 || math.Abs(v.Table[1].Value-0.5) > 1e-12 {
		t.Errorf("converted table = %+v, want values 1 and 0.5 ft", v.Table)
	}
	if v.Table[1].Span != 1 {
		t.Errorf("span fractions must not be converted, got %g", v.Table[1].Span)
	}
}

func TestImportNames(t *testing.T) {
	v, err := Import("airfoil", json.RawMessage(`"NACA_0012"`), SI, None())
	if err != nil || v.Kind != KindName || v.Name != "NACA_0012" {
		t.Fatalf("got %+v, %v; want name NACA_0012", v, err)
	}

	v, err = Import("airfoil", json.RawMessage(`[[0.0, "A"], [0.5, "A"], [0.5, "B"], [1.0, "B"]]`), SI, None())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindNameTable || len(v.Names) != 4 || v.Names[2].Name != "B" {
		t.Errorf("got %+v, want four-row name table", v)
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		raw   string
	}{
		{"object", "twist", `{"a": 1}`},
		{"bool", "twist", `true`},
		{"empty array", "twist", `[]`},
		{"three columns", "chord", `[[0, 1, 2]]`},
		{"unknown unit", "span", `[1.0, "furlong"]`},
		{"angle unit on length", "span", `[1.0, "deg"]`},
		{"mixed row", "chord", `[[0.0, 1.0], [1.0, "x"]]`},
		{"units row only", "chord", `[["-", "ft"]]`},
		{"bad json", "chord", `[1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.field, json.RawMessage(tt.raw), English, None())
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v, want *FieldError", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestParseSystem(t *testing.T) {
	if s, err := ParseSystem("si"); err != nil || s != SI {
		t.Errorf("ParseSystem(si) = %v, %v", s, err)
	}
	if s, err := ParseSystem(""); err != nil || s != English {
		t.Errorf("ParseSystem(\"\") = %v, %v", s, err)
	}
	if _, err := ParseSystem("imperial"); err == nil {
		t.Error("expected error for unknown system")
	}
}
