package airfoil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/golift/internal/wing"
)

var _ wing.Provider = (*Linear)(nil)

func TestLinearCoefficients(t *testing.T) {
	l := &Linear{
		AL0:  -0.036,
		CLa:  6.1,
		CmL0: -0.05,
		Cma:  0.01,
		CD0:  0.0055,
		CD1:  -0.004,
		CD2:  0.007,
	}

	a := 0.1
	cl := 6.1 * (a + 0.036)
	if got := l.LiftCoefficient(a); math.Abs(got-cl) > 1e-14 {
		t.Errorf("CL = %g, want %g", got, cl)
	}
	if got := l.DragCoefficient(a); math.Abs(got-(0.0055-0.004*cl+0.007*cl*cl)) > 1e-14 {
		t.Errorf("CD = %g", got)
	}
	if got := l.MomentCoefficient(a); math.Abs(got-(-0.05+0.01*(a+0.036))) > 1e-14 {
		t.Errorf("Cm = %g", got)
	}

	// extra parameters are accepted and ignored
	if l.LiftCoefficient(a, 1e6, 0.2) != l.LiftCoefficient(a) {
		t.Error("extra parameters changed CL")
	}
	if got := l.LiftCoefficient(); math.Abs(got-6.1*0.036) > 1e-14 {
		t.Errorf("CL with no parameters = %g, want value at zero alpha", got)
	}
}

func TestLinearStall(t *testing.T) {
	l := &Linear{CLa: 2 * math.Pi, CLMax: 1.4}
	if got := l.LiftCoefficient(0.5); got != 1.4 {
		t.Errorf("CL above stall = %g, want 1.4", got)
	}
	if got := l.LiftCoefficient(-0.5); got != -1.4 {
		t.Errorf("CL below negative stall = %g, want -1.4", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		l       Linear
		wantErr bool
	}{
		{"default", *Default(), false},
		{"no slope", Linear{}, true},
		{"unknown type", Linear{Type: "database", CLa: 6}, true},
		{"negative CL_max", Linear{CLa: 6, CLMax: -1}, true},
		{"negative CD0", Linear{CLa: 6, CD0: -0.01}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.l.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	inline := json.RawMessage(`{"type": "linear", "aL0": 0.0, "CLa": 6.28, "CD0": 0.01}`)
	l, err := Load(inline)
	if err != nil {
		t.Fatalf("inline: %v", err)
	}
	if l.CLa != 6.28 || l.CD0 != 0.01 {
		t.Errorf("inline parameters = %+v", l)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "naca0012.json")
	if err := os.WriteFile(path, []byte(`{"CLa": 6.0, "CL_max": 1.2}`), 0644); err != nil {
		t.Fatal(err)
	}
	raw, _ := json.Marshal(path)
	l, err = Load(raw)
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if l.CLMax != 1.2 {
		t.Errorf("CL_max = %g, want 1.2", l.CLMax)
	}

	if _, err := Load(json.RawMessage(`{"CLa": -1}`)); err == nil {
		t.Error("expected validation error")
	}
	if _, err := Load(json.RawMessage(`"` + filepath.Join(dir, "missing.json") + `"`)); err == nil {
		t.Error("expected error for missing file")
	}
}
