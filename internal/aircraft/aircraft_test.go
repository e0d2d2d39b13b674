package aircraft

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/golift/internal/logging"
	"github.com/alexiusacademia/golift/internal/observability"
	"github.com/alexiusacademia/golift/internal/wing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const glider = `{
	"name": "glider",
	"units": "SI",
	"airfoils": {
		"root_foil": {"CLa": 6.0, "aL0": -0.05, "CD0": 0.008},
		"tip_foil": {"CLa": 5.5, "aL0": 0.0, "CD0": 0.010}
	},
	"default_airfoil": "root_foil",
	"wings": {
		"outer": {
			"ID": 2,
			"side": "both",
			"connect_to": {"ID": 1},
			"span": [200, "cm"],
			"dihedral": 10,
			"airfoil": [[0.0, "root_foil"], [1.0, "tip_foil"]]
		},
		"inner": {
			"ID": 1,
			"side": "both",
			"is_main": true,
			"connect_to": {"ID": 0, "y_offset": 0.5},
			"span": 4.0,
			"chord": [[0.0, 1.2], [1.0, 0.8]]
		},
		"fin": {
			"ID": 3,
			"side": "right",
			"connect_to": {"ID": 0, "dx": -6.0},
			"span": 1.5,
			"dihedral": 90
		}
	}
}`

func mustParse(t *testing.T, data string) *Spec {
	t.Helper()
	spec, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return spec
}

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestBuildGlider(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}

	ac, err := Build(context.Background(), mustParse(t, glider), nil, metrics)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"fin_right", "inner_left", "inner_right", "outer_left", "outer_right"}
	got := ac.SegmentNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("segments = %v, want %v", got, want)
	}

	innerR, _ := ac.Segment("inner_right")
	if root := innerR.RootLocation(); root != (wing.Vec3{X: 0, Y: 0.5, Z: 0}) {
		t.Errorf("inner_right root = %v", root)
	}
	innerL, _ := ac.Segment("inner_left")
	if root := innerL.RootLocation(); root != (wing.Vec3{X: 0, Y: -0.5, Z: 0}) {
		t.Errorf("inner_left root = %v", root)
	}
	if !innerR.IsMain() || !approx(innerR.Chord(0.5), 1.0, 1e-15) {
		t.Errorf("inner_right main=%v chord(0.5)=%g", innerR.IsMain(), innerR.Chord(0.5))
	}

	outerL, _ := ac.Segment("outer_left")
	if root := outerL.RootLocation(); !approx(root.X, 0, 1e-12) || !approx(root.Y, -4.5, 1e-12) || !approx(root.Z, 0, 1e-12) {
		t.Errorf("outer_left root = %v, want (0, -4.5, 0)", root)
	}
	if !approx(outerL.Span(), 2.0, 1e-15) {
		t.Errorf("outer span = %g, want 2 (200 cm)", outerL.Span())
	}
	if outerL.Parent() == nil || outerL.Parent().Name() != "inner_left" {
		t.Errorf("outer_left parent = %v", outerL.Parent())
	}

	fin, _ := ac.Segment("fin_right")
	tip, err := fin.TipLocation()
	if err != nil {
		t.Fatal(err)
	}
	if !approx(tip.X, -6, 1e-12) || !approx(tip.Y, 0, 1e-12) || !approx(tip.Z, -1.5, 1e-12) {
		t.Errorf("fin tip = %v", tip)
	}

	if got := testutil.ToFloat64(metrics.SegmentsAttached.WithLabelValues("left")); got != 2 {
		t.Errorf("attached{left} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.SegmentsAttached.WithLabelValues("right")); got != 3 {
		t.Errorf("attached{right} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.TreeSegments); got != 5 {
		t.Errorf("tree segments = %v, want 5", got)
	}
}

func TestSectionCoefficients(t *testing.T) {
	ac, err := Build(context.Background(), mustParse(t, glider), logging.Noop(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	alpha := 0.05
	c, err := ac.SectionCoefficients("outer_right", 0.5, alpha)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.5*6.0*(alpha+0.05) + 0.5*5.5*alpha
	if !approx(c.CL, want, 1e-12) {
		t.Errorf("CL = %g, want %g", c.CL, want)
	}

	// wings without an airfoil use the default
	c, err = ac.SectionCoefficients("inner_left", 0.3, alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(c.CL, 6.0*(alpha+0.05), 1e-12) {
		t.Errorf("inner CL = %g", c.CL)
	}

	if _, err := ac.SectionCoefficients("outer_right", 1.5, alpha); !errors.Is(err, wing.ErrConfiguration) {
		t.Errorf("span out of range: error = %v", err)
	}
	if _, err := ac.SectionCoefficients("nope", 0.5, alpha); err == nil || !strings.Contains(err.Error(), "inner_left") {
		t.Errorf("unknown segment: error = %v", err)
	}
}

func TestBuildLogsAttachments(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: "debug", Output: &buf})

	if _, err := Build(context.Background(), mustParse(t, glider), log, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"segment attached", "segment=outer_right", "wing tree built", "aircraft=glider"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestBuildMissingParent(t *testing.T) {
	spec := mustParse(t, `{
		"name": "broken",
		"airfoils": {"a": {"CLa": 6.0}},
		"wings": {
			"main": {"ID": 1, "side": "both", "connect_to": {"ID": 0}, "span": 4},
			"tail": {"ID": 2, "side": "left", "connect_to": {"ID": 9}, "span": 1}
		}
	}`)

	reg := prometheus.NewRegistry()
	metrics, _ := observability.NewCollector(reg)
	_, err := Build(context.Background(), spec, nil, metrics)

	var ae *wing.AttachmentError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *wing.AttachmentError", err)
	}
	if ae.Segment != "tail_left" || ae.ParentID != 9 || ae.Side != wing.SideLeft {
		t.Errorf("attachment error = %+v", ae)
	}
	if got := testutil.ToFloat64(metrics.AttachFailures.WithLabelValues("parent_not_found")); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
}

func TestBuildParentOnOtherSide(t *testing.T) {
	// the parent exists, but only on the right
	spec := mustParse(t, `{
		"name": "lopsided",
		"airfoils": {"a": {"CLa": 6.0}},
		"wings": {
			"main": {"ID": 1, "side": "right", "connect_to": {"ID": 0}, "span": 4},
			"tip": {"ID": 2, "side": "left", "connect_to": {"ID": 1}, "span": 1}
		}
	}`)
	if _, err := Build(context.Background(), spec, nil, nil); !errors.Is(err, wing.ErrAttachment) {
		t.Fatalf("error = %v, want attachment error", err)
	}
}

func TestDefaultAirfoilRules(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "single airfoil is the default",
			data: `{"name": "x", "airfoils": {"only": {"CLa": 6}},
				"wings": {"w": {"ID": 1, "side": "right", "connect_to": {"ID": 0}, "span": 1}}}`,
		},
		{
			name: "explicit default",
			data: `{"name": "x", "default_airfoil": "b", "airfoils": {"a": {"CLa": 6}, "b": {"CLa": 5}},
				"wings": {"w": {"ID": 1, "side": "right", "connect_to": {"ID": 0}, "span": 1}}}`,
		},
		{
			name: "ambiguous without default",
			data: `{"name": "x", "airfoils": {"a": {"CLa": 6}, "b": {"CLa": 5}},
				"wings": {"w": {"ID": 1, "side": "right", "connect_to": {"ID": 0}, "span": 1}}}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(context.Background(), mustParse(t, tt.data), nil, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce *wing.ConfigurationError
				if !errors.As(err, &ce) || ce.Field != "airfoil" {
					t.Errorf("error = %v, want airfoil configuration error", err)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no name", `{"wings": {"w": {"ID": 1}}}`},
		{"no wings", `{"name": "x"}`},
		{"bad units", `{"name": "x", "units": "cubits", "wings": {"w": {"ID": 1}}}`},
		{"unknown default", `{"name": "x", "default_airfoil": "z", "airfoils": {}, "wings": {"w": {"ID": 1}}}`},
		{"reserved name", `{"name": "x", "wings": {"origin": {"ID": 1}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, wing.ErrConfiguration) {
				t.Errorf("error = %v, want configuration error", err)
			}
		})
	}
}

func TestBadSide(t *testing.T) {
	spec := mustParse(t, `{"name": "x", "airfoils": {"a": {"CLa": 6}},
		"wings": {"w": {"ID": 1, "side": "up", "connect_to": {"ID": 0}, "span": 1}}}`)
	_, err := Build(context.Background(), spec, nil, nil)
	var ce *wing.ConfigurationError
	if !errors.As(err, &ce) || ce.Field != "side" || ce.Segment != "w" {
		t.Fatalf("error = %v, want side configuration error", err)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, mustParse(t, glider), nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestLoadFromFileResolvesAirfoilPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "foils"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "foils", "naca2412.json"), []byte(`{"CLa": 6.2, "aL0": -0.036}`), 0644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "plane.json")
	data := `{"name": "plane", "airfoils": {"NACA_2412": "foils/naca2412.json"},
		"wings": {"main": {"ID": 1, "side": "both", "connect_to": {"ID": 0}, "span": 3}}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	ac, err := Build(context.Background(), spec, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ac.Airfoils["NACA_2412"].CLa != 6.2 {
		t.Errorf("airfoil = %+v", ac.Airfoils["NACA_2412"])
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
