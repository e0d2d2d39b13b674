// Package airfoil provides section models that satisfy wing.Provider.
package airfoil

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Linear is a thin-airfoil style section model: lift linear in angle of
// attack up to an optional CL_max, a drag polar quadratic in CL, and a
// moment linear in angle of attack.
type Linear struct {
	Type  string  `json:"type,omitempty"`
	AL0   float64 `json:"aL0"`              // zero-lift angle of attack (rad)
	CLa   float64 `json:"CLa"`              // lift slope (1/rad)
	CmL0  float64 `json:"CmL0"`             // moment at zero lift
	Cma   float64 `json:"Cma"`              // moment slope (1/rad)
	CD0   float64 `json:"CD0"`              // drag at zero lift
	CD1   float64 `json:"CD1"`              // linear drag term
	CD2   float64 `json:"CD2"`              // quadratic drag term
	CLMax float64 `json:"CL_max,omitempty"` // lift limit; 0 means unlimited
}

// Default returns a symmetric section with the thin-airfoil lift slope.
func Default() *Linear {
	return &Linear{Type: "linear", CLa: 2 * math.Pi}
}

// Validate checks the model parameters.
func (l *Linear) Validate() error {
	if l.Type != "" && !strings.EqualFold(l.Type, "linear") {
		return &ValidationError{msg: fmt.Sprintf("unsupported airfoil type %q", l.Type)}
	}
	if l.CLa <= 0 {
		return &ValidationError{msg: "CLa must be positive"}
	}
	if l.CLMax < 0 {
		return &ValidationError{msg: "CL_max may not be negative"}
	}
	if l.CD0 < 0 || l.CD2 < 0 {
		return &ValidationError{msg: "CD0 and CD2 may not be negative"}
	}
	return nil
}

func alpha(params []float64) float64 {
	if len(params) == 0 {
		return 0
	}
	return params[0]
}

// LiftCoefficient returns CL at params[0] = angle of attack (rad).
// Further parameters are ignored.
func (l *Linear) LiftCoefficient(params ...float64) float64 {
	cl := l.CLa * (alpha(params) - l.AL0)
	if l.CLMax > 0 && math.Abs(cl) > l.CLMax {
		return math.Copysign(l.CLMax, cl)
	}
	return cl
}

// DragCoefficient returns CD from the quadratic polar.
func (l *Linear) DragCoefficient(params ...float64) float64 {
	cl := l.LiftCoefficient(params...)
	return l.CD0 + l.CD1*cl + l.CD2*cl*cl
}

// MomentCoefficient returns the quarter-chord Cm.
func (l *Linear) MomentCoefficient(params ...float64) float64 {
	return l.CmL0 + l.Cma*(alpha(params)-l.AL0)
}

// ValidationError reports invalid airfoil parameters.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Load decodes an airfoil entry: either an inline parameter object or a path
// to a JSON file holding one.
func Load(raw json.RawMessage) (*Linear, error) {
	var path string
	if err := json.Unmarshal(raw, &path); err == nil {
		return LoadFromFile(path)
	}

	l := &Linear{}
	if err := json.Unmarshal(raw, l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFromFile loads airfoil parameters from a JSON file.
func LoadFromFile(filepath string) (*Linear, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	l := &Linear{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
