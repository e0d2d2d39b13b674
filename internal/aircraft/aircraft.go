// Package aircraft loads aircraft definition files and assembles their wing
// trees.
package aircraft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexiusacademia/golift/internal/airfoil"
	"github.com/alexiusacademia/golift/internal/units"
	"github.com/alexiusacademia/golift/internal/wing"
)

// SideBoth mirrors a wing definition onto both sides of the aircraft.
const SideBoth = "both"

// Spec is the JSON definition of an aircraft.
type Spec struct {
	Name           string                      `json:"name"`
	Units          string                      `json:"units,omitempty"`
	Origin         [3]float64                  `json:"origin,omitempty"`
	DefaultAirfoil string                      `json:"default_airfoil,omitempty"`
	Airfoils       map[string]json.RawMessage  `json:"airfoils"`
	Wings          map[string]wing.SegmentSpec `json:"wings"`

	dir string // airfoil file paths are relative to this directory
}

// LoadFromFile loads an aircraft definition from a JSON file.
func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, err
	}
	spec.dir = filepath.Dir(path)
	return spec, nil
}

// Parse decodes and validates an aircraft definition.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the parts of the definition that do not need the wing
// model. Segment level problems are reported when the tree is built.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: aircraft name may not be empty", wing.ErrConfiguration)
	}
	if _, err := units.ParseSystem(s.Units); err != nil {
		return fmt.Errorf("%w: %v", wing.ErrConfiguration, err)
	}
	if len(s.Wings) == 0 {
		return fmt.Errorf("%w: aircraft %q defines no wings", wing.ErrConfiguration, s.Name)
	}
	if s.DefaultAirfoil != "" {
		if _, ok := s.Airfoils[s.DefaultAirfoil]; !ok {
			return fmt.Errorf("%w: default airfoil %q is not defined", wing.ErrConfiguration, s.DefaultAirfoil)
		}
	}
	for name := range s.Wings {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: wing name may not be empty", wing.ErrConfiguration)
		}
		if name == wing.OriginName {
			return fmt.Errorf("%w: wing name %q is reserved", wing.ErrConfiguration, name)
		}
	}
	return nil
}

// defaultAirfoil returns the airfoil used by wings that name none: the
// declared default, else the only airfoil when exactly one is defined.
func (s *Spec) defaultAirfoil() string {
	if s.DefaultAirfoil != "" {
		return s.DefaultAirfoil
	}
	if len(s.Airfoils) == 1 {
		for name := range s.Airfoils {
			return name
		}
	}
	return ""
}

// loadAirfoils resolves every airfoil entry into a provider.
func (s *Spec) loadAirfoils() (map[string]*airfoil.Linear, error) {
	out := make(map[string]*airfoil.Linear, len(s.Airfoils))
	for name, raw := range s.Airfoils {
		var (
			a    *airfoil.Linear
			err  error
			path string
		)
		if json.Unmarshal(raw, &path) == nil {
			if !filepath.IsAbs(path) && s.dir != "" {
				path = filepath.Join(s.dir, path)
			}
			a, err = airfoil.LoadFromFile(path)
		} else {
			a, err = airfoil.Load(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("airfoil %q: %w", name, err)
		}
		out[name] = a
	}
	return out, nil
}

// pending is one side of one wing waiting to be attached.
type pending struct {
	name string
	spec wing.SegmentSpec
	side wing.Side
}

// expand turns the wing map into one entry per side, sorted by ID then name.
func (s *Spec) expand() ([]pending, error) {
	var out []pending
	for name, ws := range s.Wings {
		if strings.EqualFold(ws.Side, SideBoth) {
			out = append(out,
				pending{name: name + "_left", spec: ws, side: wing.SideLeft},
				pending{name: name + "_right", spec: ws, side: wing.SideRight},
			)
			continue
		}
		side, err := wing.ParseSide(strings.ToLower(ws.Side))
		if err != nil {
			if ce, ok := err.(*wing.ConfigurationError); ok {
				ce.Segment = name
				ce.Reason = fmt.Sprintf("must be \"left\", \"right\" or %q, got %q", SideBoth, ws.Side)
			}
			return nil, err
		}
		out = append(out, pending{name: name + "_" + side.String(), spec: ws, side: side})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].spec.ID != out[j].spec.ID {
			return out[i].spec.ID < out[j].spec.ID
		}
		return out[i].name < out[j].name
	})
	return out, nil
}
