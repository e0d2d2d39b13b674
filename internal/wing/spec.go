package wing

import (
	"encoding/json"
	"errors"

	"github.com/alexiusacademia/golift/internal/units"
)

// OriginName is the reserved name of the tree root.
const OriginName = "origin"

// Attachment locations on the parent segment.
const (
	LocationRoot = "root"
	LocationTip  = "tip"
)

// ConnectSpec describes where a segment attaches to its parent.
type ConnectSpec struct {
	ID       int             `json:"ID"`
	Location string          `json:"location,omitempty"` // "root" or "tip" (default)
	DX       json.RawMessage `json:"dx,omitempty"`
	DY       json.RawMessage `json:"dy,omitempty"`
	DZ       json.RawMessage `json:"dz,omitempty"`
	YOffset  json.RawMessage `json:"y_offset,omitempty"` // mirrored for left segments
}

// SegmentSpec is the input description of one wing segment. Fields that may
// carry units or tables are kept raw and imported through the unit
// conversion collaborator when the segment is built.
type SegmentSpec struct {
	ID            int             `json:"ID"`
	Side          string          `json:"side,omitempty"`
	IsMain        bool            `json:"is_main,omitempty"`
	Span          json.RawMessage `json:"span,omitempty"`
	Semispan      json.RawMessage `json:"semispan,omitempty"`
	Grid          *int            `json:"grid,omitempty"`
	UseClustering *bool           `json:"use_clustering,omitempty"`
	ConnectTo     ConnectSpec     `json:"connect_to"`
	Twist         json.RawMessage `json:"twist,omitempty"`
	Dihedral      json.RawMessage `json:"dihedral,omitempty"`
	Sweep         json.RawMessage `json:"sweep,omitempty"`
	Chord         json.RawMessage `json:"chord,omitempty"`
	Airfoil       json.RawMessage `json:"airfoil,omitempty"`
}

// AttachLocation returns the normalized connection location.
func (s SegmentSpec) AttachLocation() string {
	if s.ConnectTo.Location == LocationRoot {
		return LocationRoot
	}
	return LocationTip
}

// Providers bundles what a segment needs to resolve its airfoils: the
// name→provider mapping, the airfoil used when the segment names none, and
// the unit system of its raw values.
type Providers struct {
	Airfoils       map[string]Provider
	DefaultAirfoil string
	Units          units.System
}

// importValue runs the unit conversion collaborator and turns its field
// errors into configuration errors.
func importValue(segment, field string, raw json.RawMessage, sys units.System, def units.Value) (units.Value, error) {
	v, err := units.Import(field, raw, sys, def)
	if err != nil {
		var fe *units.FieldError
		if errors.As(err, &fe) {
			return units.Value{}, &ConfigurationError{Segment: segment, Field: fe.Field, Reason: fe.Reason}
		}
		return units.Value{}, configErr(segment, field, "%v", err)
	}
	return v, nil
}

// withSegment fills in the segment name of a configuration error raised by a
// component that does not know it.
func withSegment(name string, err error) error {
	var ce *ConfigurationError
	if errors.As(err, &ce) && ce.Segment == "" {
		ce.Segment = name
	}
	return err
}
