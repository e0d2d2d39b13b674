package wing

import "fmt"

// Vec3 is a point or displacement in body-fixed coordinates
// (x forward, y right, z down).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v multiplied by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z)
}

// Side is the side of the aircraft a segment belongs to.
type Side int

const (
	SideNone Side = iota // only the origin segment
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideNone:
		return "none"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return SideNone, configErr("", "side", "must be \"left\" or \"right\", got %q", s)
	}
}
