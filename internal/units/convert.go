package units

import (
	"fmt"
	"math"
	"strings"
)

// Length factors to metres.
var lengthToMetre = map[string]float64{
	"m":  1,
	"cm": 0.01,
	"mm": 0.001,
	"ft": 0.3048,
	"in": 0.0254,
}

// Angle factors to degrees.
var angleToDegree = map[string]float64{
	"deg": 1,
	"rad": 180 / math.Pi,
}

// Convert expresses v, given in unit, in the internal unit of dim for sys.
// A "-" unit means the value is already in internal units.
func Convert(v float64, unit string, dim Dimension, sys System) (float64, error) {
	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "-" || unit == "" {
		return v, nil
	}

	switch dim {
	case Length:
		f, ok := lengthToMetre[unit]
		if !ok {
			return 0, fmt.Errorf("unknown length unit %q", unit)
		}
		metres := v * f
		if sys == English {
			return metres / lengthToMetre["ft"], nil
		}
		return metres, nil
	case Angle:
		f, ok := angleToDegree[unit]
		if !ok {
			return 0, fmt.Errorf("unknown angle unit %q", unit)
		}
		return v * f, nil
	default:
		return 0, fmt.Errorf("unit %q given for a dimensionless quantity", unit)
	}
}
