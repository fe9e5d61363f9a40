package geodesy

import (
	"fmt"
	"strings"
)

// unitDef describes one unit of a measure: its canonical name, the symbol
// used when formatting, and the factor that converts a value in this unit to
// the measure's base unit.
type unitDef struct {
	name    string
	symbol  string
	factor  float64
	aliases []string
}

// indexUnits builds the case-insensitive name lookup for a unit table.
func indexUnits[U comparable](table map[U]unitDef) map[string]U {
	idx := make(map[string]U, len(table)*4)
	for u, def := range table {
		idx[def.name] = u
		idx[strings.ToLower(def.symbol)] = u
		for _, a := range def.aliases {
			idx[a] = u
		}
	}
	return idx
}

func parseUnit[U comparable](measure, s string, idx map[string]U) (U, error) {
	if u, ok := idx[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	var zero U
	return zero, fmt.Errorf("%w: %s unit %q", ErrInvalidUnit, measure, s)
}

// AngleArg is satisfied by a bare number of degrees or an Angle.
type AngleArg interface {
	float64 | Angle
}

// DistanceArg is satisfied by a bare number of metres or a Distance.
type DistanceArg interface {
	float64 | Distance
}

// AsAngle normalizes an AngleArg. Bare numbers are taken as degrees.
func AsAngle[T AngleArg](v T) Angle {
	switch x := any(v).(type) {
	case Angle:
		return x
	case float64:
		return Degrees(x)
	}
	panic("unreachable")
}

// AsDistance normalizes a DistanceArg. Bare numbers are taken as metres.
func AsDistance[T DistanceArg](v T) Distance {
	switch x := any(v).(type) {
	case Distance:
		return x
	case float64:
		return Metres(x)
	}
	panic("unreachable")
}
