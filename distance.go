package geodesy

import (
	"fmt"
	"math"
	"strconv"
)

// Distance is a length in metres.
type Distance float64

// DistanceUnit is a unit a Distance can be expressed in.
type DistanceUnit int

// Distance units.
const (
	Metre DistanceUnit = iota
	Kilometre
	Mile
	Yard
	Foot
	NauticalMile
)

var distanceUnits = map[DistanceUnit]unitDef{
	Metre:        {name: "metres", symbol: "m", factor: 1, aliases: []string{"metre", "meter", "meters"}},
	Kilometre:    {name: "kilometres", symbol: "km", factor: 1000, aliases: []string{"kilometre", "kilometer", "kilometers"}},
	Mile:         {name: "miles", symbol: "mi", factor: 1609.344, aliases: []string{"mile"}},
	Yard:         {name: "yards", symbol: "yd", factor: 0.9144, aliases: []string{"yard"}},
	Foot:         {name: "feet", symbol: "ft", factor: 0.3048, aliases: []string{"foot"}},
	NauticalMile: {name: "nautical miles", symbol: "nmi", factor: 1852, aliases: []string{"nautical mile", "nauticalmiles", "nm"}},
}

var distanceUnitNames = indexUnits(distanceUnits)

func (u DistanceUnit) String() string {
	if def, ok := distanceUnits[u]; ok {
		return def.name
	}
	return "DistanceUnit(" + strconv.Itoa(int(u)) + ")"
}

// Symbol returns the short symbol of the unit, e.g. "km".
func (u DistanceUnit) Symbol() string {
	return distanceUnits[u].symbol
}

// ParseDistanceUnit returns the unit named by s, e.g. "km" or "nautical miles".
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	return parseUnit("distance", s, distanceUnitNames)
}

// NewDistance returns the distance of value v in unit u.
func NewDistance(v float64, u DistanceUnit) (Distance, error) {
	def, ok := distanceUnits[u]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidUnit, u)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: distance %v", ErrInvalidValue, v)
	}
	return Distance(v * def.factor), nil
}

// Metres returns a Distance of m metres.
func Metres(m float64) Distance { return Distance(m) }

// Kilometres returns a Distance of km kilometres.
func Kilometres(km float64) Distance { return Distance(km * 1000) }

// Metres returns the distance in metres.
func (d Distance) Metres() float64 { return float64(d) }

// In returns the magnitude of the distance in unit u, or NaN if u is not a
// known unit.
func (d Distance) In(u DistanceUnit) float64 {
	def, ok := distanceUnits[u]
	if !ok {
		return math.NaN()
	}
	return float64(d) / def.factor
}

func (d Distance) String() string {
	return strconv.FormatFloat(float64(d), 'f', 3, 64) + " m"
}
