package geodesy

import (
	"fmt"
	"math"
	"strconv"
)

// Area is a surface area in square metres.
type Area float64

// AreaUnit is a unit an Area can be expressed in.
type AreaUnit int

// Area units.
const (
	SquareMetre AreaUnit = iota
	SquareKilometre
	Hectare
	SquareMile
	Acre
)

var areaUnits = map[AreaUnit]unitDef{
	SquareMetre:     {name: "square metres", symbol: "m2", factor: 1, aliases: []string{"square metre", "square meters", "sqm", "m²"}},
	SquareKilometre: {name: "square kilometres", symbol: "km2", factor: 1e6, aliases: []string{"square kilometre", "square kilometers", "sqkm", "km²"}},
	Hectare:         {name: "hectares", symbol: "ha", factor: 1e4, aliases: []string{"hectare"}},
	SquareMile:      {name: "square miles", symbol: "mi2", factor: 1609.344 * 1609.344, aliases: []string{"square mile", "sqmi", "mi²"}},
	Acre:            {name: "acres", symbol: "ac", factor: 4046.8564224, aliases: []string{"acre"}},
}

var areaUnitNames = indexUnits(areaUnits)

func (u AreaUnit) String() string {
	if def, ok := areaUnits[u]; ok {
		return def.name
	}
	return "AreaUnit(" + strconv.Itoa(int(u)) + ")"
}

// Symbol returns the short symbol of the unit, e.g. "ha".
func (u AreaUnit) Symbol() string {
	return areaUnits[u].symbol
}

// ParseAreaUnit returns the unit named by s, e.g. "hectares" or "km2".
func ParseAreaUnit(s string) (AreaUnit, error) {
	return parseUnit("area", s, areaUnitNames)
}

// NewArea returns the area of value v in unit u.
func NewArea(v float64, u AreaUnit) (Area, error) {
	def, ok := areaUnits[u]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidUnit, u)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: area %v", ErrInvalidValue, v)
	}
	return Area(v * def.factor), nil
}

// SquareMetres returns an Area of m2 square metres.
func SquareMetres(m2 float64) Area { return Area(m2) }

// SquareMetres returns the area in square metres.
func (a Area) SquareMetres() float64 { return float64(a) }

// In returns the magnitude of the area in unit u, or NaN if u is not a known
// unit.
func (a Area) In(u AreaUnit) float64 {
	def, ok := areaUnits[u]
	if !ok {
		return math.NaN()
	}
	return float64(a) / def.factor
}

func (a Area) String() string {
	return strconv.FormatFloat(float64(a), 'f', 3, 64) + " m2"
}
