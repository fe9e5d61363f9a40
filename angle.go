package geodesy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// Angle is a plane angle stored in radians. It shares its representation with
// s1.Angle so values move freely between the two.
type Angle s1.Angle

// AngleUnit is a unit an Angle can be expressed in.
type AngleUnit int

// Angle units.
const (
	Radian AngleUnit = iota
	Degree
	ArcMinute
	ArcSecond
	Grad
)

var angleUnits = map[AngleUnit]unitDef{
	Radian:    {name: "radians", symbol: "rad", factor: 1, aliases: []string{"radian", "r"}},
	Degree:    {name: "degrees", symbol: "°", factor: math.Pi / 180, aliases: []string{"degree", "deg", "d"}},
	ArcMinute: {name: "arcminutes", symbol: "'", factor: math.Pi / (180 * 60), aliases: []string{"arcminute", "arcmin", "′"}},
	ArcSecond: {name: "arcseconds", symbol: "\"", factor: math.Pi / (180 * 3600), aliases: []string{"arcsecond", "arcsec", "″"}},
	Grad:      {name: "grads", symbol: "gon", factor: math.Pi / 200, aliases: []string{"grad", "gradians", "gradian"}},
}

var angleUnitNames = indexUnits(angleUnits)

func (u AngleUnit) String() string {
	if def, ok := angleUnits[u]; ok {
		return def.name
	}
	return "AngleUnit(" + strconv.Itoa(int(u)) + ")"
}

// ParseAngleUnit returns the unit named by s, e.g. "degrees", "rad" or "arcsec".
func ParseAngleUnit(s string) (AngleUnit, error) {
	return parseUnit("angle", s, angleUnitNames)
}

// NewAngle returns the angle of value v in unit u.
func NewAngle(v float64, u AngleUnit) (Angle, error) {
	def, ok := angleUnits[u]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidUnit, u)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: angle %v", ErrInvalidValue, v)
	}
	return Angle(v * def.factor), nil
}

// Degrees returns an Angle of d degrees.
func Degrees(d float64) Angle { return Angle(s1.Angle(d) * s1.Degree) }

// Radians returns an Angle of r radians.
func Radians(r float64) Angle { return Angle(r) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return s1.Angle(a).Degrees() }

// S1 returns the angle as an s1.Angle.
func (a Angle) S1() s1.Angle { return s1.Angle(a) }

// In returns the magnitude of the angle in unit u, or NaN if u is not a
// known unit.
func (a Angle) In(u AngleUnit) float64 {
	def, ok := angleUnits[u]
	if !ok {
		return math.NaN()
	}
	return float64(a) / def.factor
}

// Wrap180 returns the equivalent angle in (-180°, 180°].
func (a Angle) Wrap180() Angle {
	r := math.Remainder(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Wrap360 returns the equivalent angle in [0°, 360°).
func (a Angle) Wrap360() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return Angle(r)
}

// DMS splits the angle into whole degrees, whole minutes and seconds. The
// components are non-negative; neg reports the sign.
func (a Angle) DMS() (deg, mins int, secs float64, neg bool) {
	d := a.Degrees()
	if d < 0 {
		neg = true
		d = -d
	}
	deg = int(d)
	m := (d - float64(deg)) * 60
	mins = int(m)
	secs = (m - float64(mins)) * 60
	// carry rounding that would print as 60 seconds
	if secs >= 59.9999995 {
		secs = 0
		mins++
	}
	if mins == 60 {
		mins = 0
		deg++
	}
	return deg, mins, secs, neg
}

// FormatDMS formats the angle as degrees, minutes and seconds followed by
// pos or neg depending on its sign, e.g. FormatDMS("N", "S").
func (a Angle) FormatDMS(pos, neg string) string {
	d, m, s, n := a.DMS()
	// round to the printed precision before carrying
	s = math.Round(s*1000) / 1000
	if s >= 60 {
		s = 0
		m++
		if m == 60 {
			m = 0
			d++
		}
	}
	hemi := pos
	if n {
		hemi = neg
	}
	return fmt.Sprintf("%d°%02d'%06.3f\"%s", d, m, s, hemi)
}

func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'f', 7, 64) + "°"
}

// ParseDMS parses an angle written in decimal degrees ("-2.991746") or in
// degrees, minutes and seconds ("53°24'31.07\"N", "2 59 30.3 W",
// "51:30:59.3N"). A trailing or leading S or W negates the value; a signed
// value with a hemisphere letter is rejected.
func ParseDMS(s string) (Angle, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return 0, fmt.Errorf("%w: empty angle", ErrInvalidValue)
	}

	sign := 1.0
	hemisphere := false
	upper := strings.ToUpper(str)
	for _, hemi := range []struct {
		letter string
		sign   float64
	}{{"N", 1}, {"E", 1}, {"S", -1}, {"W", -1}} {
		if strings.HasSuffix(upper, hemi.letter) {
			upper = strings.TrimSpace(strings.TrimSuffix(upper, hemi.letter))
			sign = hemi.sign
			hemisphere = true
			break
		}
		if strings.HasPrefix(upper, hemi.letter) {
			upper = strings.TrimSpace(strings.TrimPrefix(upper, hemi.letter))
			sign = hemi.sign
			hemisphere = true
			break
		}
	}

	fields := strings.FieldsFunc(upper, func(r rune) bool {
		switch r {
		case ' ', '°', '\'', '"', '′', '″', ':':
			return true
		}
		return false
	})
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: angle %q", ErrInvalidValue, s)
	}
	// a sign and a hemisphere letter together are ambiguous
	if hemisphere && (strings.HasPrefix(fields[0], "-") || strings.HasPrefix(fields[0], "+")) {
		return 0, fmt.Errorf("%w: angle %q has both a sign and a hemisphere", ErrInvalidValue, s)
	}

	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: angle %q", ErrInvalidValue, s)
		}
		parts[i] = v
	}
	if parts[0] < 0 {
		sign = -sign
		parts[0] = -parts[0]
	}
	if parts[1] < 0 || parts[1] >= 60 || parts[2] < 0 || parts[2] >= 60 {
		return 0, fmt.Errorf("%w: angle %q", ErrInvalidValue, s)
	}
	deg := parts[0] + parts[1]/60 + parts[2]/3600
	return Degrees(sign * deg), nil
}
