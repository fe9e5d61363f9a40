package geodesy

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Ellipsoid is a reference ellipsoid of revolution described by its
// semi-major axis and flattening. A flattening of zero describes a sphere.
type Ellipsoid struct {
	name     string
	fullName string
	a        float64 // semi-major axis in metres
	f        float64 // flattening
}

type ellipsoidDef struct {
	a, b, rf float64
	fullName string
}

// Either b or rf is given; rf of 0 with no b is a sphere.
var ellipsoidDefs = map[string]ellipsoidDef{
	"WGS84":             {a: 6378137.0, rf: 298.257223563, fullName: "World Geodetic System 1984"},
	"GRS80":             {a: 6378137.0, rf: 298.257222101, fullName: "GRS 1980 (IUGG, 1980)"},
	"WGS72":             {a: 6378135.0, rf: 298.26, fullName: "World Geodetic System 1972"},
	"Airy1830":          {a: 6377563.396, b: 6356256.909, fullName: "Airy 1830"},
	"ModifiedAiry":      {a: 6377340.189, b: 6356034.446, fullName: "Modified Airy"},
	"Bessel1841":        {a: 6377397.155, rf: 299.1528128, fullName: "Bessel 1841"},
	"Clarke1866":        {a: 6378206.4, b: 6356583.8, fullName: "Clarke 1866"},
	"Clarke1880":        {a: 6378249.145, rf: 293.465, fullName: "Clarke 1880 (RGS)"},
	"International1924": {a: 6378388.0, rf: 297.0, fullName: "International 1924 (Hayford 1909)"},
	"Krassovsky1940":    {a: 6378245.0, rf: 298.3, fullName: "Krassovsky 1940"},
	"Everest1830":       {a: 6377276.345, rf: 300.8017, fullName: "Everest 1830"},
	"Sphere":            {a: 6371000.0, fullName: "Normal Sphere (r=6371000)"},
}

var ellipsoidIndex = func() map[string]string {
	idx := make(map[string]string, len(ellipsoidDefs))
	for name := range ellipsoidDefs {
		idx[strings.ToLower(name)] = name
	}
	return idx
}()

// NewEllipsoid returns an ellipsoid with semi-major axis a and the given
// inverse flattening. An inverse flattening of zero describes a sphere.
func NewEllipsoid(name string, a Distance, inverseFlattening float64) (Ellipsoid, error) {
	f := 0.0
	if inverseFlattening != 0 {
		f = 1 / inverseFlattening
	}
	return newEllipsoid(name, float64(a), f)
}

// NewEllipsoidFromAxes returns an ellipsoid with semi-major axis a and
// semi-minor axis b.
func NewEllipsoidFromAxes(name string, a, b Distance) (Ellipsoid, error) {
	if !(b > 0) || b > a {
		return Ellipsoid{}, fmt.Errorf("%w: semi-minor axis %v must be in (0, %v]", ErrInvalidValue, b, a)
	}
	return newEllipsoid(name, float64(a), float64(a-b)/float64(a))
}

func newEllipsoid(name string, a, f float64) (Ellipsoid, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return Ellipsoid{}, fmt.Errorf("%w: semi-major axis must be greater than zero", ErrInvalidValue)
	}
	if !(f >= 0 && f < 1) {
		return Ellipsoid{}, fmt.Errorf("%w: flattening %v outside [0, 1)", ErrInvalidValue, f)
	}
	return Ellipsoid{name: name, a: a, f: f}, nil
}

// LookupEllipsoid returns a registered ellipsoid by name. The match is case
// insensitive.
func LookupEllipsoid(name string) (Ellipsoid, error) {
	key, ok := ellipsoidIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Ellipsoid{}, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
	}
	def := ellipsoidDefs[key]
	var (
		e   Ellipsoid
		err error
	)
	if def.b != 0 {
		e, err = NewEllipsoidFromAxes(key, Distance(def.a), Distance(def.b))
	} else {
		e, err = NewEllipsoid(key, Distance(def.a), def.rf)
	}
	e.fullName = def.fullName
	return e, err
}

// EllipsoidNames returns the names of the registered ellipsoids in sorted
// order.
func EllipsoidNames() []string {
	names := make([]string, 0, len(ellipsoidDefs))
	for name := range ellipsoidDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the registry name of the ellipsoid.
func (e Ellipsoid) Name() string { return e.name }

// FullName returns the descriptive name of a registered ellipsoid, or its
// name for user defined ones.
func (e Ellipsoid) FullName() string {
	if e.fullName == "" {
		return e.name
	}
	return e.fullName
}

// SemiMajorAxis returns the equatorial radius a.
func (e Ellipsoid) SemiMajorAxis() Distance { return Distance(e.a) }

// SemiMinorAxis returns the polar radius b = a(1-f).
func (e Ellipsoid) SemiMinorAxis() Distance { return Distance(e.a * (1 - e.f)) }

// Flattening returns f = (a-b)/a.
func (e Ellipsoid) Flattening() float64 { return e.f }

// InverseFlattening returns 1/f, or +Inf for a sphere.
func (e Ellipsoid) InverseFlattening() float64 {
	if e.f == 0 {
		return math.Inf(1)
	}
	return 1 / e.f
}

// FirstEccentricitySquared returns e² = 2f - f².
func (e Ellipsoid) FirstEccentricitySquared() float64 { return 2*e.f - e.f*e.f }

// SecondEccentricitySquared returns e'² = e²/(1-e²).
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	e2 := e.FirstEccentricitySquared()
	return e2 / (1 - e2)
}

// MeanRadius returns the arithmetic mean radius (2a+b)/3.
func (e Ellipsoid) MeanRadius() Distance {
	return Distance((2*e.a + float64(e.SemiMinorAxis())) / 3)
}

// VolumetricRadius returns the radius of the sphere of equal volume,
// (a²b)^(1/3).
func (e Ellipsoid) VolumetricRadius() Distance {
	return Distance(math.Cbrt(e.a * e.a * float64(e.SemiMinorAxis())))
}

// AuthalicRadius returns the radius of the sphere of equal surface area.
func (e Ellipsoid) AuthalicRadius() Distance {
	ecc := math.Sqrt(e.FirstEccentricitySquared())
	if ecc < 1e-12 {
		return Distance(e.a)
	}
	b := float64(e.SemiMinorAxis())
	return Distance(math.Sqrt((e.a*e.a + b*b*math.Atanh(ecc)/ecc) / 2))
}

// MeridianRadius returns the radius of curvature in the meridian at
// latitude lat.
func (e Ellipsoid) MeridianRadius(lat Angle) Distance {
	e2 := e.FirstEccentricitySquared()
	s := math.Sin(float64(lat))
	return Distance(e.a * (1 - e2) / math.Pow(1-e2*s*s, 1.5))
}

// PrimeVerticalRadius returns the radius of curvature in the prime vertical
// at latitude lat.
func (e Ellipsoid) PrimeVerticalRadius(lat Angle) Distance {
	return Distance(e.primeVertical(math.Sin(float64(lat))))
}

func (e Ellipsoid) primeVertical(sinLat float64) float64 {
	return e.a / math.Sqrt(1-e.FirstEccentricitySquared()*sinLat*sinLat)
}

func (e Ellipsoid) String() string {
	if e.f == 0 {
		return fmt.Sprintf("%s (a=%.3f m, sphere)", e.name, e.a)
	}
	return fmt.Sprintf("%s (a=%.3f m, 1/f=%.9f)", e.name, e.a, 1/e.f)
}
