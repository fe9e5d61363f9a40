package geodesy

import (
	"fmt"
	"sort"
	"strings"
)

// Datum binds a reference ellipsoid to the Helmert parameters that carry its
// geocentric frame into WGS84. Datums with several published parameter sets
// carry one per region.
type Datum struct {
	name      string
	fullName  string
	ellipsoid Ellipsoid
	region    string
	toWGS84   Helmert
}

// Direction selects which way Datum.TransformECEF moves a point.
type Direction int

// Transform directions relative to WGS84.
const (
	DirectionToWGS84 Direction = iota
	DirectionFromWGS84
)

func (d Direction) String() string {
	switch d {
	case DirectionToWGS84:
		return "to WGS84"
	case DirectionFromWGS84:
		return "from WGS84"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

type datumDef struct {
	ellipsoid     string
	fullName      string
	defaultRegion string
	regions       map[string]Helmert
}

var datumDefs = map[string]datumDef{
	"WGS84": {
		ellipsoid: "WGS84", fullName: "World Geodetic System 1984", defaultRegion: "Global",
		regions: map[string]Helmert{"Global": {}},
	},
	"WGS72": {
		ellipsoid: "WGS72", fullName: "World Geodetic System 1972", defaultRegion: "Global",
		regions: map[string]Helmert{"Global": NewHelmert(0, 0, 4.5, 0, 0, 0.554, 0.2263)},
	},
	"ETRS89": {
		ellipsoid: "GRS80", fullName: "European Terrestrial Reference System 1989", defaultRegion: "Europe",
		regions: map[string]Helmert{"Europe": {}},
	},
	"NAD83": {
		ellipsoid: "GRS80", fullName: "North American Datum 1983", defaultRegion: "North America",
		regions: map[string]Helmert{"North America": {}},
	},
	"NAD27": {
		ellipsoid: "Clarke1866", fullName: "North American Datum 1927", defaultRegion: "CONUS",
		regions: map[string]Helmert{
			"CONUS":           NewHelmert(-8, 160, 176, 0, 0, 0, 0),
			"Alaska":          NewHelmert(-5, 135, 172, 0, 0, 0, 0),
			"Canada":          NewHelmert(-10, 158, 187, 0, 0, 0, 0),
			"Mexico":          NewHelmert(-12, 130, 190, 0, 0, 0, 0),
			"Caribbean":       NewHelmert(-3, 142, 183, 0, 0, 0, 0),
			"Central America": NewHelmert(0, 125, 194, 0, 0, 0, 0),
		},
	},
	"ED50": {
		ellipsoid: "International1924", fullName: "European Datum 1950", defaultRegion: "Mean",
		regions: map[string]Helmert{
			"Mean":             NewHelmert(-87, -98, -121, 0, 0, 0, 0),
			"Western Europe":   NewHelmert(-87, -96, -120, 0, 0, 0, 0),
			"Greece":           NewHelmert(-84, -95, -130, 0, 0, 0, 0),
			"Norway & Finland": NewHelmert(-87, -95, -120, 0, 0, 0, 0),
			"Portugal & Spain": NewHelmert(-84, -107, -120, 0, 0, 0, 0),
			"England":          NewHelmert(-86, -96, -120, 0, 0, 0, 0),
		},
	},
	"OSGB36": {
		ellipsoid: "Airy1830", fullName: "Ordnance Survey Great Britain 1936", defaultRegion: "Great Britain",
		regions: map[string]Helmert{
			"Great Britain": NewHelmert(446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894),
		},
	},
	"Ireland1965": {
		ellipsoid: "ModifiedAiry", fullName: "Ireland 1965", defaultRegion: "Ireland",
		regions: map[string]Helmert{
			"Ireland": NewHelmert(482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15),
		},
	},
	"NZGD49": {
		ellipsoid: "International1924", fullName: "New Zealand Geodetic Datum 1949", defaultRegion: "New Zealand",
		regions: map[string]Helmert{
			"New Zealand": NewHelmert(59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993),
		},
	},
	"Potsdam": {
		ellipsoid: "Bessel1841", fullName: "Potsdam Rauenberg 1950 DHDN", defaultRegion: "Germany",
		regions: map[string]Helmert{"Germany": NewHelmert(606, 23, 413, 0, 0, 0, 0)},
	},
	"CH1903": {
		ellipsoid: "Bessel1841", fullName: "Swiss CH1903", defaultRegion: "Switzerland",
		regions: map[string]Helmert{"Switzerland": NewHelmert(674.374, 15.056, 405.346, 0, 0, 0, 0)},
	},
	"GGRS87": {
		ellipsoid: "GRS80", fullName: "Greek Geodetic Reference System 1987", defaultRegion: "Greece",
		regions: map[string]Helmert{"Greece": NewHelmert(-199.87, 74.79, 246.62, 0, 0, 0, 0)},
	},
	"RNB72": {
		ellipsoid: "International1924", fullName: "Reseau National Belge 1972", defaultRegion: "Belgium",
		regions: map[string]Helmert{
			"Belgium": NewHelmert(106.869, -52.2978, 103.724, -0.33657, 0.456955, -1.84218, 1),
		},
	},
	"SK42": {
		ellipsoid: "Krassovsky1940", fullName: "Pulkovo 1942 (SK-42)", defaultRegion: "Russia",
		regions: map[string]Helmert{"Russia": NewHelmert(23.92, -141.27, -80.9, 0, 0, 0, 0)},
	},
	"Tokyo": {
		ellipsoid: "Bessel1841", fullName: "Tokyo Datum", defaultRegion: "Mean",
		regions: map[string]Helmert{
			"Mean":        NewHelmert(-148, 507, 685, 0, 0, 0, 0),
			"Japan":       NewHelmert(-148, 507, 685, 0, 0, 0, 0),
			"South Korea": NewHelmert(-146, 507, 687, 0, 0, 0, 0),
			"Okinawa":     NewHelmert(-158, 507, 676, 0, 0, 0, 0),
		},
	},
}

var datumIndex = func() map[string]string {
	idx := make(map[string]string, len(datumDefs))
	for name := range datumDefs {
		idx[strings.ToLower(name)] = name
	}
	return idx
}()

func findDatum(name string) (string, datumDef, error) {
	key, ok := datumIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", datumDef{}, fmt.Errorf("%w: %q", ErrUnknownDatum, name)
	}
	return key, datumDefs[key], nil
}

// DatumNames returns the names of the registered datums in sorted order.
func DatumNames() []string {
	names := make([]string, 0, len(datumDefs))
	for name := range datumDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionNamesForDatum returns the regions that have their own parameter set
// for the named datum, in sorted order.
func RegionNamesForDatum(name string) ([]string, error) {
	_, def, err := findDatum(name)
	if err != nil {
		return nil, err
	}
	regions := make([]string, 0, len(def.regions))
	for r := range def.regions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions, nil
}

// LookupDatum returns a registered datum. An empty region selects the
// datum's default region. Names and regions match case insensitively.
func LookupDatum(name, region string) (Datum, error) {
	key, def, err := findDatum(name)
	if err != nil {
		return Datum{}, err
	}
	e, err := LookupEllipsoid(def.ellipsoid)
	if err != nil {
		return Datum{}, fmt.Errorf("datum %s: %w", key, err)
	}
	d := Datum{name: key, fullName: def.fullName, ellipsoid: e}
	return d.bindRegion(def, region)
}

func (d Datum) bindRegion(def datumDef, region string) (Datum, error) {
	if region == "" {
		region = def.defaultRegion
	}
	for r, h := range def.regions {
		if strings.EqualFold(r, strings.TrimSpace(region)) {
			d.region = r
			d.toWGS84 = h
			return d, nil
		}
	}
	return Datum{}, fmt.Errorf("%w: %q for datum %s", ErrUnknownRegion, region, d.name)
}

// NewDatum returns a user defined datum on e whose frame is carried into
// WGS84 by toWGS84.
func NewDatum(name string, e Ellipsoid, toWGS84 Helmert) Datum {
	return Datum{name: name, ellipsoid: e, toWGS84: toWGS84}
}

// WithRegion returns the same datum bound to the parameter set of another
// region. An empty region selects the default region.
func (d Datum) WithRegion(region string) (Datum, error) {
	_, def, err := findDatum(d.name)
	if err != nil {
		return Datum{}, err
	}
	return d.bindRegion(def, region)
}

// Name returns the registry name of the datum.
func (d Datum) Name() string { return d.name }

// FullName returns the descriptive name of the datum.
func (d Datum) FullName() string {
	if d.fullName == "" {
		return d.name
	}
	return d.fullName
}

// Region returns the region whose parameters the datum is bound to.
func (d Datum) Region() string { return d.region }

// Ellipsoid returns the reference ellipsoid of the datum.
func (d Datum) Ellipsoid() Ellipsoid { return d.ellipsoid }

// Helmert returns the transform from this datum's frame to WGS84.
func (d Datum) Helmert() Helmert { return d.toWGS84 }

// ToWGS84 moves a point from this datum's frame into WGS84.
func (d Datum) ToWGS84(p ECEF) ECEF { return d.toWGS84.Apply(p) }

// FromWGS84 moves a point from WGS84 into this datum's frame.
func (d Datum) FromWGS84(p ECEF) ECEF { return d.toWGS84.Invert().Apply(p) }

// TransformECEF moves p to or from WGS84.
func (d Datum) TransformECEF(p ECEF, dir Direction) (ECEF, error) {
	switch dir {
	case DirectionToWGS84:
		return d.ToWGS84(p), nil
	case DirectionFromWGS84:
		return d.FromWGS84(p), nil
	}
	return ECEF{}, fmt.Errorf("%w: %s", ErrInvalidValue, dir)
}

// sameFrame reports whether two datums describe the same geodetic frame, in
// which case converting between them is the identity.
func (d Datum) sameFrame(o Datum) bool {
	return d.toWGS84 == o.toWGS84 &&
		d.ellipsoid.a == o.ellipsoid.a && d.ellipsoid.f == o.ellipsoid.f
}

func (d Datum) String() string {
	if d.region == "" {
		return d.name
	}
	return d.name + " (" + d.region + ")"
}

// ConvertDatum re-expresses a position given on datum from as a position on
// datum to, pivoting through WGS84 in geocentric coordinates.
func ConvertDatum(l LatLong, from, to Datum) (LatLong, error) {
	if from.sameFrame(to) {
		return l, nil
	}
	p := LatLongToECEF(l, from.ellipsoid)
	p = to.FromWGS84(from.ToWGS84(p))
	out, err := ECEFToLatLong(p, to.ellipsoid)
	if err != nil {
		return LatLong{}, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	return out, nil
}

// ToWGS84 re-expresses a position on datum d as a WGS84 position.
func ToWGS84(l LatLong, d Datum) (LatLong, error) {
	return ConvertDatum(l, d, WGS84)
}

// FromWGS84 re-expresses a WGS84 position as a position on datum d.
func FromWGS84(l LatLong, d Datum) (LatLong, error) {
	return ConvertDatum(l, WGS84, d)
}
