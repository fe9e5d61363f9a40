package geodesy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Hemisphere is the hemisphere of a UTM coordinate.
type Hemisphere byte

// Hemisphere values
const (
	HemisphereInvalid Hemisphere = 0
	HemisphereNorth   Hemisphere = 'N'
	HemisphereSouth   Hemisphere = 'S'
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}

// UTM is a Universal Transverse Mercator coordinate. LatitudeZone is the
// band letter, C to X without I and O.
type UTM struct {
	Easting       float64
	Northing      float64
	LongitudeZone int
	LatitudeZone  byte
}

// Hemisphere returns the hemisphere of the coordinate, derived from the band
// letter.
func (u UTM) Hemisphere() Hemisphere {
	if !validBand(u.LatitudeZone) {
		return HemisphereInvalid
	}
	if u.LatitudeZone >= 'N' {
		return HemisphereNorth
	}
	return HemisphereSouth
}

func (u UTM) String() string {
	return fmt.Sprintf("%d%c %.3f %.3f", u.LongitudeZone, u.LatitudeZone, u.Easting, u.Northing)
}

// ParseUTM parses a coordinate in the form "30U 500000 5700000". The zone
// and band may also be separated by a space.
func ParseUTM(s string) (UTM, error) {
	fields := strings.Fields(s)
	if len(fields) == 4 {
		fields = []string{fields[0] + fields[1], fields[2], fields[3]}
	}
	if len(fields) != 3 || len(fields[0]) < 2 {
		return UTM{}, fmt.Errorf("%w: UTM coordinate %q", ErrInvalidValue, s)
	}

	zoneBand := strings.ToUpper(fields[0])
	band := zoneBand[len(zoneBand)-1]
	zone, err := strconv.Atoi(zoneBand[:len(zoneBand)-1])
	if err != nil {
		return UTM{}, fmt.Errorf("%w: UTM zone %q", ErrInvalidValue, fields[0])
	}
	easting, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return UTM{}, fmt.Errorf("%w: UTM easting %q", ErrInvalidValue, fields[1])
	}
	northing, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return UTM{}, fmt.Errorf("%w: UTM northing %q", ErrInvalidValue, fields[2])
	}
	u := UTM{Easting: easting, Northing: northing, LongitudeZone: zone, LatitudeZone: band}
	if err := u.validate(); err != nil {
		return UTM{}, err
	}
	return u, nil
}

const bandLetters = "CDEFGHJKLMNPQRSTUVWX"

const (
	utmMaxLatDegrees = 80.0
	utmMinEasting    = 100000.0
	utmMaxEasting    = 900000.0
	utmMinNorthing   = 0.0
	utmMaxNorthing   = 10000000.0

	utmFalseEasting      = 500000.0
	utmSouthernNorthing  = 10000000.0
	utmCentralMeridianK0 = 0.9996
)

func validBand(b byte) bool {
	return strings.IndexByte(bandLetters, b) >= 0
}

// bandLetter returns the latitude band of a latitude in [-80°, 80°]. Bands
// are 8° high; 80° itself belongs to X.
func bandLetter(latDegrees float64) byte {
	idx := int(math.Floor((latDegrees + utmMaxLatDegrees) / 8))
	if idx >= len(bandLetters) {
		idx = len(bandLetters) - 1
	} else if idx < 0 {
		idx = 0
	}
	return bandLetters[idx]
}

func (u UTM) validate() error {
	if (u.LongitudeZone < 1) || (u.LongitudeZone > 60) {
		return fmt.Errorf("%w: zone %d", ErrOutOfRange, u.LongitudeZone)
	}
	if !validBand(u.LatitudeZone) {
		return fmt.Errorf("%w: latitude band %q", ErrOutOfRange, u.LatitudeZone)
	}
	if (u.Easting < utmMinEasting) || (u.Easting > utmMaxEasting) {
		return fmt.Errorf("%w: easting %.3f", ErrOutOfRange, u.Easting)
	}
	if (u.Northing < utmMinNorthing) || (u.Northing > utmMaxNorthing) {
		return fmt.Errorf("%w: northing %.3f", ErrOutOfRange, u.Northing)
	}
	return nil
}

// UTMConverter converts between geodetic and UTM coordinates on one
// ellipsoid. It holds one Transverse Mercator projection per zone.
type UTMConverter struct {
	ellipsoid             Ellipsoid
	utmOverride           int
	transverseMercatorMap [61]*TransverseMercator
}

// NewUTMConverter constructs a UTM converter for e.
func NewUTMConverter(e Ellipsoid) (*UTMConverter, error) {
	return NewUTMConverterWithOverride(e, 0)
}

// NewUTMConverterWithOverride constructs a UTM converter for e that places
// every point in zone override when it is within one zone of the natural one.
// An override of 0 means no override.
func NewUTMConverterWithOverride(e Ellipsoid, override int) (*UTMConverter, error) {
	if (override < 0) || (override > 60) {
		return nil, fmt.Errorf("%w: zone override %d", ErrOutOfRange, override)
	}
	u := &UTMConverter{
		ellipsoid:   e,
		utmOverride: override,
	}

	for zone := 1; zone <= 60; zone++ {
		var err error
		u.transverseMercatorMap[zone], err = NewTransverseMercator(e, zoneCentralMeridian(zone), 0,
			utmFalseEasting, 0, utmCentralMeridianK0)
		if err != nil {
			return nil, fmt.Errorf("UTM zone %d: %w", zone, err)
		}
	}
	return u, nil
}

func zoneCentralMeridian(zone int) Angle {
	return Degrees(float64(6*zone - 183))
}

// Ellipsoid returns the ellipsoid the converter works on.
func (u *UTMConverter) Ellipsoid() Ellipsoid { return u.ellipsoid }

// ConvertFromGeodetic converts a geodetic position to UTM. A non-zero
// utmZoneOverride forces a zone within one of the natural zone. Latitudes
// beyond ±80° are rejected.
func (u *UTMConverter) ConvertFromGeodetic(l LatLong, utmZoneOverride int) (UTM, error) {
	latDegrees := l.Lat.Degrees()
	lonDegrees := l.Lon.Wrap180().Degrees()
	if math.IsNaN(latDegrees) || math.IsNaN(lonDegrees) {
		return UTM{}, fmt.Errorf("%w: position %v", ErrInvalidValue, l)
	}
	if math.Abs(latDegrees) > utmMaxLatDegrees {
		return UTM{}, fmt.Errorf("%w: latitude %v outside UTM coverage", ErrOutOfRange, l.Lat)
	}

	tempZone := int(math.Floor((lonDegrees+180)/6)) + 1
	if tempZone > 60 {
		tempZone = 1
	}

	override := utmZoneOverride
	if override == 0 {
		override = u.utmOverride
	}

	// allow UTM zone override up to +/- one zone of the calculated zone
	if override != 0 {
		switch {
		case (tempZone == 1) && (override == 60):
			tempZone = override
		case (tempZone == 60) && (override == 1):
			tempZone = override
		case ((tempZone - 1) <= override) && (override <= (tempZone + 1)):
			tempZone = override
		default:
			return UTM{}, fmt.Errorf("%w: zone override %d for zone %d", ErrOutOfRange, override, tempZone)
		}
	} else {
		tempZone = specialZone(tempZone, latDegrees, lonDegrees)
	}

	transverseMercator := u.transverseMercatorMap[tempZone]
	grid, err := transverseMercator.ConvertFromGeodetic(l)
	if err != nil {
		return UTM{}, err
	}

	falseNorthing := 0.0
	if latDegrees < 0 {
		falseNorthing = utmSouthernNorthing
	}
	c := UTM{
		Easting:       grid.Easting,
		Northing:      grid.Northing + falseNorthing,
		LongitudeZone: tempZone,
		LatitudeZone:  bandLetter(latDegrees),
	}
	if err := c.validate(); err != nil {
		return UTM{}, err
	}
	return c, nil
}

// specialZone applies the zone exceptions over southern Norway and Svalbard.
func specialZone(zone int, latDegrees, lonDegrees float64) int {
	switch {
	case latDegrees >= 56 && latDegrees < 64:
		if lonDegrees >= 0 && lonDegrees < 3 {
			return 31
		}
		if lonDegrees >= 3 && lonDegrees < 12 {
			return 32
		}
	case latDegrees >= 72:
		switch {
		case lonDegrees >= 0 && lonDegrees < 9:
			return 31
		case lonDegrees >= 9 && lonDegrees < 21:
			return 33
		case lonDegrees >= 21 && lonDegrees < 33:
			return 35
		case lonDegrees >= 33 && lonDegrees < 42:
			return 37
		}
	}
	return zone
}

// ConvertToGeodetic converts a UTM coordinate to a geodetic position with
// zero height. The hemisphere is taken from the band letter.
func (u *UTMConverter) ConvertToGeodetic(c UTM) (LatLong, error) {
	if err := c.validate(); err != nil {
		return LatLong{}, err
	}

	falseNorthing := 0.0
	if c.Hemisphere() == HemisphereSouth {
		falseNorthing = utmSouthernNorthing
	}

	transverseMercator := u.transverseMercatorMap[c.LongitudeZone]
	l, err := transverseMercator.ConvertToGeodetic(GridCoord{Easting: c.Easting, Northing: c.Northing - falseNorthing})
	if err != nil {
		return LatLong{}, err
	}
	return l, nil
}

// registryUTMConverters caches the converters of registered ellipsoids. A
// converter is read-only once built.
var (
	registryUTMConvertersMu sync.Mutex
	registryUTMConverters   = map[Ellipsoid]*UTMConverter{}
)

// utmConverterFor returns the shared converter for WGS84, a cached one for
// the other registered ellipsoids and a new one for user defined ellipsoids.
func utmConverterFor(e Ellipsoid) (*UTMConverter, error) {
	if DefaultUTMConverter != nil && e == DefaultUTMConverter.ellipsoid {
		return DefaultUTMConverter, nil
	}
	if reg, err := LookupEllipsoid(e.name); err != nil || reg != e {
		return NewUTMConverter(e)
	}

	registryUTMConvertersMu.Lock()
	defer registryUTMConvertersMu.Unlock()
	if c, ok := registryUTMConverters[e]; ok {
		return c, nil
	}
	c, err := NewUTMConverter(e)
	if err != nil {
		return nil, err
	}
	registryUTMConverters[e] = c
	return c, nil
}

// LatLongToUTM converts a position on e to UTM. Converters for the WGS84
// and registered ellipsoids are shared; for a user defined ellipsoid each
// call builds 60 projections, so repeated conversions should hold a
// converter from NewUTMConverter instead.
func LatLongToUTM(l LatLong, e Ellipsoid) (UTM, error) {
	c, err := utmConverterFor(e)
	if err != nil {
		return UTM{}, err
	}
	return c.ConvertFromGeodetic(l, 0)
}

// UTMToLatLong converts a UTM coordinate on e to a position.
func UTMToLatLong(u UTM, e Ellipsoid) (LatLong, error) {
	c, err := utmConverterFor(e)
	if err != nil {
		return LatLong{}, err
	}
	return c.ConvertToGeodetic(u)
}
