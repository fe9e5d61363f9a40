package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatLong is a geodetic position: latitude and longitude on a reference
// ellipsoid and height above it. Latitude is within [-90°, 90°] and
// longitude within (-180°, 180°].
type LatLong struct {
	Lat    Angle
	Lon    Angle
	Height Distance
}

// NewLatLong validates and normalizes a position. Each argument may be a
// bare float64 (degrees for the angles, metres for the height) or the
// matching value type, so both of these are accepted:
//
//	NewLatLong(53.408630, -2.991746, 0.0)
//	NewLatLong(geodesy.Degrees(53.408630), geodesy.Radians(-0.0522), geodesy.Metres(12))
//
// Untyped integer constants default to int, which is not an AngleArg or
// DistanceArg, so whole numbers need a decimal point: NewLatLong(0.0, 0.0, 0.0)
// rather than NewLatLong(0, 0, 0).
func NewLatLong[A, B AngleArg, H DistanceArg](lat A, lon B, height H) (LatLong, error) {
	la := AsAngle(lat)
	lo := AsAngle(lon)
	h := AsDistance(height)

	if math.IsNaN(float64(la)) || math.IsNaN(float64(lo)) || math.IsInf(float64(lo), 0) {
		return LatLong{}, fmt.Errorf("%w: latitude %v longitude %v", ErrInvalidValue, la, lo)
	}
	if math.IsNaN(float64(h)) || math.IsInf(float64(h), 0) {
		return LatLong{}, fmt.Errorf("%w: height %v", ErrInvalidValue, h)
	}
	if math.Abs(float64(la)) > math.Pi/2 {
		return LatLong{}, fmt.Errorf("%w: latitude %v", ErrOutOfRange, la)
	}
	return LatLong{Lat: la, Lon: lo.Wrap180(), Height: h}, nil
}

// latLongRadians builds a LatLong from computed radians. The inputs come from
// the conversion engine and are already in range apart from longitude wrap.
func latLongRadians(lat, lon float64, h Distance) LatLong {
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	return LatLong{Lat: Angle(lat), Lon: Angle(lon).Wrap180(), Height: h}
}

// LatLongFromS2 returns the position of ll at the given height.
func LatLongFromS2(ll s2.LatLng, height Distance) (LatLong, error) {
	return NewLatLong(Angle(ll.Lat), Angle(ll.Lng), height)
}

// S2 returns the horizontal position as an s2.LatLng.
func (l LatLong) S2() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(l.Lat), Lng: s1.Angle(l.Lon)}
}

// Point returns the unit vector of the position on a sphere.
func (l LatLong) Point() s2.Point {
	return s2.PointFromLatLng(l.S2())
}

// FormatDMS formats the position in degrees, minutes and seconds with
// hemisphere letters.
func (l LatLong) FormatDMS() string {
	return l.Lat.FormatDMS("N", "S") + " " + l.Lon.FormatDMS("E", "W")
}

func (l LatLong) String() string {
	return fmt.Sprintf("(%.7f, %.7f, %v)", l.Lat.Degrees(), l.Lon.Degrees(), l.Height)
}
