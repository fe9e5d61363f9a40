package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// ECEF is an Earth-Centered-Earth-Fixed Cartesian coordinate. The frame it
// refers to is the one of the datum it was computed under.
type ECEF Triple[Distance]

const (
	ecefTolerance     = 1e-11 // radians of latitude
	ecefMaxIterations = 10
)

// NewECEF returns the point (x, y, z). Bare numbers are metres.
func NewECEF[T DistanceArg](x, y, z T) ECEF {
	return ECEF{X: AsDistance(x), Y: AsDistance(y), Z: AsDistance(z)}
}

// ECEFFromVector returns the point at v, in metres.
func ECEFFromVector(v r3.Vector) ECEF {
	return ECEF{X: Distance(v.X), Y: Distance(v.Y), Z: Distance(v.Z)}
}

// Vector returns the point as an r3.Vector in metres.
func (p ECEF) Vector() r3.Vector {
	return r3.Vector{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Triple returns the coordinates as a Triple.
func (p ECEF) Triple() Triple[Distance] {
	return Triple[Distance](p)
}

// DistanceTo returns the straight line distance between p and q.
func (p ECEF) DistanceTo(q ECEF) Distance {
	return Distance(p.Vector().Distance(q.Vector()))
}

func (p ECEF) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", float64(p.X), float64(p.Y), float64(p.Z))
}

// LatLongToECEF converts a geodetic position on e to geocentric coordinates.
func LatLongToECEF(l LatLong, e Ellipsoid) ECEF {
	lat, lon, h := float64(l.Lat), float64(l.Lon), float64(l.Height)
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	n := e.primeVertical(sinLat)
	e2 := e.FirstEccentricitySquared()

	return ECEF{
		X: Distance((n + h) * cosLat * cosLon),
		Y: Distance((n + h) * cosLat * sinLon),
		Z: Distance((n*(1-e2) + h) * sinLat),
	}
}

// ECEFToLatLong converts geocentric coordinates to a geodetic position on e.
// Latitude is found by fixed-point iteration from the estimate
// atan2(z, p(1-e²)); it fails with ErrConvergence if the latitude has not
// settled to within 1e-11 rad after 10 iterations, which does not happen for
// points outside the Earth's core.
func ECEFToLatLong(p ECEF, e Ellipsoid) (LatLong, error) {
	x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) ||
		math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsInf(z, 0) {
		return LatLong{}, fmt.Errorf("%w: ECEF %v", ErrInvalidValue, p)
	}

	e2 := e.FirstEccentricitySquared()
	lon := math.Atan2(y, x)
	rho := math.Hypot(x, y)

	// On the polar axis latitude is ±90° and longitude is undefined.
	if rho < 1e-9 {
		lat := math.Copysign(math.Pi/2, z)
		return latLongRadians(lat, 0, Distance(math.Abs(z)-float64(e.SemiMinorAxis()))), nil
	}

	lat := math.Atan2(z, rho*(1-e2))
	for i := 0; i < ecefMaxIterations; i++ {
		n := e.primeVertical(math.Sin(lat))
		h := rho/math.Cos(lat) - n
		next := math.Atan2(z, rho*(1-e2*n/(n+h)))
		if math.IsNaN(next) {
			break
		}
		if math.Abs(next-lat) < ecefTolerance {
			return latLongRadians(next, lon, Distance(ellipsoidalHeight(e, next, rho, z))), nil
		}
		lat = next
	}
	return LatLong{}, fmt.Errorf("%w: geocentric to geodetic latitude after %d iterations", ErrConvergence, ecefMaxIterations)
}

// ellipsoidalHeight picks the better conditioned of the two height formulas
// for the latitude.
func ellipsoidalHeight(e Ellipsoid, lat, rho, z float64) float64 {
	sinLat, cosLat := math.Sincos(lat)
	n := e.primeVertical(sinLat)
	if math.Abs(cosLat) > math.Abs(sinLat) {
		return rho/cosLat - n
	}
	return z/sinLat - n*(1-e.FirstEccentricitySquared())
}
