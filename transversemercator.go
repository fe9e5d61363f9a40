package geodesy

import (
	"fmt"
	"math"
)

const nTerms = 6

// GridCoord is a projected easting and northing in metres.
type GridCoord struct {
	Easting  float64
	Northing float64
}

// TransverseMercator provides conversions between geodetic coordinates
// (latitude and longitude) and Transverse Mercator projection coordinates
// (easting and northing) on one ellipsoid.
type TransverseMercator struct {
	ellipsoid Ellipsoid

	eps float64 // first eccentricity

	k0R4    float64 // scale factor * R4
	k0R4inv float64 // 1/(scale factor * R4)

	aCoeff [nTerms]float64
	bCoeff [nTerms]float64

	// projection parameters
	originLat     float64 // latitude of origin in radians
	originLong    float64 // longitude of origin in radians
	falseEasting  float64
	falseNorthing float64
	scaleFactor   float64

	// grid position of the origin before false offsets are applied
	originEasting  float64
	originNorthing float64

	// maximum variance for easting and northing values
	deltaEasting  float64
	deltaNorthing float64
}

// NewTransverseMercator constructs a Transverse Mercator projection on e with
// the given central meridian, latitude of origin, false offsets and central
// scale factor.
func NewTransverseMercator(e Ellipsoid, centralMeridian, originLatitude Angle,
	falseEasting, falseNorthing Distance, scaleFactor float64) (*TransverseMercator, error) {
	if e.a <= 0 {
		return nil, fmt.Errorf("%w: ellipsoid %q is not initialized", ErrInvalidValue, e.name)
	}
	if math.Abs(float64(originLatitude)) > math.Pi/2 {
		return nil, fmt.Errorf("%w: latitude of origin %v", ErrOutOfRange, originLatitude)
	}
	if (centralMeridian < -math.Pi) || (centralMeridian > (2 * math.Pi)) {
		return nil, fmt.Errorf("%w: central meridian %v", ErrOutOfRange, centralMeridian)
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, fmt.Errorf("%w: scale factor %v", ErrOutOfRange, scaleFactor)
	}

	t := &TransverseMercator{
		ellipsoid:     e,
		eps:           math.Sqrt(e.FirstEccentricitySquared()),
		originLat:     float64(originLatitude),
		originLong:    float64(centralMeridian.Wrap180()),
		falseEasting:  float64(falseEasting),
		falseNorthing: float64(falseNorthing),
		scaleFactor:   scaleFactor,
		deltaEasting:  20000000.0,
		deltaNorthing: 10000000.0,
	}

	// Helmert's n = (a - b)/(a + b)
	n := e.f / (2 - e.f)
	var r4oa float64
	t.aCoeff, t.bCoeff, r4oa = krugerCoefficients(n)
	t.k0R4 = r4oa * scaleFactor * e.a
	t.k0R4inv = 1.0 / t.k0R4

	// The origin may move from (0,0) and this is represented by a change in
	// the false easting/northing values.
	if err := t.latLonToGrid(t.originLat, t.originLong, &t.originNorthing, &t.originEasting); err != nil {
		return nil, err
	}
	return t, nil
}

// krugerCoefficients returns the series coefficients of the Krüger
// expansion, truncated at n⁶:
//
//	a     coefficients for the rectifying latitude as a series in the conformal latitude
//	b     coefficients for the conformal latitude as a series in the rectifying latitude
//	r4oa  the meridional isoperimetric radius over the semi-major axis
//
// They depend only on the shape of the ellipsoid, not its size.
func krugerCoefficients(n float64) (a, b [nTerms]float64, r4oa float64) {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n

	a[0] = n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 + 7891*n6/37800
	a[1] = 13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 - 1983433*n6/1935360
	a[2] = 61*n3/240 - 103*n4/140 + 15061*n5/26880 + 167603*n6/181440
	a[3] = 49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600
	a[4] = 34729*n5/80640 - 3418889*n6/1995840
	a[5] = 212378941 * n6 / 319334400

	b[0] = -n/2 + 2*n2/3 - 37*n3/96 + n4/360 + 81*n5/512 - 96199*n6/604800
	b[1] = -n2/48 - n3/15 + 437*n4/1440 - 46*n5/105 + 1118711*n6/3870720
	b[2] = -17*n3/480 + 37*n4/840 + 209*n5/4480 - 5569*n6/90720
	b[3] = -4397*n4/161280 + 11*n5/504 + 830251*n6/7257600
	b[4] = -4583*n5/161280 + 108847*n6/3991680
	b[5] = -20648693 * n6 / 638668800

	r4oa = (1 + n2/4 + n4/64 + n6/256) / (1 + n)
	return a, b, r4oa
}

func (t *TransverseMercator) checkLatLon(latitude, deltaLon float64) error {
	// test is based on distance from central meridian = deltaLon
	testAngle := math.Abs(deltaLon)
	testAngle = math.Min(testAngle, math.Abs(deltaLon-math.Pi))
	testAngle = math.Min(testAngle, math.Abs(deltaLon+math.Pi))

	// Away from the equator, is also valid
	testAngle = math.Min(testAngle, math.Pi/2-latitude)
	testAngle = math.Min(testAngle, math.Pi/2+latitude)

	const maxDeltaLong = ((math.Pi * 70) / 180.0)
	if testAngle > maxDeltaLong {
		return fmt.Errorf("%w: longitude too far from central meridian", ErrOutOfRange)
	}
	return nil
}

func (t *TransverseMercator) latLonToGrid(latitude, longitude float64, northing, easting *float64) error {
	// longitude from the central meridian in (-Pi, Pi]
	lambda := float64(Angle(longitude - t.originLong).Wrap180())
	if err := t.checkLatLon(latitude, lambda); err != nil {
		return err
	}

	sinLam, cosLam := math.Sincos(lambda)
	sinPhi, cosPhi := math.Sincos(latitude)

	// Convert geodetic latitude, Phi, to conformal latitude, Chi. Only the
	// cosine and sine of Chi are needed.
	p := math.Exp(t.eps * math.Atanh(t.eps*sinPhi))
	part1 := (1 + sinPhi) / p
	part2 := (1 - sinPhi) * p
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	// Spherical transverse Mercator gives the (u, v) plane.
	u := math.Atanh(cosChi * sinLam)
	v := math.Atan2(sinChi, cosChi*cosLam)

	var c2ku, s2ku, c2kv, s2kv [nTerms]float64
	hyperbolicMultiples(2.0*u, &c2ku, &s2ku)
	trigMultiples(2.0*v, &c2kv, &s2kv)

	// (u, v) plane to (x*, y*) plane
	xStar := 0.0
	yStar := 0.0
	for k := nTerms - 1; k >= 0; k-- {
		xStar += t.aCoeff[k] * s2ku[k] * c2kv[k]
		yStar += t.aCoeff[k] * c2ku[k] * s2kv[k]
	}
	xStar += u
	yStar += v

	*easting = t.k0R4 * xStar
	*northing = t.k0R4 * yStar
	return nil
}

// ConvertFromGeodetic projects a position to grid coordinates. Height is
// ignored.
func (t *TransverseMercator) ConvertFromGeodetic(l LatLong) (GridCoord, error) {
	var easting, northing float64
	if err := t.latLonToGrid(float64(l.Lat), float64(l.Lon), &northing, &easting); err != nil {
		return GridCoord{}, err
	}
	return GridCoord{
		Easting:  easting + t.falseEasting - t.originEasting,
		Northing: northing + t.falseNorthing - t.originNorthing,
	}, nil
}

// ConvertToGeodetic recovers the position of grid coordinates g, with zero
// height.
func (t *TransverseMercator) ConvertToGeodetic(g GridCoord) (LatLong, error) {
	easting := g.Easting
	northing := g.Northing

	if (easting < (t.falseEasting - t.deltaEasting)) ||
		(easting > (t.falseEasting + t.deltaEasting)) {
		return LatLong{}, fmt.Errorf("%w: easting %.3f", ErrOutOfRange, easting)
	}
	if (northing < (t.falseNorthing - t.deltaNorthing)) ||
		(northing > (t.falseNorthing + t.deltaNorthing)) {
		return LatLong{}, fmt.Errorf("%w: northing %.3f", ErrOutOfRange, northing)
	}

	easting -= t.falseEasting - t.originEasting
	northing -= t.falseNorthing - t.originNorthing

	latitude, longitude := t.gridToLatLon(northing, easting)
	if math.Abs(latitude) > math.Pi/2 {
		return LatLong{}, fmt.Errorf("%w: northing %.3f", ErrOutOfRange, g.Northing)
	}
	return latLongRadians(latitude, longitude, 0), nil
}

func (t *TransverseMercator) gridToLatLon(northing, easting float64) (latitude, longitude float64) {
	// undo the scale and the isoperimetric radius
	xStar := t.k0R4inv * easting
	yStar := t.k0R4inv * northing

	var c2kx, s2kx, c2ky, s2ky [nTerms]float64
	hyperbolicMultiples(2.0*xStar, &c2kx, &s2kx)
	trigMultiples(2.0*yStar, &c2ky, &s2ky)

	// (x*, y*) plane to (u, v) plane
	u := 0.0
	v := 0.0
	for k := nTerms - 1; k >= 0; k-- {
		u += t.bCoeff[k] * s2kx[k] * c2ky[k]
		v += t.bCoeff[k] * c2kx[k] * s2ky[k]
	}
	u += xStar
	v += yStar

	// (u, v) plane to sphere
	coshU := math.Cosh(u)
	sinhU := math.Sinh(u)
	sinV, cosV := math.Sincos(v)

	var lambda float64
	if (math.Abs(cosV) < 10e-12) && (math.Abs(coshU) < 10e-12) {
		lambda = 0
	} else {
		lambda = math.Atan2(sinhU, cosV)
	}

	sinChi := sinV / coshU
	return geodeticLat(sinChi, t.eps), t.originLong + lambda
}

// geodeticLat recovers geodetic latitude from the sine of the conformal
// latitude by fixed-point iteration on the footpoint.
func geodeticLat(sinChi, e float64) float64 {
	sOld := 1.0e99
	s := sinChi
	onePlusSinChi := 1.0 + sinChi
	oneMinusSinChi := 1.0 - sinChi

	for n := 0; n < 30; n++ {
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		s = (onePlusSinChi*pSq - oneMinusSinChi) /
			(onePlusSinChi*pSq + oneMinusSinChi)

		if math.Abs(s-sOld) < 1.0e-12 {
			break
		}
		sOld = s
	}
	return math.Asin(s)
}

// trigMultiples fills c[k] = cos(2(k+1)y) and s[k] = sin(2(k+1)y) from
// twoY = 2y by angle addition.
func trigMultiples(twoY float64, c, s *[nTerms]float64) {
	s0, c0 := math.Sincos(twoY)
	c[0], s[0] = c0, s0
	for k := 1; k < nTerms; k++ {
		c[k] = c[k-1]*c0 - s[k-1]*s0
		s[k] = s[k-1]*c0 + c[k-1]*s0
	}
}

// hyperbolicMultiples fills c[k] = cosh(2(k+1)x) and s[k] = sinh(2(k+1)x)
// from twoX = 2x.
func hyperbolicMultiples(twoX float64, c, s *[nTerms]float64) {
	c0, s0 := math.Cosh(twoX), math.Sinh(twoX)
	c[0], s[0] = c0, s0
	for k := 1; k < nTerms; k++ {
		c[k] = c[k-1]*c0 + s[k-1]*s0
		s[k] = s[k-1]*c0 + c[k-1]*s0
	}
}
