package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Geodesic is the solution of the inverse geodesic problem between two
// positions: the length of the path and the bearing at each end. Bearings are
// in [0°, 360°).
type Geodesic struct {
	Distance       Distance
	InitialBearing Angle
	FinalBearing   Angle
}

// Method selects the formula used for distances along the Earth's surface.
type Method int

// Distance methods.
const (
	MethodVincenty Method = iota
	MethodHaversine
)

func (m Method) String() string {
	switch m {
	case MethodVincenty:
		return "vincenty"
	case MethodHaversine:
		return "haversine"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the method named by s, "vincenty" or "haversine".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "vincenty", "Vincenty":
		return MethodVincenty, nil
	case "haversine", "Haversine":
		return MethodHaversine, nil
	}
	return 0, fmt.Errorf("%w: method %q", ErrInvalidValue, s)
}

// Distance returns the distance between a and b on e with method m.
func (m Method) Distance(a, b LatLong, e Ellipsoid) (Distance, error) {
	switch m {
	case MethodVincenty:
		return DistanceVincenty(a, b, e)
	case MethodHaversine:
		return DistanceHaversine(a, b, e), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidValue, m)
}

const (
	vincentyTolerance     = 1e-12
	vincentyMaxIterations = 200
)

// Haversine solves the inverse problem on a sphere with the mean radius of
// e. It is fast and accurate to about 0.5%.
func Haversine(a, b LatLong, e Ellipsoid) Geodesic {
	phi1, phi2 := float64(a.Lat), float64(b.Lat)
	dPhi := phi2 - phi1
	dLambda := float64(b.Lon - a.Lon)

	sinDPhi := math.Sin(dPhi / 2)
	sinDLambda := math.Sin(dLambda / 2)
	h := sinDPhi*sinDPhi + math.Cos(phi1)*math.Cos(phi2)*sinDLambda*sinDLambda
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	g := Geodesic{Distance: Distance(float64(e.MeanRadius()) * c)}
	if c == 0 {
		return g
	}
	g.InitialBearing = sphericalBearing(a, b)
	g.FinalBearing = (sphericalBearing(b, a) + math.Pi).Wrap360()
	return g
}

// sphericalBearing is the initial great circle bearing from a to b.
func sphericalBearing(a, b LatLong) Angle {
	sinPhi1, cosPhi1 := math.Sincos(float64(a.Lat))
	sinPhi2, cosPhi2 := math.Sincos(float64(b.Lat))
	sinDLambda, cosDLambda := math.Sincos(float64(b.Lon - a.Lon))
	y := sinDLambda * cosPhi2
	x := cosPhi1*sinPhi2 - sinPhi1*cosPhi2*cosDLambda
	return Angle(math.Atan2(y, x)).Wrap360()
}

// DistanceHaversine returns the great circle distance between a and b on a
// sphere with the mean radius of e.
func DistanceHaversine(a, b LatLong, e Ellipsoid) Distance {
	return Haversine(a, b, e).Distance
}

// Vincenty solves the inverse problem on e with Vincenty's formulae. Nearly
// antipodal points, for which the iteration does not converge, fail with
// ErrConvergence; Haversine still gives an answer for them.
func Vincenty(p1, p2 LatLong, e Ellipsoid) (Geodesic, error) {
	a := e.a
	f := e.f
	b := float64(e.SemiMinorAxis())

	L := float64((p2.Lon - p1.Lon).Wrap180())
	tanU1 := (1 - f) * math.Tan(float64(p1.Lat))
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	tanU2 := (1 - f) * math.Tan(float64(p2.Lat))
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	var (
		sinLambda, cosLambda   float64
		sinSigma, cosSigma     float64
		sigma, sinAlpha        float64
		cosSqAlpha, cos2SigmaM float64
	)
	lambda := L
	converged := false
	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda = math.Sincos(lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		if sinSigma == 0 {
			// coincident points
			return Geodesic{}, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			// equatorial line
			cos2SigmaM = 0
		}
		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaP := lambda
		lambda = L + (1-C)*f*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda) > math.Pi {
			return Geodesic{}, fmt.Errorf("%w: Vincenty inverse between %v and %v (nearly antipodal)", ErrConvergence, p1, p2)
		}
		if math.Abs(lambda-lambdaP) <= vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return Geodesic{}, fmt.Errorf("%w: Vincenty inverse after %d iterations", ErrConvergence, vincentyMaxIterations)
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
	s := b * A * (sigma - deltaSigma)

	alpha1 := math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
	alpha2 := math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)

	return Geodesic{
		Distance:       Distance(s),
		InitialBearing: Angle(alpha1).Wrap360(),
		FinalBearing:   Angle(alpha2).Wrap360(),
	}, nil
}

// DistanceVincenty returns the ellipsoidal distance between a and b on e.
func DistanceVincenty(a, b LatLong, e Ellipsoid) (Distance, error) {
	g, err := Vincenty(a, b, e)
	if err != nil {
		return 0, err
	}
	return g.Distance, nil
}

// InitialBearing returns the bearing at a of the geodesic from a to b on e.
func InitialBearing(a, b LatLong, e Ellipsoid) (Angle, error) {
	g, err := Vincenty(a, b, e)
	if err != nil {
		return 0, err
	}
	return g.InitialBearing, nil
}

// FinalBearing returns the bearing at b of the geodesic from a to b on e.
func FinalBearing(a, b LatLong, e Ellipsoid) (Angle, error) {
	g, err := Vincenty(a, b, e)
	if err != nil {
		return 0, err
	}
	return g.FinalBearing, nil
}

// DestinationVincenty solves the direct problem on e: the position reached
// by travelling distance from start on the given initial bearing, and the
// bearing on arrival. Bare numbers are degrees and metres. The height of
// start is carried over.
func DestinationVincenty[T AngleArg, U DistanceArg](start LatLong, bearing T, distance U, e Ellipsoid) (LatLong, Angle, error) {
	alpha1 := float64(AsAngle(bearing))
	s := float64(AsDistance(distance))
	if math.IsNaN(alpha1) || math.IsNaN(s) || math.IsInf(s, 0) {
		return LatLong{}, 0, fmt.Errorf("%w: bearing %v distance %v", ErrInvalidValue, alpha1, s)
	}

	a := e.a
	f := e.f
	b := float64(e.SemiMinorAxis())

	sinAlpha1, cosAlpha1 := math.Sincos(alpha1)
	tanU1 := (1 - f) * math.Tan(float64(start.Lat))
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := s / (b * A)
	var sinSigma, cosSigma, cos2SigmaM float64
	converged := false
	for i := 0; i < vincentyMaxIterations; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sincos(sigma)
		deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		sigmaP := sigma
		sigma = s/(b*A) + deltaSigma
		if math.Abs(sigma-sigmaP) <= vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return LatLong{}, 0, fmt.Errorf("%w: Vincenty direct after %d iterations", ErrConvergence, vincentyMaxIterations)
	}
	cos2SigmaM = math.Cos(2*sigma1 + sigma)
	sinSigma, cosSigma = math.Sincos(sigma)

	x := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	phi2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1, (1-f)*math.Sqrt(sinAlpha*sinAlpha+x*x))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
	L := lambda - (1-C)*f*sinAlpha*
		(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	alpha2 := math.Atan2(sinAlpha, -x)

	dest := latLongRadians(phi2, float64(start.Lon)+L, start.Height)
	return dest, Angle(alpha2).Wrap360(), nil
}

// DestinationHaversine returns the position reached by travelling distance
// along a great circle from start on the given initial bearing, on a sphere
// with the mean radius of e. Bare numbers are degrees and metres.
func DestinationHaversine[T AngleArg, U DistanceArg](start LatLong, bearing T, distance U, e Ellipsoid) LatLong {
	theta := float64(AsAngle(bearing))
	delta := float64(AsDistance(distance)) / float64(e.MeanRadius())

	sinPhi1, cosPhi1 := math.Sincos(float64(start.Lat))
	sinDelta, cosDelta := math.Sincos(delta)
	sinTheta, cosTheta := math.Sincos(theta)

	sinPhi2 := sinPhi1*cosDelta + cosPhi1*sinDelta*cosTheta
	phi2 := math.Asin(math.Max(-1, math.Min(1, sinPhi2)))
	lambda2 := float64(start.Lon) + math.Atan2(sinTheta*sinDelta*cosPhi1, cosDelta-sinPhi1*sinPhi2)
	return latLongRadians(phi2, lambda2, start.Height)
}

// Midpoint returns the point half way along the great circle between a and
// b, found by averaging their unit vectors. The height is the mean of the two
// heights. Antipodal points have no unique midpoint and fail with
// ErrInvalidValue.
func Midpoint(a, b LatLong) (LatLong, error) {
	l, err := GeographicCentre(a, b)
	if err != nil {
		return LatLong{}, fmt.Errorf("midpoint of %v and %v: %w", a, b, err)
	}
	return l, nil
}

// GeographicCentre returns the centre of the given positions on the sphere:
// the normalized mean of their unit vectors. The height is the mean height.
func GeographicCentre(points ...LatLong) (LatLong, error) {
	if len(points) == 0 {
		return LatLong{}, fmt.Errorf("%w: no points", ErrInvalidValue)
	}
	var sum r3.Vector
	var height float64
	for _, p := range points {
		sum = sum.Add(p.Point().Vector)
		height += float64(p.Height)
	}
	if sum.Norm() < 1e-12*float64(len(points)) {
		return LatLong{}, fmt.Errorf("%w: points cancel out, centre undefined", ErrInvalidValue)
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return latLongRadians(float64(ll.Lat), float64(ll.Lng), Distance(height/float64(len(points)))), nil
}
