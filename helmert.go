package geodesy

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Helmert holds the seven parameters of a Bursa-Wolf similarity transform
// between two geocentric frames, in the position vector convention:
//
//	x' = x + tx - rz*y + ry*z + s*x
//	y' = y + ty + rz*x - rx*z + s*y
//	z' = z + tz - ry*x + rx*y + s*z
//
// with s = ScalePPM * 1e-6. The rotations are assumed small enough for the
// linearized rotation matrix to hold, which is the case for datum shifts
// (a few arcseconds).
type Helmert struct {
	Translation Triple[Distance]
	Rotation    Triple[Angle]
	ScalePPM    float64
}

// NewHelmert returns the transform with translations in metres, rotations in
// arcseconds and scale in parts per million.
func NewHelmert(tx, ty, tz, rx, ry, rz, ppm float64) Helmert {
	arcsec := func(v float64) Angle { return Angle(v * angleUnits[ArcSecond].factor) }
	return Helmert{
		Translation: NewTriple(Metres(tx), Metres(ty), Metres(tz)),
		Rotation:    NewTriple(arcsec(rx), arcsec(ry), arcsec(rz)),
		ScalePPM:    ppm,
	}
}

// Apply transforms p from the source frame into the target frame. The
// linearized rotation is the cross product r × p.
func (h Helmert) Apply(p ECEF) ECEF {
	v := p.Vector()
	t := ECEF(h.Translation).Vector()
	r := r3.Vector{X: float64(h.Rotation.X), Y: float64(h.Rotation.Y), Z: float64(h.Rotation.Z)}
	s := h.ScalePPM * 1e-6

	return ECEFFromVector(v.Add(t).Add(v.Mul(s)).Add(r.Cross(v)))
}

// Invert returns the parameters of the reverse transform, obtained by
// negating all seven parameters. This is the first-order inverse: applying h
// and then h.Invert() returns the original point up to a residual of order
// (r² + s²)·|p| plus cross terms between the translation and the
// rotation/scale, about a centimetre for the OSGB36 parameters.
func (h Helmert) Invert() Helmert {
	return Helmert{
		Translation: MapTriple(h.Translation, func(d Distance) Distance { return -d }),
		Rotation:    MapTriple(h.Rotation, func(a Angle) Angle { return -a }),
		ScalePPM:    -h.ScalePPM,
	}
}

// IsIdentity reports whether the transform leaves every point unchanged.
func (h Helmert) IsIdentity() bool {
	return h == Helmert{}
}

func (h Helmert) String() string {
	return fmt.Sprintf("t=(%.4f, %.4f, %.4f) m r=(%.6f, %.6f, %.6f)\" s=%.6f ppm",
		float64(h.Translation.X), float64(h.Translation.Y), float64(h.Translation.Z),
		h.Rotation.X.In(ArcSecond), h.Rotation.Y.In(ArcSecond), h.Rotation.Z.In(ArcSecond),
		h.ScalePPM)
}
