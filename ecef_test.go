package geodesy_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tzneal/geodesy"
)

func TestLatLongToECEF(t *testing.T) {
	e := geodesy.WGS84Ellipsoid
	a := e.SemiMajorAxis().Metres()
	b := e.SemiMinorAxis().Metres()

	tests := []struct {
		name                string
		lat, lon, h         float64
		wantX, wantY, wantZ float64
	}{
		{"origin", 0, 0, 0, a, 0, 0},
		{"east", 0, 90, 0, 0, a, 0},
		{"north pole", 90, 0, 0, 0, 0, b},
		{"south pole raised", -90, 0, 100, 0, 0, -b - 100},
		{"liverpool", 53.408630, -2.991746, 0, 3805070.1653, -198865.6196, 5097782.1853},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := geodesy.NewLatLong(tc.lat, tc.lon, tc.h)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			p := geodesy.LatLongToECEF(l, e)
			want := geodesy.NewECEF(tc.wantX, tc.wantY, tc.wantZ)
			if d := p.DistanceTo(want).Metres(); d > 1e-3 {
				t.Fatalf("expected %v, got %v (off by %v m)", want, p, d)
			}
		})
	}
}

func TestECEFRoundTrip(t *testing.T) {
	ellipsoids := []string{"WGS84", "Airy1830", "International1924", "Sphere"}
	for _, name := range ellipsoids {
		e, err := geodesy.LookupEllipsoid(name)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		for lat := -89.5; lat <= 89.5; lat += 4.5 {
			for lon := -179.0; lon <= 180; lon += 7 {
				for _, h := range []float64{-100, 0, 8848, 400000} {
					l, err := geodesy.NewLatLong(lat, lon, h)
					if err != nil {
						t.Fatalf("unexpected error: %s", err)
					}
					l2, err := geodesy.ECEFToLatLong(geodesy.LatLongToECEF(l, e), e)
					if err != nil {
						t.Fatalf("%s: expected no error in round trip, got one at %v (%s)", name, l, err)
					}
					if !near(l2.Lat.Degrees(), lat, 1e-9) || !near(l2.Lon.Degrees(), l.Lon.Degrees(), 1e-9) {
						t.Fatalf("%s: expected %v, got %v", name, l, l2)
					}
					if !near(l2.Height.Metres(), h, 1e-6) {
						t.Fatalf("%s: expected height %v, got %v", name, h, l2.Height)
					}
				}
			}
		}
	}
}

func TestECEFToLatLongPoles(t *testing.T) {
	e := geodesy.WGS84Ellipsoid
	b := e.SemiMinorAxis().Metres()
	l, err := geodesy.ECEFToLatLong(geodesy.NewECEF(0.0, 0.0, -b-50), e)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if l.Lat.Degrees() != -90 || l.Lon != 0 || !near(l.Height.Metres(), 50, 1e-6) {
		t.Fatalf("expected the south pole 50 m up, got %v", l)
	}

	for _, p := range []geodesy.ECEF{
		geodesy.NewECEF(math.NaN(), 0.0, 0.0),
		geodesy.NewECEF(math.Inf(1), 0.0, 0.0),
		geodesy.NewECEF(0.0, math.Inf(-1), 0.0),
		geodesy.NewECEF(0.0, 0.0, math.Inf(1)),
	} {
		if _, err := geodesy.ECEFToLatLong(p, e); !errors.Is(err, geodesy.ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue for %v, got %v", p, err)
		}
	}
}

func TestECEFVector(t *testing.T) {
	p := geodesy.NewECEF(geodesy.Metres(3), geodesy.Metres(4), geodesy.Metres(0))
	if p.Vector().Norm() != 5 {
		t.Fatalf("unexpected norm %v", p.Vector().Norm())
	}
	if geodesy.ECEFFromVector(p.Vector()) != p {
		t.Fatalf("vector round trip changed the point")
	}
	if p.Triple().Components() != [3]geodesy.Distance{3, 4, 0} {
		t.Fatalf("unexpected triple %v", p.Triple())
	}
}
