package geodesy_test

import (
	"errors"
	"testing"

	"github.com/tzneal/geodesy"
)

func britishNationalGrid(t *testing.T) *geodesy.TransverseMercator {
	t.Helper()
	airy, err := geodesy.LookupEllipsoid("Airy1830")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tm, err := geodesy.NewTransverseMercator(airy, geodesy.Degrees(-2), geodesy.Degrees(49),
		geodesy.Metres(400000), geodesy.Metres(-100000), 0.9996012717)
	if err != nil {
		t.Fatalf("error creating transverse mercator: %s", err)
	}
	return tm
}

func TestTransverseMercatorNationalGrid(t *testing.T) {
	tm := britishNationalGrid(t)

	// Ordnance Survey worked example: 52°39'27.2531"N 1°43'4.5177"E
	lat := 52 + 39.0/60 + 27.2531/3600
	lon := 1 + 43.0/60 + 4.5177/3600
	l, err := geodesy.NewLatLong(lat, lon, 0.0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	g, err := tm.ConvertFromGeodetic(l)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !near(g.Easting, 651409.903, 1e-3) || !near(g.Northing, 313177.270, 1e-3) {
		t.Fatalf("expected E 651409.903 N 313177.270, got %+v", g)
	}

	back, err := tm.ConvertToGeodetic(g)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !near(back.Lat.Degrees(), lat, 1e-9) || !near(back.Lon.Degrees(), lon, 1e-9) {
		t.Fatalf("expected %v, %v, got %s", lat, lon, back)
	}

	origin, err := geodesy.NewLatLong(49.0, -2.0, 0.0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	g, err = tm.ConvertFromGeodetic(origin)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !near(g.Easting, 400000, 1e-6) || !near(g.Northing, -100000, 1e-6) {
		t.Fatalf("expected the true origin at the false origin offsets, got %+v", g)
	}
}

func TestTransverseMercatorLimits(t *testing.T) {
	tm := britishNationalGrid(t)
	far, _ := geodesy.NewLatLong(0.0, 90.0, 0.0)
	if _, err := tm.ConvertFromGeodetic(far); !errors.Is(err, geodesy.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := tm.ConvertToGeodetic(geodesy.GridCoord{Easting: 3e7, Northing: 0}); !errors.Is(err, geodesy.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	e := geodesy.WGS84Ellipsoid
	if _, err := geodesy.NewTransverseMercator(e, 0, geodesy.Degrees(91), 0, 0, 1); !errors.Is(err, geodesy.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for the origin latitude, got %v", err)
	}
	if _, err := geodesy.NewTransverseMercator(e, 0, 0, 0, 0, 20); !errors.Is(err, geodesy.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for the scale factor, got %v", err)
	}
	if _, err := geodesy.NewTransverseMercator(geodesy.Ellipsoid{}, 0, 0, 0, 0, 1); !errors.Is(err, geodesy.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for a zero ellipsoid, got %v", err)
	}
}
