package geodesy_test

import (
	"errors"
	"testing"

	"github.com/tzneal/geodesy"
)

func TestUTMRoundTrip(t *testing.T) {
	const latInc = 0.5
	const lngInc = 0.5
	for lng := -190.0; lng < 190; lng += lngInc {
		for lat := -90.0; lat <= 90; lat += latInc {
			geo, err := geodesy.NewLatLong(lat, lng, 0.0)
			if err != nil {
				t.Fatalf("unexpected error at %v, %v: %s", lat, lng, err)
			}
			uc, err := geodesy.LatLongToUTM(geo, geodesy.WGS84Ellipsoid)
			if lat < -80 || lat > 80 {
				if !errors.Is(err, geodesy.ErrOutOfRange) {
					t.Fatalf("expected ErrOutOfRange at %s, got %v", geo, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("expected no error at %s, got %s", geo, err)
			}
			geo2, err := geodesy.UTMToLatLong(uc, geodesy.WGS84Ellipsoid)
			if err != nil {
				t.Fatalf("expected no error in round trip, got one at %s (%s)", geo, err)
			}
			if d := geo.S2().Distance(geo2.S2()).Degrees(); d > 1e-6 {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestLatLongToUTM(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"equator origin", 0, 3, "31N 500000.000 0.000"},
		{"liverpool", 53.408630, -2.991746, "30U 500548.685 5917728.847"},
		{"sydney", -33.8568, 151.2153, "56H 334900.570 6252288.753"},
		{"southern norway", 60, 5, "32V 276979.926 6658157.202"},
		{"svalbard", 78, 10, "33X 384085.475 8663320.201"},
		{"southern limit", -80, -179, "1C 461235.942 1117747.830"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := geodesy.NewLatLong(tc.lat, tc.lon, 0.0)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			u, err := geodesy.LatLongToUTM(l, geodesy.WGS84Ellipsoid)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			want, err := geodesy.ParseUTM(tc.want)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if u.LongitudeZone != want.LongitudeZone || u.LatitudeZone != want.LatitudeZone ||
				!near(u.Easting, want.Easting, 1e-3) || !near(u.Northing, want.Northing, 1e-3) {
				t.Fatalf("expected %s, got %s", tc.want, u)
			}
		})
	}
}

func TestUTMHemisphere(t *testing.T) {
	tests := []struct {
		band byte
		want geodesy.Hemisphere
	}{
		{'C', geodesy.HemisphereSouth},
		{'M', geodesy.HemisphereSouth},
		{'N', geodesy.HemisphereNorth},
		{'X', geodesy.HemisphereNorth},
		{'I', geodesy.HemisphereInvalid},
		{'Z', geodesy.HemisphereInvalid},
	}
	for _, tc := range tests {
		u := geodesy.UTM{LongitudeZone: 30, LatitudeZone: tc.band}
		if got := u.Hemisphere(); got != tc.want {
			t.Fatalf("band %c: expected %s, got %s", tc.band, tc.want, got)
		}
	}
}

func TestParseUTM(t *testing.T) {
	u, err := geodesy.ParseUTM("30 u 500000 5700000.5")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := geodesy.UTM{Easting: 500000, Northing: 5700000.5, LongitudeZone: 30, LatitudeZone: 'U'}
	if u != want {
		t.Fatalf("expected %v, got %v", want, u)
	}
	if u.String() != "30U 500000.000 5700000.500" {
		t.Fatalf("unexpected string %q", u)
	}

	invalid := map[string]error{
		"":                      geodesy.ErrInvalidValue,
		"30U 500000":            geodesy.ErrInvalidValue,
		"XXU 500000 5700000":    geodesy.ErrInvalidValue,
		"30U east 5700000":      geodesy.ErrInvalidValue,
		"61U 500000 5700000":    geodesy.ErrOutOfRange,
		"30I 500000 5700000":    geodesy.ErrOutOfRange,
		"30U 50000 5700000":     geodesy.ErrOutOfRange,
		"30U 500000 -1":         geodesy.ErrOutOfRange,
		"30U 500000 10000000.1": geodesy.ErrOutOfRange,
	}
	for in, wantErr := range invalid {
		if _, err := geodesy.ParseUTM(in); !errors.Is(err, wantErr) {
			t.Fatalf("%q: expected %v, got %v", in, wantErr, err)
		}
	}
}

func TestUTMToLatLongValidation(t *testing.T) {
	tests := []struct {
		name string
		u    geodesy.UTM
	}{
		{"zone 0", geodesy.UTM{Easting: 500000, Northing: 0, LongitudeZone: 0, LatitudeZone: 'N'}},
		{"zone 61", geodesy.UTM{Easting: 500000, Northing: 0, LongitudeZone: 61, LatitudeZone: 'N'}},
		{"band O", geodesy.UTM{Easting: 500000, Northing: 0, LongitudeZone: 31, LatitudeZone: 'O'}},
		{"easting low", geodesy.UTM{Easting: 99999, Northing: 0, LongitudeZone: 31, LatitudeZone: 'N'}},
		{"easting high", geodesy.UTM{Easting: 900001, Northing: 0, LongitudeZone: 31, LatitudeZone: 'N'}},
		{"northing high", geodesy.UTM{Easting: 500000, Northing: 10000001, LongitudeZone: 31, LatitudeZone: 'N'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := geodesy.UTMToLatLong(tc.u, geodesy.WGS84Ellipsoid); !errors.Is(err, geodesy.ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestUTMZoneOverride(t *testing.T) {
	l, _ := geodesy.NewLatLong(53.408630, -2.991746, 0.0)
	u, err := geodesy.DefaultUTMConverter.ConvertFromGeodetic(l, 31)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if u.LongitudeZone != 31 {
		t.Fatalf("expected zone 31, got %d", u.LongitudeZone)
	}
	back, err := geodesy.DefaultUTMConverter.ConvertToGeodetic(u)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d := l.S2().Distance(back.S2()).Degrees(); d > 1e-6 {
		t.Fatalf("expected %s, got %s", l, back)
	}

	if _, err := geodesy.DefaultUTMConverter.ConvertFromGeodetic(l, 33); !errors.Is(err, geodesy.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := geodesy.NewUTMConverterWithOverride(geodesy.WGS84Ellipsoid, 61); !errors.Is(err, geodesy.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	conv, err := geodesy.NewUTMConverterWithOverride(geodesy.WGS84Ellipsoid, 29)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	u, err = conv.ConvertFromGeodetic(l, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if u.LongitudeZone != 29 {
		t.Fatalf("expected zone 29, got %d", u.LongitudeZone)
	}
}

func TestUTMOtherEllipsoid(t *testing.T) {
	airy, err := geodesy.LookupEllipsoid("Airy1830")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	conv, err := geodesy.NewUTMConverter(airy)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if conv.Ellipsoid() != airy {
		t.Fatalf("unexpected ellipsoid %v", conv.Ellipsoid())
	}
	l, _ := geodesy.NewLatLong(52.657570301933, 1.717921580332, 0.0)
	onAiry, err := geodesy.LatLongToUTM(l, airy)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	onWGS84, err := geodesy.LatLongToUTM(l, geodesy.WGS84Ellipsoid)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if near(onAiry.Northing, onWGS84.Northing, 1) {
		t.Fatalf("expected the ellipsoid to change the northing, got %s and %s", onAiry, onWGS84)
	}
	back, err := geodesy.UTMToLatLong(onAiry, airy)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d := l.S2().Distance(back.S2()).Degrees(); d > 1e-6 {
		t.Fatalf("expected %s, got %s", l, back)
	}
}

func TestUTMConverterSharing(t *testing.T) {
	airy, err := geodesy.LookupEllipsoid("Airy1830")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	c1, err := geodesy.UTMConverterFor(airy)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	c2, err := geodesy.UTMConverterFor(airy)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c1 != c2 {
		t.Fatalf("expected registered ellipsoids to share a converter")
	}
	if c, _ := geodesy.UTMConverterFor(geodesy.WGS84Ellipsoid); c != geodesy.DefaultUTMConverter {
		t.Fatalf("expected the default converter for WGS84")
	}

	custom, err := geodesy.NewEllipsoid("Airy1830", geodesy.Metres(6377563.396), 299.0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	c3, err := geodesy.UTMConverterFor(custom)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if c3 == c1 || c3.Ellipsoid() != custom {
		t.Fatalf("a user defined ellipsoid must get its own converter")
	}
}
