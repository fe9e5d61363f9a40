package geodesy_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tzneal/geodesy"
)

func TestDistanceUnits(t *testing.T) {
	tests := []struct {
		unit   geodesy.DistanceUnit
		metres float64
	}{
		{geodesy.Metre, 1},
		{geodesy.Kilometre, 1000},
		{geodesy.Mile, 1609.344},
		{geodesy.Yard, 0.9144},
		{geodesy.Foot, 0.3048},
		{geodesy.NauticalMile, 1852},
	}
	for _, tc := range tests {
		t.Run(tc.unit.String(), func(t *testing.T) {
			d, err := geodesy.NewDistance(2, tc.unit)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !near(d.Metres(), 2*tc.metres, 1e-9) {
				t.Fatalf("expected %v m, got %v", 2*tc.metres, d.Metres())
			}
			if !near(d.In(tc.unit), 2, 1e-12) {
				t.Fatalf("expected 2 %s back, got %v", tc.unit, d.In(tc.unit))
			}
			u, err := geodesy.ParseDistanceUnit(tc.unit.Symbol())
			if err != nil || u != tc.unit {
				t.Fatalf("expected symbol %q to parse to %s, got %s (%v)", tc.unit.Symbol(), tc.unit, u, err)
			}
		})
	}

	if _, err := geodesy.ParseDistanceUnit("cubits"); !errors.Is(err, geodesy.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
	if _, err := geodesy.NewDistance(math.Inf(1), geodesy.Metre); !errors.Is(err, geodesy.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if !math.IsNaN(geodesy.Metres(1).In(geodesy.DistanceUnit(99))) {
		t.Fatalf("expected NaN for an unknown unit")
	}
	if got := geodesy.Kilometres(1.5).String(); got != "1500.000 m" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestAreaUnits(t *testing.T) {
	tests := []struct {
		unit geodesy.AreaUnit
		m2   float64
	}{
		{geodesy.SquareMetre, 1},
		{geodesy.SquareKilometre, 1e6},
		{geodesy.Hectare, 1e4},
		{geodesy.SquareMile, 2589988.110336},
		{geodesy.Acre, 4046.8564224},
	}
	for _, tc := range tests {
		t.Run(tc.unit.String(), func(t *testing.T) {
			a, err := geodesy.NewArea(1, tc.unit)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !near(a.SquareMetres(), tc.m2, 1e-6) {
				t.Fatalf("expected %v m2, got %v", tc.m2, a.SquareMetres())
			}
			u, err := geodesy.ParseAreaUnit(tc.unit.String())
			if err != nil || u != tc.unit {
				t.Fatalf("expected %q to parse, got %s (%v)", tc.unit, u, err)
			}
		})
	}

	if got := geodesy.SquareMetres(2.5e6).In(geodesy.SquareKilometre); !near(got, 2.5, 1e-12) {
		t.Fatalf("expected 2.5 km2, got %v", got)
	}
	if _, err := geodesy.ParseAreaUnit("barn"); !errors.Is(err, geodesy.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestUnionArguments(t *testing.T) {
	if geodesy.AsAngle(90.0) != geodesy.Degrees(90) {
		t.Fatalf("bare angles should be degrees")
	}
	if geodesy.AsAngle(geodesy.Radians(1)) != geodesy.Radians(1) {
		t.Fatalf("Angle arguments should pass through")
	}
	if geodesy.AsDistance(12.5) != geodesy.Metres(12.5) {
		t.Fatalf("bare distances should be metres")
	}
	if geodesy.AsDistance(geodesy.Kilometres(1)) != geodesy.Metres(1000) {
		t.Fatalf("Distance arguments should pass through")
	}
}

func TestTriple(t *testing.T) {
	tr := geodesy.NewTriple(1.0, 2.0, 3.0)
	sq := geodesy.MapTriple(tr, func(v float64) float64 { return v * v })
	if sq.Components() != [3]float64{1, 4, 9} {
		t.Fatalf("unexpected components %v", sq.Components())
	}
	if got := tr.String(); got != "(1, 2, 3)" {
		t.Fatalf("unexpected string %q", got)
	}
}
