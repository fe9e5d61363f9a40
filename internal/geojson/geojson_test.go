package geojson_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tzneal/geodesy"
	"github.com/tzneal/geodesy/internal/geojson"
)

func latLong(t *testing.T, lat, lon float64) geodesy.LatLong {
	t.Helper()
	l, err := geodesy.NewLatLong(lat, lon, 0.0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return l
}

func TestPolygon(t *testing.T) {
	// clockwise input
	r := geodesy.NewRegion(latLong(t, 0, 0), latLong(t, 1, 0), latLong(t, 1, 1), latLong(t, 0, 1))
	f, err := geojson.Polygon(r, map[string]interface{}{"name": "square"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if f.Type != "Feature" || f.Geometry.Type != "Polygon" || f.Properties["name"] != "square" {
		t.Fatalf("unexpected feature %+v", f)
	}

	rings, ok := f.Geometry.Coordinates.([][][]float64)
	if !ok || len(rings) != 1 {
		t.Fatalf("expected one ring, got %#v", f.Geometry.Coordinates)
	}
	ring := rings[0]
	if len(ring) != 5 {
		t.Fatalf("expected a closed ring of 5 positions, got %d", len(ring))
	}
	if ring[0][0] != ring[4][0] || ring[0][1] != ring[4][1] {
		t.Fatalf("ring is not closed: %v", ring)
	}
	// positions are [lon, lat] and the clockwise input is reversed
	if math.Abs(ring[0][0]-1) > 1e-12 || math.Abs(ring[0][1]) > 1e-12 {
		t.Fatalf("expected the ring to start at [1 0], got %v", ring[0])
	}
	var sum float64
	for i := 0; i < 4; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	if sum <= 0 {
		t.Fatalf("expected a counterclockwise ring, got %v", ring)
	}

	if _, err := geojson.Polygon(geodesy.NewRegion(latLong(t, 0, 0), latLong(t, 1, 1)), nil); !errors.Is(err, geodesy.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestPointAndMarshal(t *testing.T) {
	fc := geojson.NewFeatureCollection(geojson.Point(latLong(t, 53.5, -3), nil))
	data, err := geojson.Marshal(fc, "json")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Type       string                 `json:"type"`
			Properties map[string]interface{} `json:"properties"`
			Geometry   struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded.Type != "FeatureCollection" || len(decoded.Features) != 1 {
		t.Fatalf("unexpected collection %s", data)
	}
	p := decoded.Features[0]
	if p.Geometry.Type != "Point" || len(p.Geometry.Coordinates) != 2 ||
		math.Abs(p.Geometry.Coordinates[0]+3) > 1e-12 || math.Abs(p.Geometry.Coordinates[1]-53.5) > 1e-12 {
		t.Fatalf("unexpected point %s", data)
	}
	if p.Properties == nil {
		t.Fatalf("properties should encode as an object, got %s", data)
	}

	y, err := geojson.Marshal(geojson.NewFeatureCollection(), "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(string(y), "type: FeatureCollection") {
		t.Fatalf("unexpected YAML %q", y)
	}
	if _, err := geojson.Marshal(fc, "xml"); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}
