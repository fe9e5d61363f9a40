// Package geojson builds GeoJSON documents from positions and regions.
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/tzneal/geodesy"

	"gopkg.in/yaml.v3"
)

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry represents the geometry of a feature. Coordinates is a
// []float64 position for a Point and a [][][]float64 list of rings for a
// Polygon, with every position in [Lon, Lat] order.
type Geometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// NewFeatureCollection returns a collection holding features.
func NewFeatureCollection(features ...Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

func position(l geodesy.LatLong) []float64 {
	return []float64{l.Lon.Degrees(), l.Lat.Degrees()}
}

// Point returns a Point feature at l.
func Point(l geodesy.LatLong, properties map[string]interface{}) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: "Point", Coordinates: position(l)},
		Properties: withProperties(properties),
	}
}

// Polygon returns a Polygon feature whose exterior ring is the boundary of r.
// The ring is closed by repeating the first node and wound counterclockwise.
func Polygon(r *geodesy.Region, properties map[string]interface{}) (Feature, error) {
	nodes := r.Nodes()
	if len(nodes) < 3 {
		return Feature{}, fmt.Errorf("%w: polygon needs at least 3 nodes, have %d", geodesy.ErrInvalidValue, len(nodes))
	}

	ring := make([][]float64, 0, len(nodes)+1)
	for _, n := range nodes {
		ring = append(ring, position(n))
	}
	if ringArea(ring) < 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	ring = append(ring, ring[0])

	return Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: "Polygon", Coordinates: [][][]float64{ring}},
		Properties: withProperties(properties),
	}, nil
}

// ringArea returns twice the signed planar area of an open ring, positive
// for counterclockwise winding.
func ringArea(ring [][]float64) float64 {
	var sum float64
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		sum += p[0]*q[1] - q[0]*p[1]
	}
	return sum
}

func withProperties(p map[string]interface{}) map[string]interface{} {
	if p == nil {
		return map[string]interface{}{}
	}
	return p
}

// Marshal encodes v as indented JSON, or as YAML when format is "yaml".
func Marshal(v interface{}, format string) ([]byte, error) {
	switch format {
	case "", "json":
		return json.MarshalIndent(v, "", "  ")
	case "yaml":
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
