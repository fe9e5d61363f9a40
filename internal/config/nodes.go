package config

import (
	"fmt"
	"os"

	"github.com/tzneal/geodesy"

	"gopkg.in/yaml.v3"
)

// LoadRegion reads a region from a YAML or JSON file holding a list of
// [lat, lon] or [lat, lon, height] nodes in degrees and metres.
func LoadRegion(path string) (*geodesy.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegion(data)
}

// ParseRegion decodes a list of nodes. JSON input is accepted as YAML.
func ParseRegion(data []byte) (*geodesy.Region, error) {
	var raw [][]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse nodes: %w", err)
	}

	r := geodesy.NewRegion()
	for i, n := range raw {
		var height float64
		switch len(n) {
		case 2:
		case 3:
			height = n[2]
		default:
			return nil, fmt.Errorf("%w: node %d has %d values, want 2 or 3", geodesy.ErrInvalidValue, i, len(n))
		}
		l, err := geodesy.NewLatLong(n[0], n[1], height)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		r.AddNode(l)
	}
	return r, nil
}
