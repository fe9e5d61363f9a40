package main

import (
	"fmt"
	"strings"

	"github.com/tzneal/geodesy"
	"github.com/tzneal/geodesy/internal/geojson"
)

// result is a command result. It prints as text or is encoded as JSON or
// YAML through its struct tags.
type result interface {
	text() string
}

func (a *app) print(r result) error {
	if a.opts.Format == "" || a.opts.Format == "text" {
		_, err := fmt.Fprintln(a.out, r.text())
		return err
	}
	return a.encode(r)
}

func (a *app) encode(v interface{}) error {
	format := a.opts.Format
	if format == "text" {
		format = "json"
	}
	data, err := geojson.Marshal(v, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, strings.TrimRight(string(data), "\n"))
	return err
}

type position struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Height    float64 `json:"height" yaml:"height"`
}

func newPosition(l geodesy.LatLong) position {
	return position{Latitude: l.Lat.Degrees(), Longitude: l.Lon.Degrees(), Height: l.Height.Metres()}
}

func (p position) String() string {
	return fmt.Sprintf("%.7f %.7f %.3f", p.Latitude, p.Longitude, p.Height)
}

type distanceResult struct {
	Method         string  `json:"method" yaml:"method"`
	Distance       float64 `json:"distance" yaml:"distance"`
	Unit           string  `json:"unit" yaml:"unit"`
	InitialBearing float64 `json:"initial_bearing" yaml:"initial_bearing"`
	FinalBearing   float64 `json:"final_bearing" yaml:"final_bearing"`
}

func (r distanceResult) text() string {
	return fmt.Sprintf("%.3f %s initial %.6f° final %.6f°", r.Distance, r.Unit, r.InitialBearing, r.FinalBearing)
}

type destinationResult struct {
	Method       string   `json:"method" yaml:"method"`
	Position     position `json:"position" yaml:"position"`
	FinalBearing *float64 `json:"final_bearing,omitempty" yaml:"final_bearing,omitempty"`
}

func (r destinationResult) text() string {
	if r.FinalBearing == nil {
		return r.Position.String()
	}
	return fmt.Sprintf("%s final %.6f°", r.Position, *r.FinalBearing)
}

type ecefResult struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (r ecefResult) text() string {
	return fmt.Sprintf("%.4f %.4f %.4f", r.X, r.Y, r.Z)
}

type positionResult struct {
	Datum    string   `json:"datum" yaml:"datum"`
	Position position `json:"position" yaml:"position"`
	DMS      string   `json:"dms" yaml:"dms"`
}

func (r positionResult) text() string {
	return fmt.Sprintf("%s (%s)", r.Position, r.DMS)
}

type utmResult struct {
	Zone       int     `json:"zone" yaml:"zone"`
	Band       string  `json:"band" yaml:"band"`
	Hemisphere string  `json:"hemisphere" yaml:"hemisphere"`
	Easting    float64 `json:"easting" yaml:"easting"`
	Northing   float64 `json:"northing" yaml:"northing"`
}

func (r utmResult) text() string {
	return fmt.Sprintf("%d%s %.3f %.3f", r.Zone, r.Band, r.Easting, r.Northing)
}

type datumInfo struct {
	Name      string   `json:"name" yaml:"name"`
	FullName  string   `json:"full_name" yaml:"full_name"`
	Ellipsoid string   `json:"ellipsoid" yaml:"ellipsoid"`
	Regions   []string `json:"regions" yaml:"regions"`
	Default   string   `json:"default_region" yaml:"default_region"`
}

type datumListResult struct {
	Datums []datumInfo `json:"datums" yaml:"datums"`
}

func (r datumListResult) text() string {
	var sb strings.Builder
	for i, d := range r.Datums {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-12s %-20s %s [%s]", d.Name, d.Ellipsoid, d.FullName, strings.Join(d.Regions, ", "))
	}
	return sb.String()
}

type regionResult struct {
	Nodes        int      `json:"nodes" yaml:"nodes"`
	Method       string   `json:"method" yaml:"method"`
	Perimeter    float64  `json:"perimeter" yaml:"perimeter"`
	DistanceUnit string   `json:"distance_unit" yaml:"distance_unit"`
	PlanarArea   float64  `json:"planar_area" yaml:"planar_area"`
	SurfaceArea  float64  `json:"surface_area" yaml:"surface_area"`
	AreaUnit     string   `json:"area_unit" yaml:"area_unit"`
	Centre       position `json:"centre" yaml:"centre"`
}

func (r regionResult) text() string {
	return fmt.Sprintf("nodes        %d\nperimeter    %.3f %s\nplanar area  %.3f %s\nsurface area %.3f %s\ncentre       %s",
		r.Nodes, r.Perimeter, r.DistanceUnit, r.PlanarArea, r.AreaUnit, r.SurfaceArea, r.AreaUnit, r.Centre)
}
