package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tzneal/geodesy"
	"github.com/tzneal/geodesy/internal/config"
	"github.com/tzneal/geodesy/internal/geojson"

	"github.com/rs/zerolog/log"
)

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", geodesy.ErrInvalidValue, name, s)
	}
	return v, nil
}

// parseLatLong reads a position from decimal or DMS angles and an optional
// height in metres.
func parseLatLong(lat, lon, height string) (geodesy.LatLong, error) {
	la, err := geodesy.ParseDMS(lat)
	if err != nil {
		return geodesy.LatLong{}, fmt.Errorf("latitude: %w", err)
	}
	lo, err := geodesy.ParseDMS(lon)
	if err != nil {
		return geodesy.LatLong{}, fmt.Errorf("longitude: %w", err)
	}
	h := 0.0
	if height != "" {
		if h, err = parseNumber("height", height); err != nil {
			return geodesy.LatLong{}, err
		}
	}
	return geodesy.NewLatLong(la, lo, h)
}

type distanceCommand struct {
	Args struct {
		Lat1 string `positional-arg-name:"LAT1"`
		Lon1 string `positional-arg-name:"LON1"`
		Lat2 string `positional-arg-name:"LAT2"`
		Lon2 string `positional-arg-name:"LON2"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *distanceCommand) Execute([]string) error {
	from, err := parseLatLong(c.Args.Lat1, c.Args.Lon1, "")
	if err != nil {
		return err
	}
	to, err := parseLatLong(c.Args.Lat2, c.Args.Lon2, "")
	if err != nil {
		return err
	}

	var g geodesy.Geodesic
	switch c.app.method {
	case geodesy.MethodHaversine:
		g = geodesy.Haversine(from, to, c.app.ellipsoid())
	default:
		if g, err = geodesy.Vincenty(from, to, c.app.ellipsoid()); err != nil {
			return err
		}
	}

	return c.app.print(distanceResult{
		Method:         c.app.method.String(),
		Distance:       g.Distance.In(c.app.distanceUnit),
		Unit:           c.app.distanceUnit.Symbol(),
		InitialBearing: g.InitialBearing.Degrees(),
		FinalBearing:   g.FinalBearing.Degrees(),
	})
}

type destinationCommand struct {
	GeoJSON bool `short:"g" long:"geojson" description:"Emit the destination as a GeoJSON point feature"`
	Args    struct {
		Lat      string `positional-arg-name:"LAT"`
		Lon      string `positional-arg-name:"LON"`
		Bearing  string `positional-arg-name:"BEARING"`
		Distance string `positional-arg-name:"DISTANCE"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *destinationCommand) Execute([]string) error {
	start, err := parseLatLong(c.Args.Lat, c.Args.Lon, "")
	if err != nil {
		return err
	}
	bearing, err := geodesy.ParseDMS(c.Args.Bearing)
	if err != nil {
		return fmt.Errorf("bearing: %w", err)
	}
	v, err := parseNumber("distance", c.Args.Distance)
	if err != nil {
		return err
	}
	distance, err := geodesy.NewDistance(v, c.app.distanceUnit)
	if err != nil {
		return err
	}

	var dest geodesy.LatLong
	r := destinationResult{Method: c.app.method.String()}
	switch c.app.method {
	case geodesy.MethodHaversine:
		dest = geodesy.DestinationHaversine(start, bearing, distance, c.app.ellipsoid())
	default:
		var final geodesy.Angle
		if dest, final, err = geodesy.DestinationVincenty(start, bearing, distance, c.app.ellipsoid()); err != nil {
			return err
		}
		deg := final.Degrees()
		r.FinalBearing = &deg
	}
	r.Position = newPosition(dest)
	if !c.GeoJSON {
		return c.app.print(r)
	}

	properties := map[string]interface{}{
		"datum":  c.app.datum.String(),
		"method": r.Method,
		"height": r.Position.Height,
	}
	if r.FinalBearing != nil {
		properties["final_bearing"] = *r.FinalBearing
	}
	return c.app.encode(geojson.NewFeatureCollection(geojson.Point(dest, properties)))
}

type ecefCommand struct {
	Args struct {
		Lat    string `positional-arg-name:"LAT" required:"yes"`
		Lon    string `positional-arg-name:"LON" required:"yes"`
		Height string `positional-arg-name:"HEIGHT"`
	} `positional-args:"yes"`

	app *app
}

func (c *ecefCommand) Execute([]string) error {
	l, err := parseLatLong(c.Args.Lat, c.Args.Lon, c.Args.Height)
	if err != nil {
		return err
	}
	p := geodesy.LatLongToECEF(l, c.app.ellipsoid())
	return c.app.print(ecefResult{X: p.X.Metres(), Y: p.Y.Metres(), Z: p.Z.Metres()})
}

type latLongCommand struct {
	Args struct {
		X string `positional-arg-name:"X"`
		Y string `positional-arg-name:"Y"`
		Z string `positional-arg-name:"Z"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *latLongCommand) Execute([]string) error {
	var xyz [3]float64
	for i, s := range []string{c.Args.X, c.Args.Y, c.Args.Z} {
		v, err := parseNumber("coordinate", s)
		if err != nil {
			return err
		}
		xyz[i] = v
	}
	l, err := geodesy.ECEFToLatLong(geodesy.NewECEF(xyz[0], xyz[1], xyz[2]), c.app.ellipsoid())
	if err != nil {
		return err
	}
	return c.app.print(newPositionResult(c.app.datum, l))
}

func newPositionResult(d geodesy.Datum, l geodesy.LatLong) positionResult {
	return positionResult{Datum: d.String(), Position: newPosition(l), DMS: l.FormatDMS()}
}

type utmCommand struct {
	Zone int `short:"z" long:"zone" description:"Force a UTM zone within one of the natural zone"`
	Args struct {
		Lat string `positional-arg-name:"LAT"`
		Lon string `positional-arg-name:"LON"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *utmCommand) Execute([]string) error {
	l, err := parseLatLong(c.Args.Lat, c.Args.Lon, "")
	if err != nil {
		return err
	}

	var u geodesy.UTM
	if c.Zone != 0 {
		conv, err := geodesy.NewUTMConverter(c.app.ellipsoid())
		if err != nil {
			return err
		}
		u, err = conv.ConvertFromGeodetic(l, c.Zone)
		if err != nil {
			return err
		}
	} else if u, err = geodesy.LatLongToUTM(l, c.app.ellipsoid()); err != nil {
		return err
	}
	return c.app.print(newUTMResult(u))
}

func newUTMResult(u geodesy.UTM) utmResult {
	return utmResult{
		Zone:       u.LongitudeZone,
		Band:       string(u.LatitudeZone),
		Hemisphere: u.Hemisphere().String(),
		Easting:    u.Easting,
		Northing:   u.Northing,
	}
}

type fromUTMCommand struct {
	Args struct {
		Coordinate []string `positional-arg-name:"COORDINATE" required:"1"`
	} `positional-args:"yes"`

	app *app
}

func (c *fromUTMCommand) Execute([]string) error {
	u, err := geodesy.ParseUTM(strings.Join(c.Args.Coordinate, " "))
	if err != nil {
		return err
	}
	l, err := geodesy.UTMToLatLong(u, c.app.ellipsoid())
	if err != nil {
		return err
	}
	return c.app.print(newPositionResult(c.app.datum, l))
}

type datumListCommand struct {
	app *app
}

func (c *datumListCommand) Execute([]string) error {
	var r datumListResult
	for _, name := range geodesy.DatumNames() {
		d, err := geodesy.LookupDatum(name, "")
		if err != nil {
			return err
		}
		regions, err := geodesy.RegionNamesForDatum(name)
		if err != nil {
			return err
		}
		r.Datums = append(r.Datums, datumInfo{
			Name:      d.Name(),
			FullName:  d.FullName(),
			Ellipsoid: d.Ellipsoid().Name(),
			Regions:   regions,
			Default:   d.Region(),
		})
	}
	return c.app.print(r)
}

type datumConvertCommand struct {
	From       string `long:"from"        description:"Source datum (defaults to the configured datum)"`
	FromRegion string `long:"from-region" description:"Source datum region"`
	To         string `long:"to"          description:"Target datum" default:"WGS84"`
	ToRegion   string `long:"to-region"   description:"Target datum region"`
	Args       struct {
		Lat    string `positional-arg-name:"LAT" required:"yes"`
		Lon    string `positional-arg-name:"LON" required:"yes"`
		Height string `positional-arg-name:"HEIGHT"`
	} `positional-args:"yes"`

	app *app
}

func (c *datumConvertCommand) Execute([]string) error {
	from := c.app.datum
	if c.From != "" {
		var err error
		if from, err = geodesy.LookupDatum(c.From, c.FromRegion); err != nil {
			return err
		}
	}
	to, err := geodesy.LookupDatum(c.To, c.ToRegion)
	if err != nil {
		return err
	}
	l, err := parseLatLong(c.Args.Lat, c.Args.Lon, c.Args.Height)
	if err != nil {
		return err
	}

	out, err := geodesy.ConvertDatum(l, from, to)
	if err != nil {
		return err
	}
	log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("Datum converted")
	return c.app.print(newPositionResult(to, out))
}

type regionCommand struct {
	GeoJSON bool `short:"g" long:"geojson" description:"Emit the region as a GeoJSON polygon feature"`
	Args    struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *regionCommand) Execute([]string) error {
	region, err := config.LoadRegion(c.Args.File)
	if err != nil {
		return err
	}
	log.Debug().Str("file", c.Args.File).Int("nodes", region.Len()).Msg("Region loaded")

	e := c.app.ellipsoid()
	perimeter, err := region.Perimeter(e, c.app.method)
	if err != nil {
		return err
	}
	centre, err := region.GeographicCentrePoint()
	if err != nil {
		return err
	}
	r := regionResult{
		Nodes:        region.Len(),
		Method:       c.app.method.String(),
		Perimeter:    perimeter.In(c.app.distanceUnit),
		DistanceUnit: c.app.distanceUnit.Symbol(),
		PlanarArea:   region.PlanarArea(e).In(c.app.areaUnit),
		SurfaceArea:  region.SurfaceArea(e).In(c.app.areaUnit),
		AreaUnit:     c.app.areaUnit.Symbol(),
		Centre:       newPosition(centre),
	}
	if !c.GeoJSON {
		return c.app.print(r)
	}

	feature, err := geojson.Polygon(region, map[string]interface{}{
		"datum":         c.app.datum.String(),
		"perimeter":     r.Perimeter,
		"distance_unit": r.DistanceUnit,
		"surface_area":  r.SurfaceArea,
		"area_unit":     r.AreaUnit,
	})
	if err != nil {
		return err
	}
	return c.app.encode(geojson.NewFeatureCollection(feature))
}
