package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tzneal/geodesy"
	"github.com/tzneal/geodesy/internal/config"
	"github.com/tzneal/geodesy/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string `short:"c" long:"config"    env:"GEODESY_CONFIG"        description:"Path to configuration file" default:"geodesy.yaml"`
	Datum        string `short:"d" long:"datum"     env:"GEODESY_DATUM"         description:"Datum positions are given on"`
	Region       string `short:"r" long:"region"    env:"GEODESY_REGION"        description:"Datum region"`
	DistanceUnit string `short:"u" long:"unit"      env:"GEODESY_DISTANCE_UNIT" description:"Distance unit (m, km, mi, nmi, ...)"`
	AreaUnit     string `short:"a" long:"area-unit" env:"GEODESY_AREA_UNIT"     description:"Area unit (m2, km2, ha, ac, ...)"`
	Method       string `short:"m" long:"method"    env:"GEODESY_METHOD"        description:"Distance method" choice:"vincenty" choice:"haversine"`
	Format       string `short:"f" long:"format"    env:"GEODESY_FORMAT"        description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
}

// app holds the parsed options and the settings resolved from them and the
// configuration file.
type app struct {
	opts Options
	out  io.Writer

	datum        geodesy.Datum
	distanceUnit geodesy.DistanceUnit
	areaUnit     geodesy.AreaUnit
	method       geodesy.Method
}

func main() {
	// values in .env feed the env defaults of the options
	_ = godotenv.Load(".env")

	a := &app{out: os.Stdout}
	parser := newParser(a, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			os.Exit(0)
		}
		a.opts.Logger.Setup()
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func newParser(a *app, options flags.Options) *flags.Parser {
	parser := flags.NewParser(&a.opts, options)
	parser.CommandHandler = a.handle

	mustAddCommand(parser.Command, "distance", "Distance and bearings between two positions",
		"Computes the distance and the initial and final bearings between two positions. "+
			"Angles are decimal degrees or DMS; use hemisphere letters (2.99W) for negative values.",
		&distanceCommand{app: a})
	mustAddCommand(parser.Command, "destination", "Position reached from a start, bearing and distance",
		"Solves the direct geodesic problem. The distance is in the configured unit.",
		&destinationCommand{app: a})
	mustAddCommand(parser.Command, "ecef", "Convert a geodetic position to ECEF",
		"Converts latitude, longitude and height to Earth-centred Earth-fixed coordinates in metres.",
		&ecefCommand{app: a})
	mustAddCommand(parser.Command, "latlong", "Convert ECEF coordinates to a geodetic position",
		"Converts Earth-centred Earth-fixed coordinates in metres to latitude, longitude and height.",
		&latLongCommand{app: a})
	mustAddCommand(parser.Command, "utm", "Convert a geodetic position to UTM",
		"Converts latitude and longitude to a UTM coordinate on the datum's ellipsoid.",
		&utmCommand{app: a})
	mustAddCommand(parser.Command, "fromutm", "Convert a UTM coordinate to a geodetic position",
		"Converts a UTM coordinate such as \"30U 500000 5700000\" to latitude and longitude.",
		&fromUTMCommand{app: a})
	mustAddCommand(parser.Command, "region", "Measure a region read from a file",
		"Reads a YAML or JSON list of [lat, lon] nodes and prints its perimeter, areas and centre.",
		&regionCommand{app: a})

	datum := mustAddCommand(parser.Command, "datum", "Datum registry and conversions",
		"Lists the registered datums or converts positions between them.", &struct{}{})
	mustAddCommand(datum, "list", "List registered datums",
		"Lists the registered datums with their ellipsoids and regions.", &datumListCommand{app: a})
	mustAddCommand(datum, "convert", "Convert a position between datums",
		"Re-expresses a position given on one datum as a position on another.", &datumConvertCommand{app: a})

	return parser
}

func mustAddCommand(parent *flags.Command, name, short, long string, data interface{}) *flags.Command {
	cmd, err := parent.AddCommand(name, short, long, data)
	if err != nil {
		panic(fmt.Sprintf("error adding command %s: %s", name, err))
	}
	return cmd
}

// handle runs before every command: it configures logging and resolves the
// settings, with flags taking precedence over the configuration file.
func (a *app) handle(command flags.Commander, args []string) error {
	a.opts.Logger.Setup()
	if command == nil {
		return nil
	}

	cfg, err := config.Load(a.opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.opts.Datum != "" {
		cfg.Datum = a.opts.Datum
		cfg.Region = a.opts.Region
	} else if a.opts.Region != "" {
		cfg.Region = a.opts.Region
	}
	if a.opts.DistanceUnit != "" {
		cfg.DistanceUnit = a.opts.DistanceUnit
	}
	if a.opts.AreaUnit != "" {
		cfg.AreaUnit = a.opts.AreaUnit
	}
	if a.opts.Method != "" {
		cfg.Method = a.opts.Method
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate has checked every name
	a.datum, _ = cfg.LookupDatum()
	a.distanceUnit, _ = geodesy.ParseDistanceUnit(cfg.DistanceUnit)
	a.areaUnit, _ = geodesy.ParseAreaUnit(cfg.AreaUnit)
	a.method, _ = geodesy.ParseMethod(cfg.Method)

	log.Debug().
		Str("datum", a.datum.String()).
		Str("distance_unit", a.distanceUnit.String()).
		Str("area_unit", a.areaUnit.String()).
		Str("method", a.method.String()).
		Msg("Settings resolved")

	return command.Execute(args)
}

func (a *app) ellipsoid() geodesy.Ellipsoid {
	return a.datum.Ellipsoid()
}
