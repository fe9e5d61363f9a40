package geodesy

import "fmt"

// WGS84Ellipsoid is the World Geodetic System 1984 reference ellipsoid.
var WGS84Ellipsoid Ellipsoid

// WGS84 is the World Geodetic System 1984 datum, the pivot of every datum
// conversion.
var WGS84 Datum

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTMConverter

func init() {
	var err error
	WGS84Ellipsoid, err = LookupEllipsoid("WGS84")
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
	WGS84, err = LookupDatum("WGS84", "")
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 datum: %s", err))
	}
	DefaultUTMConverter, err = NewUTMConverter(WGS84Ellipsoid)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
}
