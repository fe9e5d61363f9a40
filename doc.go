// Package geodesy converts and measures geodetic positions.
//
// Positions are held as LatLong values (latitude, longitude and height on a
// reference Ellipsoid) and can be converted to geocentric ECEF coordinates,
// to UTM grid coordinates and between datums with seven parameter Helmert
// transforms. Distances and bearings are solved with Vincenty's formulae on
// the ellipsoid or with the Haversine formula on a sphere.
//
//	liverpool, _ := geodesy.NewLatLong(53.408630, -2.991746, 0.0)
//	london, _ := geodesy.NewLatLong(51.516481, -0.128649, 0.0)
//	g, err := geodesy.Vincenty(liverpool, london, geodesy.WGS84Ellipsoid)
//
// Every value type is immutable apart from Region, whose node editors work
// through a pointer. Failures wrap one of the package's sentinel errors.
package geodesy
