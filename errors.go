package geodesy

import "errors"

// Errors returned by the package. Call sites wrap them with context, so
// compare with errors.Is.
var (
	// ErrInvalidUnit is returned when a unit name is not recognized for the
	// measure being parsed.
	ErrInvalidUnit = errors.New("invalid unit")
	// ErrInvalidValue is returned for a magnitude outside the domain of the
	// operation, such as a negative semi-major axis.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownEllipsoid is returned when an ellipsoid name is not registered.
	ErrUnknownEllipsoid = errors.New("unknown ellipsoid")
	// ErrUnknownDatum is returned when a datum name is not registered.
	ErrUnknownDatum = errors.New("unknown datum")
	// ErrUnknownRegion is returned when a region is not valid for a datum.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrOutOfRange is returned when a coordinate or index is outside the
	// range an operation supports.
	ErrOutOfRange = errors.New("out of range")
	// ErrConvergence is returned when an iterative solution does not
	// converge within its iteration cap.
	ErrConvergence = errors.New("failed to converge")
)
