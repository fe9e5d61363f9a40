package geodesy

import "fmt"

// Triple is a three component value. It carries Cartesian coordinates
// (Triple[Distance]) and the rotation vector of a Helmert transform
// (Triple[Angle]).
type Triple[T any] struct {
	X, Y, Z T
}

// NewTriple returns the Triple (x, y, z).
func NewTriple[T any](x, y, z T) Triple[T] {
	return Triple[T]{X: x, Y: y, Z: z}
}

// MapTriple applies f to each component of t.
func MapTriple[T, U any](t Triple[T], f func(T) U) Triple[U] {
	return Triple[U]{X: f(t.X), Y: f(t.Y), Z: f(t.Z)}
}

// Components returns the components in X, Y, Z order.
func (t Triple[T]) Components() [3]T {
	return [3]T{t.X, t.Y, t.Z}
}

func (t Triple[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.X, t.Y, t.Z)
}
