package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Region is a closed polygon of positions. The last node joins the first.
type Region struct {
	nodes []LatLong
}

// NewRegion returns a region with the given nodes in order.
func NewRegion(nodes ...LatLong) *Region {
	r := &Region{nodes: make([]LatLong, len(nodes))}
	copy(r.nodes, nodes)
	return r
}

// Len returns the number of nodes.
func (r *Region) Len() int { return len(r.nodes) }

// Nodes returns a copy of the nodes.
func (r *Region) Nodes() []LatLong {
	out := make([]LatLong, len(r.nodes))
	copy(out, r.nodes)
	return out
}

func (r *Region) checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: node index %d of %d", ErrOutOfRange, i, len(r.nodes))
	}
	return nil
}

// Node returns node i.
func (r *Region) Node(i int) (LatLong, error) {
	if err := r.checkIndex(i, len(r.nodes)); err != nil {
		return LatLong{}, err
	}
	return r.nodes[i], nil
}

// SetNode replaces node i.
func (r *Region) SetNode(i int, l LatLong) error {
	if err := r.checkIndex(i, len(r.nodes)); err != nil {
		return err
	}
	r.nodes[i] = l
	return nil
}

// InsertNode inserts l before node i. An index equal to Len appends.
func (r *Region) InsertNode(i int, l LatLong) error {
	if err := r.checkIndex(i, len(r.nodes)+1); err != nil {
		return err
	}
	r.nodes = append(r.nodes, LatLong{})
	copy(r.nodes[i+1:], r.nodes[i:])
	r.nodes[i] = l
	return nil
}

// RemoveNode deletes node i.
func (r *Region) RemoveNode(i int) error {
	if err := r.checkIndex(i, len(r.nodes)); err != nil {
		return err
	}
	r.nodes = append(r.nodes[:i], r.nodes[i+1:]...)
	return nil
}

// AddNode appends l.
func (r *Region) AddNode(l LatLong) {
	r.nodes = append(r.nodes, l)
}

// Perimeter returns the length of the closed boundary on e, measured with
// method m.
func (r *Region) Perimeter(e Ellipsoid, m Method) (Distance, error) {
	if len(r.nodes) < 2 {
		return 0, nil
	}
	var total Distance
	for i, a := range r.nodes {
		b := r.nodes[(i+1)%len(r.nodes)]
		d, err := m.Distance(a, b, e)
		if err != nil {
			return 0, fmt.Errorf("perimeter edge %d: %w", i, err)
		}
		total += d
	}
	return total, nil
}

// planarXY returns the nodes on an equirectangular plane in radians,
// longitudes unwrapped relative to the first node.
func (r *Region) planarXY() (xs, ys []float64, meanLat float64) {
	xs = make([]float64, len(r.nodes))
	ys = make([]float64, len(r.nodes))
	lon0 := r.nodes[0].Lon
	for i, n := range r.nodes {
		xs[i] = float64(lon0) + float64((n.Lon - lon0).Wrap180())
		ys[i] = float64(n.Lat)
		meanLat += ys[i]
	}
	return xs, ys, meanLat / float64(len(r.nodes))
}

// shoelace returns the signed area and area moments of the polygon.
func shoelace(xs, ys []float64) (a, cx, cy float64) {
	for i := range xs {
		j := (i + 1) % len(xs)
		cross := xs[i]*ys[j] - xs[j]*ys[i]
		a += cross
		cx += (xs[i] + xs[j]) * cross
		cy += (ys[i] + ys[j]) * cross
	}
	return a / 2, cx, cy
}

// PlanarArea approximates the enclosed area with the shoelace formula on an
// equirectangular projection of the nodes, scaled by the mean radius of e.
// It is only good for small regions away from the poles. Fewer than three
// nodes enclose no area.
func (r *Region) PlanarArea(e Ellipsoid) Area {
	if len(r.nodes) < 3 {
		return 0
	}
	xs, ys, meanLat := r.planarXY()
	a, _, _ := shoelace(xs, ys)
	radius := float64(e.MeanRadius())
	return Area(math.Abs(a) * radius * radius * math.Cos(meanLat))
}

// PlanarCentroid returns the centroid of the polygon treating latitude and
// longitude as plane coordinates. It fails with ErrInvalidValue when the
// nodes enclose no area.
func (r *Region) PlanarCentroid() (LatLong, error) {
	if len(r.nodes) < 3 {
		return LatLong{}, fmt.Errorf("%w: centroid needs three nodes, have %d", ErrInvalidValue, len(r.nodes))
	}
	xs, ys, _ := r.planarXY()
	a, cx, cy := shoelace(xs, ys)
	if a == 0 {
		return LatLong{}, fmt.Errorf("%w: region encloses no area", ErrInvalidValue)
	}
	return latLongRadians(cy/(6*a), cx/(6*a), 0), nil
}

// SurfaceArea returns the area enclosed on a sphere with the authalic radius
// of e, from the spherical excess of a triangle fan about the first node.
// Fewer than three nodes enclose no area.
func (r *Region) SurfaceArea(e Ellipsoid) Area {
	if len(r.nodes) < 3 {
		return 0
	}
	points := make([]s2.Point, len(r.nodes))
	for i, n := range r.nodes {
		points[i] = n.Point()
	}
	var excess float64
	for i := 1; i+1 < len(points); i++ {
		excess += s2.SignedArea(points[0], points[i], points[i+1])
	}
	radius := float64(e.AuthalicRadius())
	return Area(math.Abs(excess) * radius * radius)
}

// GeographicCentrePoint returns the centre of the nodes on the sphere.
func (r *Region) GeographicCentrePoint() (LatLong, error) {
	return GeographicCentre(r.nodes...)
}
