// Package antipole implements the Antipole Tree, a binary metric-space
// index supporting range search and k-nearest-neighbor search over a
// caller-supplied distance function satisfying the triangle inequality.
package antipole

// Distance computes the distance between two points. Implementations must
// be symmetric, non-negative, and satisfy the triangle inequality; behavior
// with negative, NaN, or non-metric distances is undefined.
type Distance func(p, q *Point) float64

// Point is a handle carrying an opaque identity and payload. The Ancestors
// field is build-time scratch owned by the tree builder: as a point
// descends through internal nodes during construction, each node appends
// both of its antipoles and the precomputed distance to each.
// Query points are expected to start with an empty Ancestors list.
type Point struct {
	ID      int
	Payload any

	Ancestors []AncestorDist
}

// AncestorDist records the distance from a point to one ancestor antipole
// encountered on its path from the tree root to its containing leaf.
type AncestorDist struct {
	Antipole *Point
	Dist     float64
}

// NewPoint creates a point with the given id and payload and an empty
// ancestor list.
func NewPoint(id int, payload any) *Point {
	return &Point{ID: id, Payload: payload}
}

// addAncestor records that p was routed past antipole a at distance d
// during construction.
func (p *Point) addAncestor(a *Point, d float64) {
	p.Ancestors = append(p.Ancestors, AncestorDist{Antipole: a, Dist: d})
}

// ancestorDist returns the cached distance from p to a, if p recorded one
// while being routed past a during construction.
func (p *Point) ancestorDist(a *Point) (float64, bool) {
	for _, anc := range p.Ancestors {
		if anc.Antipole == a {
			return anc.Dist, true
		}
	}
	return 0, false
}
