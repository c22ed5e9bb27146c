package antipole

// listNode is one element of a PointList: a point together with a
// context-dependent distance (to an ancestor antipole, to a centroid, or
// to a query point, depending on which consumer built the list).
type listNode struct {
	point *Point
	dist  float64
	next  *listNode
}

// PointList is an unordered, singly linked collection of (point, dist)
// records. Order is not semantically meaningful to any consumer except
// ToList, which exploits prepend-reverses-order to produce ascending
// output.
type PointList struct {
	head *listNode
	size int
}

// NewPointList returns an empty point list.
func NewPointList() *PointList {
	return &PointList{}
}

// Size returns the number of elements in the list.
func (l *PointList) Size() int {
	return l.size
}

// Add prepends (p, d) to the list unless p is already present, identified
// by pointer equality. It reports whether the point was inserted.
func (l *PointList) Add(p *Point, d float64) bool {
	for n := l.head; n != nil; n = n.next {
		if n.point == p {
			return false
		}
	}
	l.head = &listNode{point: p, dist: d, next: l.head}
	l.size++
	return true
}

// Copy returns a deep copy of the list's spine; the underlying points are
// borrowed, not duplicated.
func (l *PointList) Copy() *PointList {
	out := NewPointList()
	// Walking the source list and prepending reverses order; walk it
	// back-to-front by collecting into a slice first so the copy
	// preserves the source's traversal order.
	nodes := make([]*listNode, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		out.head = &listNode{point: nodes[i].point, dist: nodes[i].dist, next: out.head}
	}
	out.size = l.size
	return out
}

// Each calls fn for every (point, dist) record in the list.
func (l *PointList) Each(fn func(p *Point, dist float64)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.point, n.dist)
	}
}

// Slice materializes the list into a plain slice of points, in the list's
// internal order.
func (l *PointList) Slice() []*Point {
	out := make([]*Point, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.point)
	}
	return out
}

// MoveByValue locates the first element holding point p in l, unlinks it,
// and prepends it to dst. It reports whether p was found.
func (l *PointList) MoveByValue(p *Point, dst *PointList) bool {
	var prev *listNode
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.point != p {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		l.size--
		dst.head = &listNode{point: n.point, dist: n.dist, next: dst.head}
		dst.size++
		return true
	}
	return false
}

// MoveByIndex unlinks the nth (0-based) element from l and prepends it to
// dst. It reports whether n was in range.
func (l *PointList) MoveByIndex(n int, dst *PointList) bool {
	if n < 0 || n >= l.size {
		return false
	}
	var prev *listNode
	cur := l.head
	for i := 0; i < n; i++ {
		prev = cur
		cur = cur.next
	}
	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	l.size--
	dst.head = &listNode{point: cur.point, dist: cur.dist, next: dst.head}
	dst.size++
	return true
}
