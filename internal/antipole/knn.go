package antipole

import "math"

// NearestNeighborSearch returns at most k points of t closest to query, in
// ascending order of distance, using a best-first traversal: a min-heap
// of subtrees keyed by a lower bound on the distance from query to any
// point they contain, and a bounded max-heap of the k closest candidates
// seen so far.
//
// k <= 0 returns an empty result.
func (t *Tree) NearestNeighborSearch(query *Point, k int) []RangeResult {
	if k <= 0 {
		return nil
	}

	treePQ := NewHeap[*node](false, 0)
	pointPQ := NewHeap[*Point](true, k)

	treePQ.Insert(t.root, -1)

	for treePQ.Len() > 0 {
		if pointPQ.IsFull() {
			_, treeKey := treePQ.Top()
			_, pointKey := pointPQ.Top()
			if treeKey >= pointKey {
				break // every remaining subtree is farther than our farthest kept candidate
			}
		}

		n, _, _ := treePQ.Pop()
		if !n.leaf {
			da := t.dist(n.a, query)
			tryInsert(pointPQ, n.a, da)
			db := t.dist(n.b, query)
			tryInsert(pointPQ, n.b, db)
			treePQ.Insert(n.left, da-n.radiusA)
			treePQ.Insert(n.right, db-n.radiusB)
		} else {
			visitClusterKNN(n.cluster, query, t.dist, pointPQ)
		}
	}

	return pointListToResults(ToList(pointPQ))
}

// tryInsert admits (p, d) into the bounded candidate heap: a no-op if p
// is already present, an unconditional insert while the heap has room,
// and otherwise a swap with the current farthest candidate only if d is
// closer.
func tryInsert(pointPQ *Heap[*Point], p *Point, d float64) {
	if pointPQ.Contains(p) {
		return
	}
	if !pointPQ.IsFull() {
		pointPQ.Insert(p, d)
		return
	}
	_, farthest := pointPQ.Top()
	if d < farthest {
		pointPQ.Pop()
		pointPQ.Insert(p, d)
	}
}

// visitClusterKNN mirrors RangeSearch's leaf handling, but consults the
// candidate heap's current farthest key rather than a fixed radius.
func visitClusterKNN(c *Cluster, q *Point, dist Distance, pointPQ *Heap[*Point]) {
	if c.Centroid == nil {
		return
	}
	dc := dist(c.Centroid, q)
	tryInsert(pointPQ, c.Centroid, dc)

	rFar := math.Inf(1)
	full := pointPQ.IsFull()
	if full {
		_, rFar = pointPQ.Top()
	}

	if dc > rFar+c.Radius {
		return // bulk prune
	}

	for _, m := range c.Members {
		if full && dc > rFar+m.Dist {
			continue // definitely farther than every current candidate
		}
		// Whether d(centroid,q) <= rFar-m.Dist (definitely within range
		// of the farthest kept candidate) or not, the exact distance
		// still has to be computed to learn where m ranks among
		// candidates, so both cases fall through to the same check.
		d := dist(m.Point, q)
		tryInsert(pointPQ, m.Point, d)
	}
}
