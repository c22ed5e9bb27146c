package antipole

// node is a tree node, tagged leaf or internal. It is never mutated after
// construction.
type node struct {
	// Leaf fields.
	leaf    bool
	cluster *Cluster

	// Internal fields. a and b are borrowed; the tree does not own them.
	a, b             *Point
	radiusA, radiusB float64
	left, right      *node
}

// antipoleHint carries a caller-supplied antipole pair into buildNode so
// it can skip its own split-gated selection.
type antipoleHint struct {
	a, b *Point
}

// buildNode recursively partitions s into a tree node: a leaf cluster if
// no pair in s exceeds 2*targetRadius, otherwise an internal node split
// on an antipole pair.
func buildNode(s *PointList, targetRadius float64, hint *antipoleHint, dim int, r Rand, dist Distance) *node {
	var a, b *Point
	if hint != nil {
		a, b = hint.a, hint.b
	} else {
		var ok bool
		a, b, ok = splitGated(s.Slice(), targetRadius, dim, r, dist)
		if !ok {
			return &node{leaf: true, cluster: buildCluster(s, dim, r, dist)}
		}
	}

	setA, setB := NewPointList(), NewPointList()
	n := &node{a: a, b: b}

	s.Each(func(p *Point, _ float64) {
		da := dist(a, p)
		db := dist(b, p)
		p.addAncestor(a, da)
		p.addAncestor(b, db)
		if da < db {
			setA.Add(p, da)
			if da > n.radiusA {
				n.radiusA = da
			}
		} else {
			setB.Add(p, db)
			if db > n.radiusB {
				n.radiusB = db
			}
		}
	})

	var hintA, hintB *antipoleHint
	if ha, hb, ok := ancestorHint(setA.Slice(), a, targetRadius); ok {
		hintA = &antipoleHint{a: ha, b: hb}
	}
	if ha, hb, ok := ancestorHint(setB.Slice(), b, targetRadius); ok {
		hintB = &antipoleHint{a: ha, b: hb}
	}

	n.left = buildNode(setA, targetRadius, hintA, dim, r, dist)
	n.right = buildNode(setB, targetRadius, hintB, dim, r, dist)
	return n
}
