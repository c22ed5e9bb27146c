package antipole

// Tree is an Antipole Tree built once over a fixed input multiset of
// points. It is immutable and safe to read concurrently, provided no
// caller mutates a point's Ancestors field and Distance is reentrant.
type Tree struct {
	root *node
	dist Distance
	size int
}

// BuildTree constructs an Antipole Tree over points. targetRadius bounds
// the radius the builder aims to give each leaf cluster: a split is
// forced whenever some pair in a subset exceeds 2*targetRadius.
// dimensionHint sets the tournament size used by the antipole and
// 1-median selectors' randomized reduction on large subsets
// (tournament_size = dimensionHint + 1). r supplies the randomness the
// tournament reductions draw from; pass a seeded rng.Source for
// reproducible builds.
//
// An empty points slice yields a single empty leaf.
func BuildTree(points []*Point, targetRadius float64, dimensionHint int, dist Distance, r Rand) *Tree {
	s := NewPointList()
	for _, p := range points {
		s.Add(p, 0)
	}
	return &Tree{
		root: buildNode(s, targetRadius, nil, dimensionHint, r, dist),
		dist: dist,
		size: len(points),
	}
}

// Stats summarizes a tree's shape: total indexed points, internal node
// and leaf counts, maximum root-to-leaf depth, and the average member
// count and radius across leaf clusters.
type Stats struct {
	Points        int
	InternalNodes int
	Leaves        int
	MaxDepth      int
	AvgLeafSize   float64
	AvgLeafRadius float64
}

// Stats walks the tree and computes Stats.
func (t *Tree) Stats() Stats {
	st := Stats{Points: t.size}
	var totalMembers int
	var totalRadius float64

	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if n == nil {
			return
		}
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		if n.leaf {
			st.Leaves++
			totalMembers += len(n.cluster.Members)
			totalRadius += n.cluster.Radius
			return
		}
		st.InternalNodes++
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)

	if st.Leaves > 0 {
		st.AvgLeafSize = float64(totalMembers) / float64(st.Leaves)
		st.AvgLeafRadius = totalRadius / float64(st.Leaves)
	}
	return st
}

// Size returns the number of points the tree was built over.
func (t *Tree) Size() int {
	return t.size
}
