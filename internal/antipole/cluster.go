package antipole

// Cluster is a leaf node's payload: a centroid point and the remaining
// members of the leaf, each carrying its precomputed distance to the
// centroid.
type Cluster struct {
	Centroid *Point
	Radius   float64
	Members  []ClusterMember
}

// ClusterMember is a non-centroid point of a leaf cluster together with
// its distance to the cluster's centroid, computed once at build time.
type ClusterMember struct {
	Point *Point
	Dist  float64
}

// buildCluster selects the 1-median of s as the centroid and computes
// every other member's distance to it, tracking the cluster radius as
// the maximum such distance.
func buildCluster(s *PointList, dim int, rnd Rand, dist Distance) *Cluster {
	points := s.Slice()
	if len(points) == 0 {
		return &Cluster{}
	}
	centroid := approximateMedian(points, dim, rnd, dist)

	c := &Cluster{Centroid: centroid}
	for _, p := range points {
		if p == centroid {
			continue
		}
		d := dist(centroid, p)
		c.Members = append(c.Members, ClusterMember{Point: p, Dist: d})
		if d > c.Radius {
			c.Radius = d
		}
	}
	return c
}
