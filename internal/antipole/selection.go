package antipole

import (
	"math"

	"github.com/antipole-index/antipole/internal/rng"
)

// Rand is the randomness source the tournament reductions draw from. It
// is injected so construction can be reproduced deterministically in
// tests.
type Rand = rng.Source

// tournamentSize and finalRoundSize implement the tournament parameters:
// tournament_size = D+1, final_round_size =
// max(tournament_size^2 - 1, round(sqrt(n))).
func tournamentSize(dim int) int {
	return dim + 1
}

func finalRoundSize(n, dim int) int {
	t := tournamentSize(dim)
	bracket := t*t - 1
	sqrtRound := int(math.Round(math.Sqrt(float64(n))))
	if bracket > sqrtRound {
		return bracket
	}
	return sqrtRound
}

// exactMedian returns the point in s minimizing the sum of distances to
// every other point in s, in O(|s|^2) distance evaluations.
func exactMedian(s []*Point, dist Distance) *Point {
	best := s[0]
	bestSum := math.Inf(1)
	for _, candidate := range s {
		sum := 0.0
		for _, other := range s {
			if other != candidate {
				sum += dist(candidate, other)
			}
		}
		if sum < bestSum {
			bestSum = sum
			best = candidate
		}
	}
	return best
}

// exactAntipole returns the pair in s with maximum pairwise distance, in
// O(|s|^2). The best distance is seeded at -1 with a strict > comparison,
// so a set of all-coincident points still yields a "pair" (a, a) rather
// than no pair at all; callers that must tolerate this are documented at
// their call sites.
func exactAntipole(s []*Point, dist Distance) (*Point, *Point) {
	a, b := s[0], s[0]
	best := -1.0
	for i, p := range s {
		for _, q := range s[i:] {
			if d := dist(p, q); d > best {
				best = d
				a, b = p, q
			}
		}
	}
	return a, b
}

// drawTournamentBracket removes up to size random elements from pool
// (without replacement) and returns them.
func drawTournamentBracket(pool []*Point, size int, r Rand) ([]*Point, []*Point) {
	if size > len(pool) {
		size = len(pool)
	}
	bracket := make([]*Point, 0, size)
	remaining := pool
	for i := 0; i < size; i++ {
		idx := r.IntN(len(remaining))
		bracket = append(bracket, remaining[idx])
		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return bracket, remaining
}

// approximateMedian implements the tournament-reduced 1-median: while
// the pool exceeds final_round_size, repeatedly draw brackets
// of tournament_size, exact-median each, and promote the winner; finally
// exact-median whatever remains.
func approximateMedian(s []*Point, dim int, r Rand, dist Distance) *Point {
	if len(s) <= 2 {
		return exactMedian(s, dist)
	}
	final := finalRoundSize(len(s), dim)
	bracketSize := tournamentSize(dim)

	pool := append([]*Point(nil), s...)
	for len(pool) > final {
		var winners []*Point
		remaining := pool
		for len(remaining) > bracketSize {
			var bracket []*Point
			bracket, remaining = drawTournamentBracket(remaining, bracketSize, r)
			winners = append(winners, exactMedian(bracket, dist))
		}
		if len(remaining) > 0 {
			winners = append(winners, exactMedian(remaining, dist))
		}
		pool = winners
	}
	return exactMedian(pool, dist)
}

// approximateAntipole implements the tournament-reduced antipole pair:
// identical structure to approximateMedian, except each
// bracket promotes both of its exact antipoles, and the final answer is
// the exact antipole pair of the last pool.
func approximateAntipole(s []*Point, dim int, r Rand, dist Distance) (*Point, *Point) {
	if len(s) <= 2 {
		return exactAntipole(s, dist)
	}
	final := finalRoundSize(len(s), dim)
	bracketSize := tournamentSize(dim)

	pool := append([]*Point(nil), s...)
	for len(pool) > final {
		var winners []*Point
		remaining := pool
		for len(remaining) > bracketSize {
			var bracket []*Point
			bracket, remaining = drawTournamentBracket(remaining, bracketSize, r)
			a, b := exactAntipole(bracket, dist)
			winners = append(winners, a, b)
		}
		if len(remaining) > 0 {
			a, b := exactAntipole(remaining, dist)
			winners = append(winners, a, b)
		}
		pool = winners
	}
	return exactAntipole(pool, dist)
}

// splitGated returns (a, b, true) iff some pair in s has distance greater
// than 2*targetRadius; otherwise it returns (nil, nil, false), signaling
// that s should become a leaf. It
// delegates to the exact or tournament-reduced antipole search depending
// on set size. The exact pair is the farthest, so if it doesn't clear the
// threshold no pair does; the tournament pair is only approximate, so when
// it falls short every pair is scanned, stopping at the first that clears
// the threshold.
func splitGated(s []*Point, targetRadius float64, dim int, r Rand, dist Distance) (*Point, *Point, bool) {
	if len(s) < 2 {
		return nil, nil, false
	}
	var a, b *Point
	exact := len(s) <= tournamentSize(dim)*tournamentSize(dim)
	if exact {
		a, b = exactAntipole(s, dist)
	} else {
		a, b = approximateAntipole(s, dim, r, dist)
	}
	if dist(a, b) > 2*targetRadius {
		return a, b, true
	}
	if !exact {
		for i, p := range s {
			for _, q := range s[i+1:] {
				if dist(p, q) > 2*targetRadius {
					return p, q, true
				}
			}
		}
	}
	return nil, nil, false
}

// ancestorHint returns (ancestor, p, true) for some p in s whose cached
// distance to ancestor (recorded in p.Ancestors during an earlier descent
// step) exceeds 2*targetRadius, using the cache instead of recomputing
// the distance. It returns
// (nil, nil, false) if no cached distance clears the threshold, in which
// case the caller falls back to splitGated.
func ancestorHint(s []*Point, ancestor *Point, targetRadius float64) (*Point, *Point, bool) {
	for _, p := range s {
		if d, ok := p.ancestorDist(ancestor); ok && d > 2*targetRadius {
			return ancestor, p, true
		}
	}
	return nil, nil, false
}
