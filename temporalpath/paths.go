// File: paths.go
// Role: Time-respecting path enumeration, annotation, and distances.
//
// Determinism:
//   - hop lists per node are sorted by (T, neighbor), so enumeration
//     order and first-found tie-breaks are reproducible.
package temporalpath

import (
	"math"
	"sort"

	"github.com/talvikra/tempora/dyngraph"
)

// hop is one traversable contact as seen from a fixed endpoint.
type hop struct {
	to string
	t  int
}

// enumerator carries the mutable state of one source's depth-first
// walk over strictly increasing contact timestamps.
type enumerator struct {
	hops   map[string][]hop
	source string
	onPath map[string]bool
	path   Path
	found  map[Pair][]Path
}

// AllPaths enumerates every time-respecting path between all ordered
// node pairs of the snapshot. Pairs with no valid path are absent from
// the result.
func AllPaths(s *dyngraph.Snapshot) (map[Pair][]Path, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}

	hops := hopIndex(s)
	found := make(map[Pair][]Path)
	for _, source := range s.Nodes() {
		e := &enumerator{
			hops:   hops,
			source: source,
			onPath: map[string]bool{source: true},
			found:  found,
		}
		// Seed below any representable tick; ticks may be negative.
		e.extend(source, math.MinInt)
	}

	return found, nil
}

// hopIndex builds the per-node traversable contact list, sorted by
// (T, neighbor). Contacts are undirected, so each yields two hops;
// the snapshot guarantees contacts are unique, so hops are too.
func hopIndex(s *dyngraph.Snapshot) map[string][]hop {
	index := make(map[string][]hop, s.Order())
	for _, c := range s.Contacts() {
		index[c.U] = append(index[c.U], hop{to: c.V, t: c.T})
		index[c.V] = append(index[c.V], hop{to: c.U, t: c.T})
	}
	for _, hops := range index {
		sort.Slice(hops, func(i, j int) bool {
			if hops[i].t != hops[j].t {
				return hops[i].t < hops[j].t
			}

			return hops[i].to < hops[j].to
		})
	}

	return index
}

// extend grows the current path from node curr with any contact later
// than after, recording every intermediate simple path it reaches.
func (e *enumerator) extend(curr string, after int) {
	for _, h := range e.hops[curr] {
		if h.t <= after || e.onPath[h.to] {
			continue
		}
		contact := dyngraph.Contact{U: min(curr, h.to), V: max(curr, h.to), T: h.t}
		e.path = append(e.path, contact)
		e.onPath[h.to] = true

		pair := Pair{From: e.source, To: h.to}
		e.found[pair] = append(e.found[pair], append(Path(nil), e.path...))

		e.extend(h.to, h.t)

		e.onPath[h.to] = false
		e.path = e.path[:len(e.path)-1]
	}
}

// Annotate reduces a pair's path set to one representative per policy.
// Ties keep the first path in enumeration order.
func Annotate(paths []Path) (Annotation, error) {
	if len(paths) == 0 {
		return Annotation{}, ErrNoPaths
	}

	a := Annotation{
		Shortest:        paths[0],
		Fastest:         paths[0],
		Foremost:        paths[0],
		FastestShortest: paths[0],
		ShortestFastest: paths[0],
	}
	for _, p := range paths[1:] {
		if p.Hops() < a.Shortest.Hops() {
			a.Shortest = p
		}
		if p.Duration() < a.Fastest.Duration() {
			a.Fastest = p
		}
		if p.Arrival() < a.Foremost.Arrival() {
			a.Foremost = p
		}
		if p.Duration() < a.FastestShortest.Duration() ||
			(p.Duration() == a.FastestShortest.Duration() && p.Hops() < a.FastestShortest.Hops()) {
			a.FastestShortest = p
		}
		if p.Hops() < a.ShortestFastest.Hops() ||
			(p.Hops() == a.ShortestFastest.Hops() && p.Duration() < a.ShortestFastest.Duration()) {
			a.ShortestFastest = p
		}
	}

	return a, nil
}

// Distances reports, for every ordered reachable pair, the hop count
// of the representative time-respecting path under the given policy.
// Unreachable pairs are absent from the result.
func Distances(s *dyngraph.Snapshot, policy Policy) (map[string]map[string]int, error) {
	if s == nil {
		return nil, ErrSnapshotNil
	}
	if !policy.Valid() {
		return nil, ErrUnknownPolicy
	}

	paths, err := AllPaths(s)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]map[string]int, s.Order())
	for pair, set := range paths {
		a, err := Annotate(set)
		if err != nil {
			return nil, err
		}
		d, err := a.Distance(policy)
		if err != nil {
			return nil, err
		}
		if dist[pair.From] == nil {
			dist[pair.From] = make(map[string]int)
		}
		dist[pair.From][pair.To] = d
	}

	return dist, nil
}
