// File: snapshot.go
// Role: Time-slicing and the immutable Snapshot view.
//
// Determinism:
//   - Snapshot.Nodes() and NeighborIDs() sorted lex asc.
//   - Snapshot.Contacts() sorted by (T, U, V).
package dyngraph

import "sort"

// Slice materializes the static view of the graph restricted to the
// inclusive tick window [from, to]. Only nodes incident to at least one
// in-window contact appear in the snapshot; their attributes are copied
// from the graph at slice time, so later mutation of the DynGraph does
// not affect the snapshot.
//
// Errors:
//   - ErrBadWindow if to < from.
//
// Complexity: O(C + n log n) where C is the number of in-window
// (pair, tick) contacts.
func (g *DynGraph) Slice(from, to int) (*Snapshot, error) {
	if to < from {
		return nil, ErrBadWindow
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		from:  from,
		to:    to,
		attrs: make(map[string]map[string]string),
		adj:   make(map[string]map[string]struct{}),
	}

	seen := make(map[Contact]struct{})
	for u, neighbors := range g.spans {
		for v, spans := range neighbors {
			if u >= v {
				continue // mirrored entry; the u < v pass emits the contacts
			}
			for _, sp := range spans {
				for t := max(sp.start, from); t < sp.end && t <= to; t++ {
					// Overlapping intervals for one pair collapse to a
					// single contact per tick.
					c := Contact{U: u, V: v, T: t}
					if _, dup := seen[c]; dup {
						continue
					}
					seen[c] = struct{}{}
					s.contacts = append(s.contacts, c)
					s.link(g, u, v)
				}
			}
		}
	}

	sort.Slice(s.contacts, func(i, j int) bool {
		a, b := s.contacts[i], s.contacts[j]
		if a.T != b.T {
			return a.T < b.T
		}
		if a.U != b.U {
			return a.U < b.U
		}

		return a.V < b.V
	})

	return s, nil
}

// link registers the pair u-v in the snapshot, copying attributes from
// the parent graph on first sight of each endpoint. Caller holds g.mu.
func (s *Snapshot) link(g *DynGraph, u, v string) {
	for _, id := range [2]string{u, v} {
		if _, ok := s.attrs[id]; ok {
			continue
		}
		copied := make(map[string]string, len(g.attrs[id]))
		for label, value := range g.attrs[id] {
			copied[label] = value
		}
		s.attrs[id] = copied
		s.adj[id] = make(map[string]struct{})
	}
	s.adj[u][v] = struct{}{}
	s.adj[v][u] = struct{}{}
}

// Window returns the inclusive tick window the snapshot was sliced for.
func (s *Snapshot) Window() (from, to int) { return s.from, s.to }

// Nodes returns the snapshot's node IDs, sorted lexicographically.
func (s *Snapshot) Nodes() []string {
	ids := make([]string, 0, len(s.attrs))
	for id := range s.attrs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// HasNode reports whether id is present in the snapshot.
func (s *Snapshot) HasNode(id string) bool {
	_, ok := s.attrs[id]

	return ok
}

// Order returns the number of nodes in the snapshot.
func (s *Snapshot) Order() int { return len(s.attrs) }

// Attr returns the value of one categorical attribute and whether it
// is set for the given snapshot node.
func (s *Snapshot) Attr(id, label string) (string, bool) {
	value, ok := s.attrs[id][label]

	return value, ok
}

// NeighborIDs returns the unique IDs adjacent to id within the window,
// sorted lexicographically.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if id is not in the snapshot.
func (s *Snapshot) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	set, ok := s.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	ids := make([]string, 0, len(set))
	for nbr := range set {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of distinct neighbors of id in the window.
//
// Errors: same as NeighborIDs.
func (s *Snapshot) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	set, ok := s.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(set), nil
}

// Contacts returns a copy of every in-window contact, sorted by
// (T, U, V). Contacts are undirected with U < V and unique: a pair
// covered by overlapping intervals yields one contact per tick.
func (s *Snapshot) Contacts() []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)

	return out
}
