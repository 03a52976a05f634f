// File: dyngraph.go
// Role: DynGraph mutators and queries.
//
// Determinism:
//   - Nodes() and TemporalIDs() return sorted slices.
//
// Concurrency:
//   - All state guarded by a single RWMutex (mu).
package dyngraph

import "sort"

// AddNode inserts a node if missing (idempotent) and merges the given
// attributes into its attribute map. A nil attrs map registers the node
// with no attributes.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrEmptyLabel if attrs contains an empty label key.
//
// Complexity: O(len(attrs)) amortized.
func (g *DynGraph) AddNode(id string, attrs map[string]string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	for label := range attrs {
		if label == "" {
			return ErrEmptyLabel
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
	for label, value := range attrs {
		g.attrs[id][label] = value
	}

	return nil
}

// SetAttr sets one categorical attribute on an existing node,
// overwriting any previous value for the label.
//
// Errors:
//   - ErrEmptyNodeID, ErrEmptyLabel on invalid input.
//   - ErrNodeNotFound if the node was never registered.
func (g *DynGraph) SetAttr(id, label, value string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.attrs[id]; !ok {
		return ErrNodeNotFound
	}
	g.attrs[id][label] = value

	return nil
}

// AddInteraction records an undirected interaction between u and v
// active over the half-open tick interval [start, end). Unknown
// endpoints are registered automatically, mirroring how static graph
// containers bootstrap vertices on edge insert.
//
// Errors:
//   - ErrEmptyNodeID if either endpoint is empty.
//   - ErrSelfInteraction if u == v.
//   - ErrBadInterval if end <= start.
//
// Complexity: O(end-start) for the tick index, O(1) otherwise.
func (g *DynGraph) AddInteraction(u, v string, start, end int) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrSelfInteraction
	}
	if end <= start {
		return ErrBadInterval
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)

	s := span{start: start, end: end}
	g.spans[u][v] = append(g.spans[u][v], s)
	g.spans[v][u] = append(g.spans[v][u], s)
	for t := start; t < end; t++ {
		g.ticks[t] = struct{}{}
	}

	return nil
}

// AddContact records an interaction active at the single tick t.
// Shorthand for AddInteraction(u, v, t, t+1).
func (g *DynGraph) AddContact(u, v string, t int) error {
	return g.AddInteraction(u, v, t, t+1)
}

// Nodes returns all registered node IDs, sorted lexicographically.
// Complexity: O(n log n).
func (g *DynGraph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.attrs))
	for id := range g.attrs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// HasNode reports whether id is registered.
func (g *DynGraph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.attrs[id]

	return ok
}

// Order returns the number of registered nodes.
func (g *DynGraph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.attrs)
}

// Attr returns the value of one categorical attribute and whether it
// is set. A missing node yields ("", false).
func (g *DynGraph) Attr(id, label string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	value, ok := g.attrs[id][label]

	return value, ok
}

// TemporalIDs returns every tick covered by at least one interaction,
// sorted ascending. An interaction [start, end) covers ticks
// start..end-1. Complexity: O(t log t) over distinct ticks.
func (g *DynGraph) TemporalIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.ticks))
	for t := range g.ticks {
		ids = append(ids, t)
	}
	sort.Ints(ids)

	return ids
}

// ensureNode registers id if missing. Caller holds mu.
func (g *DynGraph) ensureNode(id string) {
	if _, ok := g.attrs[id]; !ok {
		g.attrs[id] = make(map[string]string)
	}
	if _, ok := g.spans[id]; !ok {
		g.spans[id] = make(map[string][]span)
	}
}
