// Package dyngraph provides a thread-safe dynamic (temporal) graph:
// nodes carrying categorical string attributes, and undirected
// interactions annotated with integer activity intervals.
//
// What
//
//   - DynGraph: mutable container for nodes, attributes, and
//     interactions active over tick intervals [start, end).
//   - Snapshot: an immutable static view of a DynGraph restricted to an
//     inclusive tick window, exposing the node set, attribute lookups,
//     sorted neighbor lists, and the time-stamped contact list.
//   - Contact: a single (u, v, t) co-occurrence, the unit consumed by
//     time-respecting path algorithms.
//
// Why
//
//   - Temporal network analysis needs both the evolving container and
//     cheap, reproducible static views per window; Snapshot gives
//     downstream algorithms a stable read-only surface.
//
// Determinism
//
//	Nodes(), NeighborIDs() and TemporalIDs() return sorted slices, and
//	Contacts() is ordered by (T, U, V), so every enumeration over a
//	snapshot is fully reproducible.
//
// Concurrency
//
//	DynGraph methods are safe for concurrent use (a single RWMutex
//	guards all state). Snapshots are immutable after construction and
//	may be shared freely across goroutines.
//
// Errors
//
//   - ErrEmptyNodeID      — empty node identifier.
//   - ErrEmptyLabel       — empty attribute label.
//   - ErrNodeNotFound     — node does not exist.
//   - ErrSelfInteraction  — interaction endpoints coincide.
//   - ErrBadInterval      — interaction interval with end <= start.
//   - ErrBadWindow        — slice window with to < from.
package dyngraph
