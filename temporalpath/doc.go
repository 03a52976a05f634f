// Package temporalpath enumerates time-respecting paths over a
// dyngraph.Snapshot and classifies them by policy.
//
// What
//
//   - A time-respecting path is a simple path whose traversed contacts
//     carry strictly increasing timestamps, so it is consistent with
//     causal reachability inside the snapshot window.
//   - AllPaths enumerates every such path between all ordered node
//     pairs.
//   - Annotate reduces a pair's path set to one representative per
//     policy:
//     Shortest        — fewest hops
//     Fastest         — smallest duration (arrival - departure)
//     Foremost        — earliest arrival
//     FastestShortest — fewest hops among the fastest
//     ShortestFastest — smallest duration among the shortest
//   - Distances reports, per ordered reachable pair, the hop count of
//     the representative path under one policy. That hop count is the
//     temporal distance consumed by the conformity engine.
//
// Determinism
//
//	Contacts are explored in the snapshot's (T, U, V) order, and ties
//	between equally good paths keep the first one found, so every
//	representative and distance is reproducible.
//
// Complexity
//
//	Path enumeration is exponential in the worst case (it lists all
//	simple time-respecting paths, as temporal reachability demands);
//	on the sparse interaction windows this package targets, path sets
//	stay small.
//
// Errors
//
//   - ErrSnapshotNil   — nil snapshot passed.
//   - ErrUnknownPolicy — policy name or value not recognized.
//   - ErrNoPaths       — Annotate invoked on an empty path set.
package temporalpath
