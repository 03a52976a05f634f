// Package conformity computes delta-conformity: a per-node score of
// how closely a node's categorical attributes align with those of the
// nodes it can causally reach within a bounded temporal window.
//
// What
//
//   - For a window [start, start+delta], every node u is scored against
//     its reachability shells: the groups of nodes at equal
//     time-respecting distance d from u (d > 0; a node never
//     contributes to its own score).
//   - For each shell and each label profile (a combination of one or
//     more labels), a similarity value is the product over the
//     profile's labels of the shell mean of sgn(v)·f(v), where
//     sgn(v) is 1 on exact label agreement, a graded penalty
//     -|rank(u)-rank(v)|/(|H|-1) under a label hierarchy H, and -1
//     otherwise; f(v) is the fraction of v's snapshot neighbors
//     sharing v's own value, smoothed to 1 when zero (isolated or
//     perfectly heterogeneous neighborhoods are not punished).
//   - Shell contributions accumulate as sim/d^alpha per damping factor
//     alpha, then normalize by Σ_{k=1..maxDist} k^-alpha using the
//     node's own maximum observed distance, bounding scores to a scale
//     comparable across nodes of different reachability depths.
//   - SlidingDeltaConformity repeats the computation over consecutive
//     window starts drawn from the graph's temporal index, yielding a
//     time series per (alpha, profile, node).
//
// Why
//
//   - Conformity generalizes assortativity from direct neighbors to
//     causal reachability: it asks not "do my contacts agree with me"
//     but "does the part of the network I can actually influence,
//     within delta ticks, agree with me".
//
// Determinism & parallelism
//
//	Each node's accumulator depends only on immutable inputs (the
//	snapshot and the distance map), so the per-node loop fans out
//	across Workers goroutines with a plain join barrier and no locks;
//	per-node results are merged after the barrier. Shell iteration is
//	sorted, so results are reproducible up to floating-point addition
//	order within a shell mean.
//
// Scores typically fall in [-1, 1]; hierarchy penalties compounded
// across multi-label profiles can exceed that range in pathological
// configurations, so the bound is a target, not an invariant.
//
// Errors
//
//   - ErrGraphNil     — nil dynamic graph.
//   - ErrNoAlphas     — no damping factor requested.
//   - ErrBadAlpha     — non-positive damping factor.
//   - ErrNoLabels     — no label requested.
//   - ErrProfileSize  — profile size negative or above the label count.
//   - ErrBadDelta     — negative window length.
//   - ErrEmptyShell   — a shell with no members reached the scorer.
//   - ErrUpstreamData — snapshot/oracle data inconsistent (unknown
//     node in the distance map, node missing a requested label, ...).
//
// Usage
//
//	g := dyngraph.New()
//	g.AddNode("A", map[string]string{"opinion": "yes"})
//	// ... interactions ...
//
//	opts := conformity.DefaultOptions("opinion")
//	res, err := conformity.DeltaConformity(g, 1, 5, &opts)
//	if err != nil {
//	    // handle ErrNoLabels, ErrProfileSize, ErrUpstreamData, ...
//	}
//	score, _ := res.Score(1, []string{"opinion"}, "A")
package conformity
