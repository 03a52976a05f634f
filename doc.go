// Package tempora is an in-memory toolkit for analyzing dynamic
// (time-evolving) networks whose nodes carry categorical attributes.
//
// 🚀 What is tempora?
//
//	A thread-safe library that brings together:
//		• Dynamic graphs: nodes with categorical labels, interactions
//		  annotated with activity intervals, static time-slices
//		• Time-respecting paths: enumeration and classification by
//		  policy (shortest, fastest, foremost and their combinations)
//		• Delta-conformity: a per-node score in [-1, 1] of how closely
//		  a node's labels align with the nodes it can reach over
//		  time-respecting paths, single-window or sliding
//
// ✨ Why choose tempora?
//
//   - Minimal API, clear naming — options structs with sane defaults
//   - Deterministic enumeration surfaces — reproducible results
//   - Pure Go — no cgo, a small curated dependency set
//   - Parallel where it pays — the per-node conformity loop fans out
//     across workers with a simple join barrier, no locks
//
// Everything is organized under three subpackages:
//
//	dyngraph/     — dynamic Graph, Snapshot, Contact types & time-slicing
//	temporalpath/ — time-respecting path enumeration & policy distances
//	conformity/   — the delta-conformity engine (single window & sliding)
//
// Quick ASCII example:
//
//	    A──(t=1..3)──B
//	                 │
//	              (t=2..4)
//	                 │
//	    C──(t=4..8)──D
//
//	an interaction is only traversable while it is active, so a path
//	A→B→D exists but its continuation to C must wait for t≥4.
//
// Dive into the package docs for full examples and the scoring model.
//
//	go get github.com/talvikra/tempora
package tempora
