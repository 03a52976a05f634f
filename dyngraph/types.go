// Package dyngraph declares the DynGraph, Snapshot, and Contact types
// together with the sentinel errors shared by all operations.
package dyngraph

import (
	"errors"
	"sync"
)

// Sentinel errors for dynamic graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("dyngraph: node ID is empty")

	// ErrEmptyLabel indicates an attribute operation received an empty label.
	ErrEmptyLabel = errors.New("dyngraph: attribute label is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("dyngraph: node not found")

	// ErrSelfInteraction indicates an interaction whose endpoints coincide.
	ErrSelfInteraction = errors.New("dyngraph: self-interaction not allowed")

	// ErrBadInterval indicates an interaction interval with end <= start.
	ErrBadInterval = errors.New("dyngraph: interval end must exceed start")

	// ErrBadWindow indicates a slice window with to < from.
	ErrBadWindow = errors.New("dyngraph: window end precedes start")
)

// Contact is a single co-occurrence of two nodes at one tick.
// Contacts are undirected; U < V lexicographically by construction.
type Contact struct {
	// U is the lexicographically smaller endpoint.
	U string

	// V is the lexicographically larger endpoint.
	V string

	// T is the tick at which the contact is active.
	T int
}

// span is a half-open activity interval [start, end) in ticks.
type span struct {
	start int
	end   int
}

// DynGraph is a thread-safe dynamic graph: nodes with categorical
// string attributes and undirected interactions active over tick
// intervals. The zero value is not usable; construct with New.
type DynGraph struct {
	mu sync.RWMutex

	// attrs maps node ID → label → categorical value.
	attrs map[string]map[string]string

	// spans maps node ID → neighbor ID → activity intervals.
	// Entries are mirrored for both endpoints.
	spans map[string]map[string][]span

	// ticks records every tick covered by at least one interaction.
	ticks map[int]struct{}
}

// New creates an empty DynGraph.
// Complexity: O(1).
func New() *DynGraph {
	return &DynGraph{
		attrs: make(map[string]map[string]string),
		spans: make(map[string]map[string][]span),
		ticks: make(map[int]struct{}),
	}
}

// Snapshot is an immutable static view of a DynGraph restricted to an
// inclusive tick window [from, to]. Only nodes incident to at least one
// in-window contact are present. Snapshots are safe for concurrent use.
type Snapshot struct {
	from, to int

	// attrs maps node ID → label → value, copied at slice time.
	attrs map[string]map[string]string

	// adj maps node ID → set of neighbor IDs.
	adj map[string]map[string]struct{}

	// contacts holds every in-window contact, sorted by (T, U, V).
	contacts []Contact
}
