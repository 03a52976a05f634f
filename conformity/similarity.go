// File: similarity.go
// Role: Label-profile similarity between a source node and one
// reachability shell.
package conformity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/talvikra/tempora/dyngraph"
)

// outOfHierarchyPenalty is the agreement indicator for two different
// values of a label that carries no usable hierarchy.
const outOfHierarchyPenalty = -1.0

// profileSimilarity scores source u against the shell for one label
// profile: the product over the profile's labels of the shell mean of
// sgn(v)·f(v).
//
// Errors:
//   - ErrEmptyShell if the shell has no members (precondition).
//   - ErrUpstreamData if u or a shell node misses a requested label.
func profileSimilarity(s *dyngraph.Snapshot, u string, shell, profile []string, hier Hierarchies) (float64, error) {
	if len(shell) == 0 {
		return 0, ErrEmptyShell
	}

	score := 1.0
	products := make([]float64, len(shell))
	for _, label := range profile {
		uVal, ok := s.Attr(u, label)
		if !ok {
			return 0, fmt.Errorf("%w: node %q has no label %q", ErrUpstreamData, u, label)
		}
		for i, v := range shell {
			vVal, ok := s.Attr(v, label)
			if !ok {
				return 0, fmt.Errorf("%w: node %q has no label %q", ErrUpstreamData, v, label)
			}
			sgn := 1.0
			if uVal != vVal {
				sgn = rankPenalty(label, uVal, vVal, hier)
			}
			weight, err := homogeneity(s, v, label, vVal)
			if err != nil {
				return 0, err
			}
			products[i] = sgn * weight
		}
		score *= floats.Sum(products) / float64(len(shell))
	}

	return score, nil
}

// rankPenalty grades the disagreement between two values of one label
// under its hierarchy: -|rank(a)-rank(b)| / (|H|-1), a value in
// [-1, 0]. Labels without a usable hierarchy (absent, fewer than two
// ranks, or a value missing a rank) yield the fixed -1 penalty.
func rankPenalty(label, a, b string, hier Hierarchies) float64 {
	h, ok := hier[label]
	if !ok || len(h) < 2 {
		return outOfHierarchyPenalty
	}
	ra, okA := h[a]
	rb, okB := h[b]
	if !okA || !okB {
		return outOfHierarchyPenalty
	}

	return -math.Abs(float64(ra-rb)) / float64(len(h)-1)
}

// homogeneity returns the fraction of v's snapshot neighbors sharing
// v's own value for the label. A zero fraction is smoothed to 1 so
// that nodes with no agreeing neighbor are weighted neutrally rather
// than erased, and a node without neighbors (a degenerate snapshot)
// is weighted 1 by the same policy.
func homogeneity(s *dyngraph.Snapshot, v, label, vVal string) (float64, error) {
	nbrs, err := s.NeighborIDs(v)
	if err != nil {
		return 0, fmt.Errorf("%w: neighbors of %q: %v", ErrUpstreamData, v, err)
	}
	if len(nbrs) == 0 {
		return 1, nil
	}

	matching := 0
	for _, n := range nbrs {
		if nVal, _ := s.Attr(n, label); nVal == vVal {
			matching++
		}
	}
	if matching == 0 {
		return 1, nil
	}

	return float64(matching) / float64(len(nbrs)), nil
}
