package conformity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talvikra/tempora/conformity"
	"github.com/talvikra/tempora/dyngraph"
)

// triangleAt builds a snapshot of a 3-clique whose contacts all share
// one tick, with the given per-node attribute values for label.
func triangleAt(t *testing.T, tick int, label string, vals map[string]string) *dyngraph.Snapshot {
	t.Helper()
	g := dyngraph.New()
	for id, v := range vals {
		require.NoError(t, g.AddNode(id, map[string]string{label: v}))
	}
	require.NoError(t, g.AddContact("A", "B", tick))
	require.NoError(t, g.AddContact("A", "C", tick))
	require.NoError(t, g.AddContact("B", "C", tick))
	s, err := g.Slice(tick, tick)
	require.NoError(t, err)

	return s
}

// TestBuildShells groups by distance, excludes the zero shell, and
// sorts members.
func TestBuildShells(t *testing.T) {
	s := triangleAt(t, 1, "opinion", map[string]string{"A": "x", "B": "x", "C": "x"})

	shells, err := conformity.ExportedBuildShells(s, map[string]int{
		"A": 0, // self distance: excluded
		"C": 1,
		"B": 1,
	})
	require.NoError(t, err)
	require.Len(t, shells, 1)
	assert.Equal(t, []string{"B", "C"}, shells[1], "members sorted")
}

// TestBuildShells_UpstreamErrors rejects unknown nodes and negative
// distances.
func TestBuildShells_UpstreamErrors(t *testing.T) {
	s := triangleAt(t, 1, "opinion", map[string]string{"A": "x", "B": "x", "C": "x"})

	_, err := conformity.ExportedBuildShells(s, map[string]int{"Z": 1})
	assert.ErrorIs(t, err, conformity.ErrUpstreamData, "node outside snapshot")

	_, err = conformity.ExportedBuildShells(s, map[string]int{"B": -2})
	assert.ErrorIs(t, err, conformity.ErrUpstreamData, "negative distance")
}

// TestNormDivisor checks the alpha=1, maxDist=3 divisor: 1 + 1/2 + 1/3.
func TestNormDivisor(t *testing.T) {
	assert.InDelta(t, 1.8333333333, conformity.ExportedNormDivisor(3, 1), 1e-9)
	assert.InDelta(t, 1.0, conformity.ExportedNormDivisor(1, 2.5), 1e-12,
		"depth 1 normalizes by exactly 1 for any alpha")
}

// TestProfileSet expands all combinations of sizes 1..size.
func TestProfileSet(t *testing.T) {
	profiles := conformity.ExportedProfileSet([]string{"a", "b", "c"}, 2)

	keys := make([]string, len(profiles))
	for i, p := range profiles {
		keys[i] = conformity.ProfileKey(p)
	}
	assert.Equal(t, []string{"a", "b", "c", "a_b", "a_c", "b_c"}, keys)
}

// TestProfileSimilarity_ExactMatch: with every shell member sharing the
// source's value, the score equals the mean local-homogeneity weight.
func TestProfileSimilarity_ExactMatch(t *testing.T) {
	s := triangleAt(t, 1, "opinion", map[string]string{"A": "x", "B": "x", "C": "x"})

	sim, err := conformity.ExportedProfileSimilarity(s, "A", []string{"B", "C"}, []string{"opinion"}, nil)
	require.NoError(t, err)
	// Every neighbor of B and C shares their value, so each weight is 1.
	assert.InDelta(t, 1.0, sim, 1e-12)
}

// TestProfileSimilarity_Disagreement: a lone dissenter is weighted by
// the smoothed homogeneity policy, not erased.
func TestProfileSimilarity_Disagreement(t *testing.T) {
	s := triangleAt(t, 1, "opinion", map[string]string{"A": "x", "B": "x", "C": "y"})

	// C disagrees with A; no neighbor of C shares C's value, so its
	// homogeneity smooths to 1 and the indicator -1 passes through.
	sim, err := conformity.ExportedProfileSimilarity(s, "A", []string{"C"}, []string{"opinion"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-12)
}

// TestProfileSimilarity_Hierarchy grades disagreement by rank gap.
func TestProfileSimilarity_Hierarchy(t *testing.T) {
	hier := conformity.Hierarchies{
		"rank": {"low": 0, "mid": 1, "high": 2},
	}
	s := triangleAt(t, 1, "rank", map[string]string{"A": "low", "B": "mid", "C": "high"})

	// A vs B: -|0-1|/2 = -0.5; B's homogeneity smooths to 1.
	sim, err := conformity.ExportedProfileSimilarity(s, "A", []string{"B"}, []string{"rank"}, hier)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, sim, 1e-12)

	// A vs C: the full rank gap, -|0-2|/2 = -1.
	sim, err = conformity.ExportedProfileSimilarity(s, "A", []string{"C"}, []string{"rank"}, hier)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-12)
}

// TestProfileSimilarity_HierarchyFallbacks: unusable hierarchies fall
// back to the fixed -1 penalty.
func TestProfileSimilarity_HierarchyFallbacks(t *testing.T) {
	s := triangleAt(t, 1, "rank", map[string]string{"A": "low", "B": "mid", "C": "mid"})

	for name, hier := range map[string]conformity.Hierarchies{
		"no hierarchy for label": {"other": {"p": 0, "q": 1}},
		"value missing a rank":   {"rank": {"low": 0, "high": 2}},
		"degenerate hierarchy":   {"rank": {"low": 0}},
	} {
		sim, err := conformity.ExportedProfileSimilarity(s, "A", []string{"B"}, []string{"rank"}, hier)
		require.NoError(t, err, name)
		// B's only same-value neighbor is C, giving homogeneity 1/2.
		assert.InDelta(t, -0.5, sim, 1e-12, name)
	}
}

// TestProfileSimilarity_MultiLabelProduct: profile score is the
// product of per-label shell means.
func TestProfileSimilarity_MultiLabelProduct(t *testing.T) {
	g := dyngraph.New()
	require.NoError(t, g.AddNode("A", map[string]string{"opinion": "x", "group": "g1"}))
	require.NoError(t, g.AddNode("B", map[string]string{"opinion": "x", "group": "g2"}))
	require.NoError(t, g.AddContact("A", "B", 1))
	s, err := g.Slice(1, 1)
	require.NoError(t, err)

	// opinion agrees (+1·1), group disagrees (-1·1): product is -1.
	sim, err := conformity.ExportedProfileSimilarity(s, "A", []string{"B"}, []string{"opinion", "group"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-12)
}

// TestProfileSimilarity_Preconditions covers the empty shell and the
// missing-label upstream failure.
func TestProfileSimilarity_Preconditions(t *testing.T) {
	s := triangleAt(t, 1, "opinion", map[string]string{"A": "x", "B": "x", "C": "x"})

	_, err := conformity.ExportedProfileSimilarity(s, "A", nil, []string{"opinion"}, nil)
	assert.ErrorIs(t, err, conformity.ErrEmptyShell)

	_, err = conformity.ExportedProfileSimilarity(s, "A", []string{"B"}, []string{"unset"}, nil)
	assert.ErrorIs(t, err, conformity.ErrUpstreamData)
}
