// Package conformity declares options, result types, and sentinel
// errors for the delta-conformity engine.
package conformity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/talvikra/tempora/dyngraph"
	"github.com/talvikra/tempora/temporalpath"
)

// Sentinel errors for conformity computation.
var (
	// ErrGraphNil is returned when a nil dynamic graph is passed.
	ErrGraphNil = errors.New("conformity: dynamic graph is nil")

	// ErrNoAlphas is returned when no damping factor is requested.
	ErrNoAlphas = errors.New("conformity: at least one alpha is required")

	// ErrBadAlpha is returned for a non-positive damping factor.
	ErrBadAlpha = errors.New("conformity: alphas must be positive")

	// ErrNoLabels is returned when no label is requested.
	ErrNoLabels = errors.New("conformity: at least one label is required")

	// ErrProfileSize is returned when ProfileSize is negative or
	// exceeds the number of requested labels.
	ErrProfileSize = errors.New("conformity: profile size out of range")

	// ErrBadDelta is returned for a negative window length.
	ErrBadDelta = errors.New("conformity: delta must be non-negative")

	// ErrEmptyShell indicates a precondition violation: a distance
	// shell with no members reached the similarity scorer.
	ErrEmptyShell = errors.New("conformity: empty distance shell")

	// ErrUpstreamData indicates inconsistent snapshot or oracle data.
	ErrUpstreamData = errors.New("conformity: inconsistent upstream data")
)

// Dynamic is the capability the engine needs from a dynamic graph:
// materializing inclusive-window snapshots and exposing the temporal
// index and node catalog. *dyngraph.DynGraph satisfies it.
type Dynamic interface {
	// Slice materializes the static view for the inclusive window [from, to].
	Slice(from, to int) (*dyngraph.Snapshot, error)

	// TemporalIDs returns the sorted ticks carrying interaction activity.
	TemporalIDs() []int

	// Nodes returns all registered node IDs, sorted.
	Nodes() []string
}

// Oracle yields, for every ordered reachable pair of snapshot nodes,
// the time-respecting distance under the given policy. Pairs with no
// valid path must be absent. The default is temporalpath.Distances.
type Oracle func(s *dyngraph.Snapshot, policy temporalpath.Policy) (map[string]map[string]int, error)

// Hierarchies maps a label name to the ordinal rank of each of its
// categorical values, enabling graded (non-binary) disagreement.
type Hierarchies map[string]map[string]int

// Options configures a delta-conformity computation.
//
// Zero values are completed by DeltaConformity/SlidingDeltaConformity:
// ProfileSize 0 means 1, Workers <= 0 means GOMAXPROCS, a nil Ctx
// means context.Background(), and a nil Oracle means the built-in
// time-respecting path oracle. Alphas and Labels have no defaults and
// must be non-empty.
type Options struct {
	// Alphas are the damping factors; larger values suppress the
	// contribution of distant shells faster. All must be positive.
	Alphas []float64

	// Labels are the categorical attribute dimensions to score.
	Labels []string

	// ProfileSize bounds the label combinations evaluated jointly:
	// all profiles of sizes 1..ProfileSize are scored.
	ProfileSize int

	// Hierarchies optionally grade disagreement per label; labels
	// without an entry fall back to the fixed -1 penalty.
	Hierarchies Hierarchies

	// Policy selects which time-respecting path defines distance.
	Policy temporalpath.Policy

	// Oracle overrides the distance source, e.g. to replay
	// pre-computed distances.
	Oracle Oracle

	// Workers bounds the parallel per-node fan-out.
	Workers int

	// Ctx cancels the computation between node iterations.
	Ctx context.Context
}

// DefaultOptions returns Options scoring the given labels with
// alpha=1, profile size 1, the shortest-path policy, the built-in
// oracle, and GOMAXPROCS workers.
func DefaultOptions(labels ...string) Options {
	return Options{
		Alphas:      []float64{1},
		Labels:      labels,
		ProfileSize: 1,
		Policy:      temporalpath.Shortest,
		Oracle:      temporalpath.Distances,
		Workers:     runtime.GOMAXPROCS(0),
		Ctx:         context.Background(),
	}
}

// AlphaKey is the result-map key for a damping factor: the shortest
// decimal representation of the float (1 → "1", 0.5 → "0.5").
func AlphaKey(alpha float64) string {
	return strconv.FormatFloat(alpha, 'g', -1, 64)
}

// ProfileKey is the result-map key for a label profile: the labels
// joined by "_" in profile order.
func ProfileKey(profile []string) string {
	return strings.Join(profile, "_")
}

// Result maps alpha key → profile key → node → conformity score.
// Every snapshot node is present under every (alpha, profile) key.
type Result map[string]map[string]map[string]float64

// Score looks up the score for one (alpha, profile, node) triple.
func (r Result) Score(alpha float64, profile []string, node string) (float64, bool) {
	v, ok := r[AlphaKey(alpha)][ProfileKey(profile)][node]

	return v, ok
}

// TimedScore is one point of a sliding-window conformity series:
// the score of the window closing at Tick.
type TimedScore struct {
	Tick  int
	Score float64
}

// Trend maps alpha key → profile key → node → score series ordered by
// increasing window start. Nodes absent from a window's snapshot have
// no point for that window, so series lengths may differ across nodes.
type Trend map[string]map[string]map[string][]TimedScore

// Series looks up the score series for one (alpha, profile, node).
func (tr Trend) Series(alpha float64, profile []string, node string) ([]TimedScore, bool) {
	s, ok := tr[AlphaKey(alpha)][ProfileKey(profile)][node]

	return s, ok
}

// normalized validates opts against the window length and fills in
// defaults, returning a self-contained copy.
func normalized(g Dynamic, delta int, opts *Options) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	if len(o.Alphas) == 0 {
		return Options{}, ErrNoAlphas
	}
	for _, alpha := range o.Alphas {
		if alpha <= 0 {
			return Options{}, fmt.Errorf("%w: got %g", ErrBadAlpha, alpha)
		}
	}
	if len(o.Labels) == 0 {
		return Options{}, ErrNoLabels
	}
	if o.ProfileSize == 0 {
		o.ProfileSize = 1
	}
	if o.ProfileSize < 0 || o.ProfileSize > len(o.Labels) {
		return Options{}, fmt.Errorf("%w: size %d with %d labels",
			ErrProfileSize, o.ProfileSize, len(o.Labels))
	}
	if delta < 0 {
		return Options{}, fmt.Errorf("%w: got %d", ErrBadDelta, delta)
	}
	if !o.Policy.Valid() {
		return Options{}, fmt.Errorf("%w: %d", temporalpath.ErrUnknownPolicy, o.Policy)
	}
	if o.Oracle == nil {
		o.Oracle = temporalpath.Distances
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o, nil
}
