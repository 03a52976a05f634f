// File: conformity.go
// Role: Single-window delta-conformity pipeline: slice, distances,
// shells, aggregation, normalization.
//
// Parallelism:
//   - The per-node loop fans out across Options.Workers goroutines.
//     Each goroutine reads only immutable inputs and writes only its
//     own slot of the per-node slice; the errgroup Wait is the sole
//     barrier, no locks are held.
package conformity

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/talvikra/tempora/dyngraph"
)

// DeltaConformity computes the conformity score of every node of the
// snapshot for the inclusive window [start, start+delta], for every
// requested damping factor and label profile.
//
// The result is keyed alpha key → profile key → node; every snapshot
// node is present under every key, scoring 0 when it reaches no node
// within the window.
//
// Errors: ErrGraphNil, ErrNoAlphas, ErrBadAlpha, ErrNoLabels,
// ErrProfileSize, ErrBadDelta, temporalpath.ErrUnknownPolicy before
// any computation; ErrUpstreamData or a context error afterwards.
func DeltaConformity(g Dynamic, start, delta int, opts *Options) (Result, error) {
	o, err := normalized(g, delta, opts)
	if err != nil {
		return nil, err
	}

	snap, err := g.Slice(start, start+delta)
	if err != nil {
		return nil, fmt.Errorf("%w: time slice [%d,%d]: %v", ErrUpstreamData, start, start+delta, err)
	}
	dist, err := o.Oracle(snap, o.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: path oracle: %v", ErrUpstreamData, err)
	}

	profiles := profileSet(o.Labels, o.ProfileSize)
	nodes := snap.Nodes()

	// Independent per-node accumulators; merged after the barrier.
	perNode := make([]map[string]map[string]float64, len(nodes))
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)
	for i, u := range nodes {
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			scores, err := nodeScores(snap, u, dist[u], profiles, &o)
			if err != nil {
				return err
			}
			perNode[i] = scores

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	res := make(Result, len(o.Alphas))
	for _, alpha := range o.Alphas {
		res[AlphaKey(alpha)] = make(map[string]map[string]float64, len(profiles))
		for _, p := range profiles {
			res[AlphaKey(alpha)][ProfileKey(p)] = make(map[string]float64, len(nodes))
		}
	}
	for i, u := range nodes {
		for aKey, byProfile := range perNode[i] {
			for pKey, score := range byProfile {
				res[aKey][pKey][u] = score
			}
		}
	}

	return res, nil
}

// nodeScores runs the aggregator and normalizer for one source node,
// returning its alpha key → profile key → score accumulator. A source
// with no reachable nodes keeps every score at 0 and skips
// normalization.
func nodeScores(s *dyngraph.Snapshot, u string, dist map[string]int, profiles [][]string, o *Options) (map[string]map[string]float64, error) {
	shells, err := buildShells(s, dist)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]map[string]float64, len(o.Alphas))
	for _, alpha := range o.Alphas {
		byProfile := make(map[string]float64, len(profiles))
		for _, p := range profiles {
			byProfile[ProfileKey(p)] = 0
		}
		scores[AlphaKey(alpha)] = byProfile
	}
	if len(shells) == 0 {
		return scores, nil
	}

	// Accumulate sim/d^alpha per shell; a pure sum, order-invariant.
	dists := shellDistances(shells)
	for _, d := range dists {
		for _, p := range profiles {
			sim, err := profileSimilarity(s, u, shells[d], p, o.Hierarchies)
			if err != nil {
				return nil, err
			}
			for _, alpha := range o.Alphas {
				scores[AlphaKey(alpha)][ProfileKey(p)] += sim / math.Pow(float64(d), alpha)
			}
		}
	}

	// Normalize by the divisor of this node's own reachability depth.
	maxDist := dists[len(dists)-1]
	for _, alpha := range o.Alphas {
		norm := normDivisor(maxDist, alpha)
		byProfile := scores[AlphaKey(alpha)]
		for pKey := range byProfile {
			byProfile[pKey] /= norm
		}
	}

	return scores, nil
}

// normDivisor is Σ_{k=1..maxDist} k^-alpha, the per-node
// normalization divisor.
func normDivisor(maxDist int, alpha float64) float64 {
	terms := make([]float64, maxDist)
	for k := 1; k <= maxDist; k++ {
		terms[k-1] = math.Pow(float64(k), -alpha)
	}

	return floats.Sum(terms)
}

// profileSet expands the requested labels into every combination of
// sizes 1..size, in lexicographic index order.
func profileSet(labels []string, size int) [][]string {
	var profiles [][]string
	for k := 1; k <= size; k++ {
		for _, idx := range combin.Combinations(len(labels), k) {
			p := make([]string, k)
			for i, j := range idx {
				p[i] = labels[j]
			}
			profiles = append(profiles, p)
		}
	}

	return profiles
}
