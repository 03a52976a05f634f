// File: sliding.go
// Role: Sliding-window orchestration over the temporal index.
package conformity

// SlidingDeltaConformity repeats the single-window pipeline over
// consecutive window starts: for every temporal id t with
// t+delta < last id, the window [t, t+delta] is computed and
// (t+delta, score) appended to each node's series. Windows are
// independent; series are ordered by increasing t.
//
// The trend is fully keyed up front from the graph's node catalog, so
// a graph whose temporal span admits no valid window yields empty
// series for every (alpha, profile, node), not an error. Nodes absent
// from a given window's snapshot receive no point for that window.
//
// Errors: the same validation errors as DeltaConformity, plus any
// window's computation error.
func SlidingDeltaConformity(g Dynamic, delta int, opts *Options) (Trend, error) {
	o, err := normalized(g, delta, opts)
	if err != nil {
		return nil, err
	}

	profiles := profileSet(o.Labels, o.ProfileSize)
	nodes := g.Nodes()
	trend := make(Trend, len(o.Alphas))
	for _, alpha := range o.Alphas {
		trend[AlphaKey(alpha)] = make(map[string]map[string][]TimedScore, len(profiles))
		for _, p := range profiles {
			series := make(map[string][]TimedScore, len(nodes))
			for _, u := range nodes {
				series[u] = []TimedScore{}
			}
			trend[AlphaKey(alpha)][ProfileKey(p)] = series
		}
	}

	tids := g.TemporalIDs()
	if len(tids) == 0 {
		return trend, nil
	}
	last := tids[len(tids)-1]
	for _, t := range tids {
		if t+delta >= last {
			continue
		}
		res, err := DeltaConformity(g, t, delta, &o)
		if err != nil {
			return nil, err
		}
		for aKey, byProfile := range res {
			for pKey, byNode := range byProfile {
				for u, score := range byNode {
					trend[aKey][pKey][u] = append(trend[aKey][pKey][u],
						TimedScore{Tick: t + delta, Score: score})
				}
			}
		}
	}

	return trend, nil
}
