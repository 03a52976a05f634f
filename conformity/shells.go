// File: shells.go
// Role: Grouping a source's reachable nodes into distance shells.
package conformity

import (
	"fmt"
	"sort"

	"github.com/talvikra/tempora/dyngraph"
)

// buildShells groups the nodes reachable from one source by integer
// temporal distance, excluding the zero shell (a node does not
// influence its own score). Unreachable nodes are simply absent from
// dist and contribute nothing. Shell membership is sorted so the
// aggregation order is reproducible.
//
// Errors:
//   - ErrUpstreamData if dist references a node outside the snapshot
//     or carries a negative distance.
func buildShells(s *dyngraph.Snapshot, dist map[string]int) (map[int][]string, error) {
	shells := make(map[int][]string)
	for node, d := range dist {
		if !s.HasNode(node) {
			return nil, fmt.Errorf("%w: distance to %q, which is not in the snapshot",
				ErrUpstreamData, node)
		}
		if d < 0 {
			return nil, fmt.Errorf("%w: negative distance %d to %q",
				ErrUpstreamData, d, node)
		}
		if d == 0 {
			continue
		}
		shells[d] = append(shells[d], node)
	}
	for _, nodes := range shells {
		sort.Strings(nodes)
	}

	return shells, nil
}

// shellDistances returns the shell keys sorted ascending; the last
// entry is the source's reachability depth used for normalization.
func shellDistances(shells map[int][]string) []int {
	dists := make([]int, 0, len(shells))
	for d := range shells {
		dists = append(dists, d)
	}
	sort.Ints(dists)

	return dists
}
