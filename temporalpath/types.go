// Package temporalpath declares the Policy, Path, Pair, and Annotation
// types plus sentinel errors for temporal path classification.
package temporalpath

import (
	"errors"
	"fmt"

	"github.com/talvikra/tempora/dyngraph"
)

// Sentinel errors for temporal path operations.
var (
	// ErrSnapshotNil is returned when a nil snapshot pointer is passed.
	ErrSnapshotNil = errors.New("temporalpath: snapshot is nil")

	// ErrUnknownPolicy is returned for an unrecognized policy name or value.
	ErrUnknownPolicy = errors.New("temporalpath: unknown path policy")

	// ErrNoPaths is returned when Annotate receives an empty path set.
	ErrNoPaths = errors.New("temporalpath: no paths to annotate")
)

// Policy selects which representative of a pair's time-respecting path
// set defines the temporal distance.
type Policy uint8

const (
	// Shortest selects the path with the fewest hops.
	Shortest Policy = iota

	// Fastest selects the path with the smallest duration.
	Fastest

	// Foremost selects the path with the earliest arrival tick.
	Foremost

	// FastestShortest selects the fewest-hop path among the fastest.
	FastestShortest

	// ShortestFastest selects the smallest-duration path among the shortest.
	ShortestFastest
)

// policyNames maps Policy values to their canonical names.
var policyNames = [...]string{
	Shortest:        "shortest",
	Fastest:         "fastest",
	Foremost:        "foremost",
	FastestShortest: "fastest_shortest",
	ShortestFastest: "shortest_fastest",
}

// String returns the canonical policy name, or "invalid" out of range.
func (p Policy) String() string {
	if int(p) >= len(policyNames) {
		return "invalid"
	}

	return policyNames[p]
}

// Valid reports whether p is one of the five defined policies.
func (p Policy) Valid() bool { return int(p) < len(policyNames) }

// ParsePolicy resolves a canonical policy name to its Policy value.
// Returns ErrUnknownPolicy for anything else.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Path is a time-respecting path: a contact sequence with strictly
// increasing timestamps connecting two snapshot nodes.
type Path []dyngraph.Contact

// Hops returns the number of contacts traversed.
func (p Path) Hops() int { return len(p) }

// Departure returns the tick of the first contact.
// Precondition: the path is non-empty.
func (p Path) Departure() int { return p[0].T }

// Arrival returns the tick of the last contact.
// Precondition: the path is non-empty.
func (p Path) Arrival() int { return p[len(p)-1].T }

// Duration returns Arrival minus Departure.
// Precondition: the path is non-empty.
func (p Path) Duration() int { return p.Arrival() - p.Departure() }

// Pair is an ordered (source, target) node pair.
type Pair struct {
	From string
	To   string
}

// Annotation holds one representative path per policy for a single
// ordered pair. All representatives are drawn from the same path set,
// so each is non-empty.
type Annotation struct {
	Shortest        Path
	Fastest         Path
	Foremost        Path
	FastestShortest Path
	ShortestFastest Path
}

// Path returns the representative for the given policy.
func (a Annotation) Path(p Policy) (Path, error) {
	switch p {
	case Shortest:
		return a.Shortest, nil
	case Fastest:
		return a.Fastest, nil
	case Foremost:
		return a.Foremost, nil
	case FastestShortest:
		return a.FastestShortest, nil
	case ShortestFastest:
		return a.ShortestFastest, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, p)
	}
}

// Distance returns the hop count of the policy's representative path,
// the temporal distance between the pair's endpoints.
func (a Annotation) Distance(p Policy) (int, error) {
	path, err := a.Path(p)
	if err != nil {
		return 0, err
	}

	return path.Hops(), nil
}
