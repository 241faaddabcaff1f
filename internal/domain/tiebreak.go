package domain

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// TiePolicy selects the strategy for resolving exact ties.
type TiePolicy string

// Supported tie-break policies.
const (
	// TieNone leaves ties unresolved: tallies report NoWinner.
	TieNone TiePolicy = "none"

	// TieOrder favors lower candidate indices deterministically. Winner
	// ties keep the lowest tied index; elimination ties remove the
	// highest tied index, so the lower-indexed candidate survives.
	TieOrder TiePolicy = "order"

	// TieRandom resolves ties uniformly at random from an explicit
	// random source.
	TieRandom TiePolicy = "random"
)

// ErrNilRandSource is returned when TieRandom is requested without a
// random source.
var ErrNilRandSource = errors.New("random tie-break requires a random source")

// TieBreaker is the single, shared tie-break policy applied by every
// tally method that can encounter exact ties. Making it an explicit value
// (rather than an accident of iteration order) keeps every method's tie
// behavior documented and testable.
//
// The zero value behaves as TieNone.
type TieBreaker struct {
	policy TiePolicy
	rng    *rand.Rand
}

// NewTieBreaker constructs a TieBreaker for the given policy. TieRandom
// requires a non-nil rng; the other policies ignore it.
func NewTieBreaker(policy TiePolicy, rng *rand.Rand) (TieBreaker, error) {
	switch policy {
	case TieNone, TieOrder:
		return TieBreaker{policy: policy}, nil
	case TieRandom:
		if rng == nil {
			return TieBreaker{}, ErrNilRandSource
		}
		return TieBreaker{policy: policy, rng: rng}, nil
	default:
		return TieBreaker{}, fmt.Errorf("%w: unknown tie policy %q", ErrInvalidConfiguration, policy)
	}
}

// Unbroken returns a TieBreaker that never resolves ties.
func Unbroken() TieBreaker { return TieBreaker{policy: TieNone} }

// ByOrder returns the deterministic lowest-index-favoring TieBreaker.
func ByOrder() TieBreaker { return TieBreaker{policy: TieOrder} }

// Policy returns the configured tie policy.
func (tb TieBreaker) Policy() TiePolicy {
	if tb.policy == "" {
		return TieNone
	}
	return tb.policy
}

// Keep picks the winner among candidates tied for the best tally.
// It returns NoWinner when the tie cannot be resolved.
func (tb TieBreaker) Keep(tied []int) Winner {
	switch {
	case len(tied) == 0:
		return NoWinner
	case len(tied) == 1:
		return Winner(tied[0])
	}
	switch tb.Policy() {
	case TieOrder:
		return Winner(minOf(tied))
	case TieRandom:
		return Winner(tied[tb.rng.Intn(len(tied))])
	default:
		return NoWinner
	}
}

// KeepN picks n winners among tied candidates, for multi-winner rules and
// runoff finalist selection. It returns nil when the tie cannot be
// resolved. The result is not ordered by preference.
func (tb TieBreaker) KeepN(tied []int, n int) []int {
	if n <= 0 || len(tied) < n {
		return nil
	}
	if len(tied) == n {
		out := make([]int, n)
		copy(out, tied)
		return out
	}
	switch tb.Policy() {
	case TieOrder:
		sorted := make([]int, len(tied))
		copy(sorted, tied)
		sort.Ints(sorted)
		return sorted[:n]
	case TieRandom:
		shuffled := make([]int, len(tied))
		copy(shuffled, tied)
		tb.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled[:n]
	default:
		return nil
	}
}

// Eliminate picks the candidate to remove among candidates tied for
// elimination. Under TieOrder the highest tied index is removed, so lower
// indices are consistently favored by both Keep and Eliminate. It returns
// NoWinner when the tie cannot be resolved.
func (tb TieBreaker) Eliminate(tied []int) Winner {
	switch {
	case len(tied) == 0:
		return NoWinner
	case len(tied) == 1:
		return Winner(tied[0])
	}
	switch tb.Policy() {
	case TieOrder:
		return Winner(maxOf(tied))
	case TieRandom:
		return Winner(tied[tb.rng.Intn(len(tied))])
	default:
		return NoWinner
	}
}

func minOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
