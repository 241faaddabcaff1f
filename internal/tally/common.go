// Package tally implements the voting-method algorithms and the pairwise
// aggregate structures some of them share. Each method is polymorphic
// over exactly one ballot representation and returns a Winner together
// with a defined tie-break, so exact ties are never resolved by accident
// of iteration order.
package tally

import (
	"errors"
)

// Errors reported by tally methods.
var (
	// ErrFormatMismatch is returned when a method receives a ballot set
	// in a representation it does not accept.
	ErrFormatMismatch = errors.New("ballot format not accepted by method")

	// ErrUnknownMethod is returned when looking up an unregistered
	// method name.
	ErrUnknownMethod = errors.New("unknown voting method")

	// ErrNotSquare is returned for a malformed preference matrix.
	ErrNotSquare = errors.New("preference matrix must be square")
)

// leaders returns the highest tally and every candidate holding it.
func leaders(tallies []int) (highest int, tied []int) {
	highest = tallies[0]
	for _, t := range tallies[1:] {
		if t > highest {
			highest = t
		}
	}
	for c, t := range tallies {
		if t == highest {
			tied = append(tied, c)
		}
	}
	return highest, tied
}

// leadersFloat is the float64 counterpart of leaders, using exact
// equality: score sums derived from identical inputs are bit-identical,
// so exact comparison is the reproducible choice.
func leadersFloat(tallies []float64) (highest float64, tied []int) {
	highest = tallies[0]
	for _, t := range tallies[1:] {
		if t > highest {
			highest = t
		}
	}
	for c, t := range tallies {
		if t == highest {
			tied = append(tied, c)
		}
	}
	return highest, tied
}

// hasMajority reports whether count is a strict majority of voters.
func hasMajority(count, voters int) bool { return 2*count > voters }
