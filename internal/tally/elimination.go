package tally

import (
	"errors"

	"github.com/voteforge/voteforge/internal/domain"
)

// errNoConvergence guards the elimination loops; the round bound makes it
// unreachable for valid ballots.
var errNoConvergence = errors.New("elimination rounds did not converge")

// IRV finds the winner of a ranked ballot election using instant-runoff
// voting (Hare's method). Each round, a candidate holding a strict
// majority of current first preferences wins; otherwise the remaining
// candidate with the fewest current first preferences is eliminated and
// each of their ballots transfers to the voter's next-most-preferred
// remaining candidate. Remaining candidates with zero current first
// preferences are eliminated alongside the loser; they cannot win and
// removing them keeps the round count tight.
//
// Each voter's current first preference is re-derived per round by
// scanning their full ranking for the first remaining candidate, giving
// O(rounds * voters * candidates) overall, with rounds bounded by the
// candidate count. Elimination ties are resolved by the tie-breaker;
// under TieNone they yield NoWinner.
func IRV(e domain.RankedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	nVoters, nCands := e.Voters(), e.Candidates()
	eliminated := make([]bool, nCands)

	for round := 0; round < nCands; round++ {
		tallies := currentTallies(e, eliminated, scanForward)

		highest, top := leaders(tallies)
		if hasMajority(highest, nVoters) {
			return domain.Winner(top[0]), nil
		}

		// Eliminate the remaining candidate with the fewest votes,
		// ignoring unsupported candidates which are swept out below.
		lowest := -1
		for c, t := range tallies {
			if eliminated[c] || t == 0 {
				continue
			}
			if lowest == -1 || t < lowest {
				lowest = t
			}
		}
		var losers []int
		for c, t := range tallies {
			if !eliminated[c] && t == lowest {
				losers = append(losers, c)
			}
		}

		loser := tb.Eliminate(losers)
		if !loser.Valid() {
			return domain.NoWinner, nil
		}
		eliminated[loser.Index()] = true
		for c, t := range tallies {
			if !eliminated[c] && t == 0 {
				eliminated[c] = true
			}
		}
	}
	return domain.NoWinner, errNoConvergence
}

// Coombs finds the winner of a ranked ballot election using Coombs'
// method. The elimination framework matches IRV, but each round removes
// the remaining candidate ranked last by the most voters instead of the
// one ranked first by the fewest.
func Coombs(e domain.RankedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	nVoters, nCands := e.Voters(), e.Candidates()
	eliminated := make([]bool, nCands)

	for round := 0; round < nCands; round++ {
		tallies := currentTallies(e, eliminated, scanForward)

		highest, top := leaders(tallies)
		if hasMajority(highest, nVoters) {
			return domain.Winner(top[0]), nil
		}

		lastTallies := currentTallies(e, eliminated, scanBackward)
		var hated []int
		mostHated := -1
		for c, t := range lastTallies {
			if eliminated[c] {
				continue
			}
			switch {
			case t > mostHated:
				mostHated = t
				hated = []int{c}
			case t == mostHated:
				hated = append(hated, c)
			}
		}

		loser := tb.Eliminate(hated)
		if !loser.Valid() {
			return domain.NoWinner, nil
		}
		eliminated[loser.Index()] = true
	}
	return domain.NoWinner, errNoConvergence
}

type scanDirection bool

const (
	scanForward  scanDirection = true
	scanBackward scanDirection = false
)

// currentTallies counts, per candidate, the voters whose highest-ranked
// (scanForward) or lowest-ranked (scanBackward) remaining candidate it is.
func currentTallies(e domain.RankedBallots, eliminated []bool, dir scanDirection) []int {
	tallies := make([]int, len(eliminated))
	for _, ballot := range e {
		if dir == scanForward {
			for _, c := range ballot {
				if !eliminated[c] {
					tallies[c]++
					break
				}
			}
		} else {
			for i := len(ballot) - 1; i >= 0; i-- {
				if c := ballot[i]; !eliminated[c] {
					tallies[c]++
					break
				}
			}
		}
	}
	return tallies
}
