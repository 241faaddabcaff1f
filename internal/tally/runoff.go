package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// Runoff finds the winner of a ranked ballot election using the top-two
// runoff / two-round system: a candidate with a strict majority of first
// preferences wins outright; otherwise the two candidates with the most
// first preferences meet in a runoff decided by pairwise preference over
// the same ballots (the contingent-vote reading of the two-round system).
//
// Three-or-more-way ties for a runoff place are resolved by the
// tie-breaker before the pairwise step; under TieNone they yield
// NoWinner.
func Runoff(e domain.RankedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}
	if e.Candidates() == 1 {
		return domain.Winner(0), nil
	}

	nVoters := e.Voters()
	tallies, err := countFirstPrefs(e.FirstPreferences(), e.Candidates())
	if err != nil {
		return domain.NoWinner, err
	}

	highest, leadSet := leaders(tallies)

	var first, second int
	if len(leadSet) >= 2 {
		finalists := tb.KeepN(leadSet, 2)
		if finalists == nil {
			return domain.NoWinner, nil
		}
		first, second = finalists[0], finalists[1]
	} else {
		first = leadSet[0]
		if hasMajority(highest, nVoters) {
			return domain.Winner(first), nil
		}
		secondBest := -1
		for c, t := range tallies {
			if c != first && t > secondBest {
				secondBest = t
			}
		}
		var secondSet []int
		for c, t := range tallies {
			if c != first && t == secondBest {
				secondSet = append(secondSet, c)
			}
		}
		w := tb.Keep(secondSet)
		if !w.Valid() {
			return domain.NoWinner, nil
		}
		second = w.Index()
	}

	// Runoff round: whichever finalist is ranked above the other on more
	// ballots takes the seat.
	var firstTally, secondTally int
	for _, ballot := range e {
		for _, c := range ballot {
			if c == first {
				firstTally++
				break
			}
			if c == second {
				secondTally++
				break
			}
		}
	}

	switch {
	case firstTally > secondTally:
		return domain.Winner(first), nil
	case secondTally > firstTally:
		return domain.Winner(second), nil
	default:
		return tb.Keep([]int{first, second}), nil
	}
}
