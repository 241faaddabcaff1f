package tally

import (
	"sort"

	"github.com/voteforge/voteforge/internal/domain"
)

// FPTP finds the winner of an election using first-past-the-post /
// plurality rule: the candidate with the largest number of first
// preferences wins.
func FPTP(e domain.RankedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}
	return FPTPFromFirstPrefs(e.FirstPreferences(), e.Candidates(), tb)
}

// FPTPFromFirstPrefs tallies single-mark ballots: prefs holds each
// voter's sole choice. Accepting this form lets callers tally elections
// where only first preferences were recorded.
func FPTPFromFirstPrefs(prefs []int, nCands int, tb domain.TieBreaker) (domain.Winner, error) {
	tallies, err := countFirstPrefs(prefs, nCands)
	if err != nil {
		return domain.NoWinner, err
	}
	_, tied := leaders(tallies)
	return tb.Keep(tied), nil
}

// SNTV finds the winners of an election under the single non-transferable
// vote rule, the multi-winner generalization of FPTP: the seats
// candidates with the most first preferences win. The result is sorted by
// candidate index; a nil result means a boundary tie was left unresolved
// by the tie-breaker.
func SNTV(e domain.RankedBallots, seats int, tb domain.TieBreaker) ([]int, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if seats < 1 || seats > e.Candidates() {
		return nil, domain.ErrInvalidConfiguration
	}

	tallies, err := countFirstPrefs(e.FirstPreferences(), e.Candidates())
	if err != nil {
		return nil, err
	}

	// Candidates with no first-preference support cannot take a seat.
	supported := make([]int, 0, len(tallies))
	for c, t := range tallies {
		if t > 0 {
			supported = append(supported, c)
		}
	}
	if len(supported) <= seats {
		return supported, nil
	}

	order := make([]int, 0, len(supported))
	order = append(order, supported...)
	sort.SliceStable(order, func(a, b int) bool {
		return tallies[order[a]] > tallies[order[b]]
	})

	// Ties only matter when they straddle the seat boundary.
	boundary := tallies[order[seats-1]]
	if tallies[order[seats]] != boundary {
		winners := order[:seats]
		sort.Ints(winners)
		return winners, nil
	}

	winners := make([]int, 0, seats)
	var tied []int
	for _, c := range supported {
		switch {
		case tallies[c] > boundary:
			winners = append(winners, c)
		case tallies[c] == boundary:
			tied = append(tied, c)
		}
	}
	picked := tb.KeepN(tied, seats-len(winners))
	if picked == nil {
		return nil, nil
	}
	winners = append(winners, picked...)
	sort.Ints(winners)
	return winners, nil
}

func countFirstPrefs(prefs []int, nCands int) ([]int, error) {
	if len(prefs) == 0 {
		return nil, domain.ErrNoVoters
	}
	if nCands < 1 {
		return nil, domain.ErrNoCandidates
	}
	tallies := make([]int, nCands)
	for i, c := range prefs {
		if c < 0 || c >= nCands {
			return nil, &domain.BallotError{Voter: i, Err: domain.ErrBallotRange}
		}
		tallies[c]++
	}
	return tallies, nil
}
