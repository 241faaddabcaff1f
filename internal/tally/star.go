package tally

import (
	"sort"

	"github.com/voteforge/voteforge/internal/domain"
)

// STAR finds the winner of an election using STAR voting (Score Then
// Automatic Runoff): the two highest-scoring candidates advance to an
// automatic runoff decided by which of the pair more voters scored
// strictly higher.
//
// Tie handling follows the published STAR rules: ties in the scoring
// round are broken in favor of the candidate preferred head-to-head by
// more voters; a tied runoff is broken in favor of the higher-scoring
// candidate; anything still tied after both rules is a true tie and
// falls through to the configured tie-breaker.
func STAR(e domain.ScoreBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}
	if e.Candidates() == 1 {
		return domain.Winner(0), nil
	}

	// Scoring round.
	tallies := scoreSums(e)
	highest, firstSet := leadersFloat(tallies)

	var first, second int
	switch {
	case len(firstSet) == 2:
		// Both tied leaders advance straight to the runoff.
		first, second = firstSet[0], firstSet[1]

	case len(firstSet) > 2:
		// Three or more tied for the highest score: if the tied set has
		// a pairwise champion, it would also win any runoff it reached.
		// A cycle leaves the tie-breaker to pick among the pairwise-win
		// leaders.
		winner, leaders, err := condorcetAmong(e, firstSet)
		if err != nil {
			return domain.NoWinner, err
		}
		if winner.Valid() {
			return winner, nil
		}
		return tb.Keep(leaders), nil

	default:
		first = firstSet[0]
		secondBest := secondHighest(tallies, highest)
		var secondSet []int
		for c, t := range tallies {
			if t == secondBest {
				secondSet = append(secondSet, c)
			}
		}
		if len(secondSet) == 1 {
			second = secondSet[0]
		} else {
			w, _, err := condorcetAmong(e, secondSet)
			if err != nil {
				return domain.NoWinner, err
			}
			if w.Valid() {
				second = w.Index()
			} else {
				// A cycle here is a true tie over the whole
				// second-place set, not just its pairwise-win leaders.
				kept := tb.Keep(secondSet)
				if !kept.Valid() {
					return domain.NoWinner, nil
				}
				second = kept.Index()
			}
		}
	}

	// Automatic runoff.
	if w := pairwiseCompare(e, first, second); w.Valid() {
		return w, nil
	}
	if w := scorewiseCompare(tallies, first, second); w.Valid() {
		return w, nil
	}
	return tb.Keep([]int{first, second}), nil
}

// condorcetAmong runs a Condorcet tally on the election restricted to the
// given candidates, with results mapped back to original indices. When
// the subset has no pairwise champion the winner is NoWinner and the
// second return lists the subset's pairwise-win leaders.
func condorcetAmong(e domain.ScoreBallots, subset []int) (domain.Winner, []int, error) {
	matrix, err := MatrixFromScores(restrictScores(e, subset))
	if err != nil {
		return domain.NoWinner, nil, err
	}
	winner, err := CondorcetFromMatrix(matrix)
	if err != nil {
		return domain.NoWinner, nil, err
	}
	if winner.Valid() {
		return domain.Winner(subset[winner.Index()]), nil, nil
	}

	top := allCondorcetFromMatrix(matrix)
	mapped := make([]int, len(top))
	for i, c := range top {
		mapped[i] = subset[c]
	}
	return domain.NoWinner, mapped, nil
}

// restrictScores projects score ballots onto a candidate subset.
func restrictScores(e domain.ScoreBallots, subset []int) domain.ScoreBallots {
	out := make(domain.ScoreBallots, e.Voters())
	for i, ballot := range e {
		row := make([]float64, len(subset))
		for j, c := range subset {
			row[j] = ballot[c]
		}
		out[i] = row
	}
	return out
}

// pairwiseCompare finds the more-preferred of candidates a and b, or
// NoWinner when equally many voters prefer each.
func pairwiseCompare(e domain.ScoreBallots, a, b int) domain.Winner {
	var aBeatsB, bBeatsA int
	for _, ballot := range e {
		switch {
		case ballot[a] > ballot[b]:
			aBeatsB++
		case ballot[b] > ballot[a]:
			bBeatsA++
		}
	}
	switch {
	case aBeatsB > bBeatsA:
		return domain.Winner(a)
	case bBeatsA > aBeatsB:
		return domain.Winner(b)
	default:
		return domain.NoWinner
	}
}

// scorewiseCompare finds the higher-scored of candidates a and b, or
// NoWinner on an exact tie.
func scorewiseCompare(tallies []float64, a, b int) domain.Winner {
	switch {
	case tallies[a] > tallies[b]:
		return domain.Winner(a)
	case tallies[b] > tallies[a]:
		return domain.Winner(b)
	default:
		return domain.NoWinner
	}
}

// secondHighest returns the largest tally strictly below highest.
func secondHighest(tallies []float64, highest float64) float64 {
	sorted := make([]float64, len(tallies))
	copy(sorted, tallies)
	sort.Float64s(sorted)
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] < highest {
			return sorted[i]
		}
	}
	return highest
}
