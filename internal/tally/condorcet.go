package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// CondorcetFromMatrix finds the Condorcet winner of a pairwise comparison
// matrix: the candidate whose row beats every other candidate head to
// head. It returns NoWinner for a Condorcet cycle or pairwise tie. This
// is not a completion method and takes no tie-breaker; callers that need
// a fallback use Black.
func CondorcetFromMatrix(m PreferenceMatrix) (domain.Winner, error) {
	if err := m.Validate(); err != nil {
		return domain.NoWinner, err
	}
	if m.Candidates() == 0 {
		return domain.NoWinner, domain.ErrNoCandidates
	}

	n := m.Candidates()
	for runner := 0; runner < n; runner++ {
		wins := 0
		for opponent := 0; opponent < n; opponent++ {
			if runner == opponent {
				continue
			}
			if m[runner][opponent] > m[opponent][runner] {
				wins++
			}
		}
		if wins == n-1 {
			return domain.Winner(runner), nil
		}
	}
	return domain.NoWinner, nil
}

// Condorcet finds the Condorcet winner of a ranked ballot election, or
// NoWinner when pairwise preferences form a cycle.
func Condorcet(e domain.RankedBallots) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}
	if e.Candidates() == 1 {
		return domain.Winner(0), nil
	}

	matrix, err := MatrixFromRanked(e)
	if err != nil {
		return domain.NoWinner, err
	}
	return CondorcetFromMatrix(matrix)
}

// allCondorcetFromMatrix returns every candidate with the greatest number
// of pairwise wins. With a true Condorcet winner the result is a single
// candidate; in a cycle it is the tied top of the beat graph. Used by
// STAR's scoring-round tie-break.
func allCondorcetFromMatrix(m PreferenceMatrix) []int {
	n := m.Candidates()
	wins := make([]int, n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a != b && m[a][b] > m[b][a] {
				wins[a]++
			}
		}
	}
	_, top := leaders(wins)
	return top
}
