package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// PreferenceMatrix is a pairwise comparison matrix of candidate vs
// candidate defeats. Cell (a, b) gives the number of voters who prefer
// candidate a over candidate b. Candidates are not preferred over
// themselves, so the diagonal is all zeros. A matrix is built for the
// method call that needs it and never mutated afterwards.
type PreferenceMatrix [][]int

// Candidates returns the matrix dimension.
func (m PreferenceMatrix) Candidates() int { return len(m) }

// Validate checks that the matrix is square with a zero diagonal.
func (m PreferenceMatrix) Validate() error {
	for i, row := range m {
		if len(row) != len(m) {
			return ErrNotSquare
		}
		if row[i] != 0 {
			return ErrNotSquare
		}
	}
	return nil
}

// MatrixFromRanked converts ranked ballots to a pairwise comparison
// matrix by counting, for every ordered candidate pair (a, b), the voters
// who rank a above b. Runs in O(voters * candidates^2).
//
// Because ranked ballots are strict total orders, the result satisfies
// cell(a,b) + cell(b,a) == voters for every a != b.
func MatrixFromRanked(e domain.RankedBallots) (PreferenceMatrix, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	n := e.Candidates()
	matrix := newMatrix(n)
	for _, ballot := range e {
		// Every candidate beats all candidates ranked after it.
		for i, a := range ballot {
			row := matrix[a]
			for _, b := range ballot[i+1:] {
				row[b]++
			}
		}
	}
	return matrix, nil
}

// MatrixFromScores converts score ballots to a pairwise comparison
// matrix: cell (a, b) counts the voters who scored a strictly higher
// than b. Unlike MatrixFromRanked, voters may be indifferent between a
// pair, so cell(a,b) + cell(b,a) can fall short of the voter count.
// The semantics differ from direct score sums; Condorcet-from-scores
// methods depend on the distinction.
func MatrixFromScores(e domain.ScoreBallots) (PreferenceMatrix, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	n := e.Candidates()
	matrix := newMatrix(n)
	for _, ballot := range e {
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if ballot[a] > ballot[b] {
					matrix[a][b]++
				}
			}
		}
	}
	return matrix, nil
}

func newMatrix(n int) PreferenceMatrix {
	matrix := make(PreferenceMatrix, n)
	cells := make([]int, n*n)
	for i := range matrix {
		matrix[i] = cells[i*n : (i+1)*n]
	}
	return matrix
}
