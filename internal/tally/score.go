package tally

import (
	"gonum.org/v1/gonum/floats"

	"github.com/voteforge/voteforge/internal/domain"
)

// Score finds the winner of an election using score (range) voting: the
// candidate with the highest score sum wins.
func Score(e domain.ScoreBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	tallies := scoreSums(e)
	_, tied := leadersFloat(tallies)
	return tb.Keep(tied), nil
}

func scoreSums(e domain.ScoreBallots) []float64 {
	tallies := make([]float64, e.Candidates())
	for _, ballot := range e {
		floats.Add(tallies, ballot)
	}
	return tallies
}
