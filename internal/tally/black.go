package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// Black finds the winner of a ranked ballot election using Black's
// method: the Condorcet winner when one exists, otherwise the Borda
// winner of the same ballots. The tie-breaker applies only to the Borda
// fallback; a Condorcet winner is unique by definition.
func Black(e domain.RankedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	winner, err := Condorcet(e)
	if err != nil {
		return domain.NoWinner, err
	}
	if winner.Valid() {
		return winner, nil
	}
	return Borda(e, tb)
}
