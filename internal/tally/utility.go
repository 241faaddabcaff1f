package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// UtilityWinner finds the utilitarian winner: the candidate that
// maximizes summed raw utility across all voters. It is the reference
// point for social utility efficiency, a dummy "method" that real
// elections cannot run, and is deliberately excluded from the method
// registry.
func UtilityWinner(u domain.UtilityMatrix, tb domain.TieBreaker) (domain.Winner, error) {
	if err := u.Validate(); err != nil {
		return domain.NoWinner, err
	}

	_, tied := leadersFloat(u.Totals())
	return tb.Keep(tied), nil
}
