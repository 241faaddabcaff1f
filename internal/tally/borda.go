package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// Borda finds the winner of a ranked ballot election using the Borda
// count: a ballot awards candidates-1 points to its top-ranked candidate,
// one point fewer for each rank below, and zero to its last-ranked
// candidate. All points are summed and the highest total wins.
// The point totals are deterministic because ranked ballots admit no
// indifference.
func Borda(e domain.RankedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	n := e.Candidates()
	points := make([]int, n)
	for _, ballot := range e {
		for rank, c := range ballot {
			points[c] += n - 1 - rank
		}
	}

	_, tied := leaders(points)
	return tb.Keep(tied), nil
}
