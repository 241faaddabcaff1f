package tally

import (
	"github.com/voteforge/voteforge/internal/domain"
)

// Approval finds the winner of an election using approval voting: the
// candidate with the largest number of approvals wins.
func Approval(e domain.ApprovalBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	tallies := make([]int, e.Candidates())
	for _, ballot := range e {
		for c, v := range ballot {
			tallies[c] += v
		}
	}

	_, tied := leaders(tallies)
	return tb.Keep(tied), nil
}

// CombinedApproval finds the winner of an election using combined
// approval (dis&approval) voting: the candidate with the largest number
// of approvals minus disapprovals wins. Ballots carry +1 for approval,
// -1 for disapproval, 0 for neutral.
func CombinedApproval(e domain.CombinedBallots, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	tallies := make([]int, e.Candidates())
	for _, ballot := range e {
		for c, v := range ballot {
			tallies[c] += v
		}
	}

	_, tied := leaders(tallies)
	return tb.Keep(tied), nil
}

// ApprovalFromScores derives approval ballots from score ballots by a
// threshold rule, counting any score strictly above cutoff as an
// approval, then tallies them as approval voting.
func ApprovalFromScores(e domain.ScoreBallots, cutoff float64, tb domain.TieBreaker) (domain.Winner, error) {
	if err := e.Validate(); err != nil {
		return domain.NoWinner, err
	}

	tallies := make([]int, e.Candidates())
	for _, ballot := range e {
		for c, s := range ballot {
			if s > cutoff {
				tallies[c]++
			}
		}
	}

	_, tied := leaders(tallies)
	return tb.Keep(tied), nil
}
