// Package strategy converts raw voter utilities into concrete ballots.
// Every strategy is a pure function: the same utility matrix and
// parameters always yield the same ballots. Any randomness in an election
// is resolved earlier, when utilities are generated, so repeated trials
// with identical inputs reproduce bit-identical ballots.
package strategy

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/voteforge/voteforge/internal/domain"
)

// HonestRankings converts utilities into ranked ballots by sorting each
// voter's utilities in descending order. Equal utilities are ranked
// lower-index-first; the deterministic rule is required so repeated trials
// with identical inputs produce identical ballots.
func HonestRankings(u domain.UtilityMatrix) (domain.RankedBallots, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	ballots := make(domain.RankedBallots, u.Voters())
	for i, row := range u {
		order := make([]int, len(row))
		for c := range order {
			order[c] = c
		}
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] > row[order[b]]
		})
		ballots[i] = order
	}
	return ballots, nil
}

// HonestNormedScores converts utilities into score ballots. Each voter
// gives their favorite candidate maxScore, their least favorite 0, and
// proportional integer scores in between (rounded to nearest). A voter
// who is exactly indifferent between all candidates scores everyone 0.
func HonestNormedScores(u domain.UtilityMatrix, maxScore int) (domain.ScoreBallots, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if maxScore < 1 {
		return nil, fmt.Errorf("%w: max score must be at least 1, got %d", domain.ErrInvalidConfiguration, maxScore)
	}

	ballots := make(domain.ScoreBallots, u.Voters())
	for i, row := range u {
		scores := make([]float64, len(row))
		copy(scores, row)
		lo := floats.Min(scores)
		floats.AddConst(-lo, scores)
		if hi := floats.Max(scores); hi > 0 {
			floats.Scale(float64(maxScore)/hi, scores)
		}
		for j, s := range scores {
			scores[j] = math.Round(s)
		}
		ballots[i] = scores
	}
	return ballots, nil
}

// ApprovalOptimal converts utilities into approval ballots using the
// expected-utility-maximizing sincere strategy: each voter approves every
// candidate whose utility strictly exceeds that voter's mean utility over
// all candidates. The threshold is per-voter and relative, not a fixed
// cutoff.
func ApprovalOptimal(u domain.UtilityMatrix) (domain.ApprovalBallots, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	ballots := make(domain.ApprovalBallots, u.Voters())
	for i, row := range u {
		mean := stat.Mean(row, nil)
		approvals := make([]int, len(row))
		for j, util := range row {
			if util > mean {
				approvals[j] = 1
			}
		}
		ballots[i] = approvals
	}
	return ballots, nil
}

// VoteForK converts utilities into approval ballots with each voter
// approving exactly their top k candidates by utility. A negative k means
// vote for n+k candidates, where n is the candidate count. Boundary ties
// admit the lower candidate index first, keeping the strategy
// deterministic.
func VoteForK(u domain.UtilityMatrix, k int) (domain.ApprovalBallots, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	n := u.Candidates()
	if -n < k && k < 0 {
		k = n + k
	}
	if k < 1 || k >= n {
		return nil, fmt.Errorf("%w: k of %d not possible with %d candidates", domain.ErrInvalidConfiguration, k, n)
	}

	ballots := make(domain.ApprovalBallots, u.Voters())
	for i, row := range u {
		order := make([]int, n)
		for c := range order {
			order[c] = c
		}
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] > row[order[b]]
		})
		approvals := make([]int, n)
		for _, c := range order[:k] {
			approvals[c] = 1
		}
		ballots[i] = approvals
	}
	return ballots, nil
}

// VoteForHalf approves the better half of the candidates, using floor
// division for odd candidate counts: with 7 candidates each voter
// approves their top 3. Requires at least 2 candidates.
func VoteForHalf(u domain.UtilityMatrix) (domain.ApprovalBallots, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return VoteForK(u, u.Candidates()/2)
}

// ApproveAbove derives approval ballots from score ballots: a candidate
// scored strictly above cutoff counts as approved.
func ApproveAbove(e domain.ScoreBallots, cutoff float64) (domain.ApprovalBallots, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return nil, fmt.Errorf("%w: cutoff must be finite", domain.ErrInvalidConfiguration)
	}

	ballots := make(domain.ApprovalBallots, e.Voters())
	for i, row := range e {
		approvals := make([]int, len(row))
		for j, s := range row {
			if s > cutoff {
				approvals[j] = 1
			}
		}
		ballots[i] = approvals
	}
	return ballots, nil
}
