// Package domain defines the core value types shared by every stage of the
// election simulation pipeline: utility matrices, the ballot
// representations, winners, and the tie-break policy applied by tally
// methods. All types are plain values; once constructed they are treated
// as immutable by the rest of the system.
package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// UtilityMatrix holds each voter's real-valued utility for each candidate.
// Rows represent voters and columns represent candidates. Higher values
// mean greater approval of that candidate by that voter.
type UtilityMatrix [][]float64

// Voters returns the number of rows (voters).
func (u UtilityMatrix) Voters() int { return len(u) }

// Candidates returns the number of columns (candidates).
// It returns 0 for an empty matrix.
func (u UtilityMatrix) Candidates() int {
	if len(u) == 0 {
		return 0
	}
	return len(u[0])
}

// Validate checks the structural invariants: at least one voter and one
// candidate, rectangular shape, and finite values throughout.
func (u UtilityMatrix) Validate() error {
	if u.Voters() == 0 {
		return ErrNoVoters
	}
	if u.Candidates() == 0 {
		return ErrNoCandidates
	}
	for i, row := range u {
		if len(row) != u.Candidates() {
			return &BallotError{Voter: i, Err: ErrRaggedBallots}
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &BallotError{Voter: i, Err: ErrNotFinite}
			}
		}
	}
	return nil
}

// Totals sums every voter's utility per candidate. The result indexes by
// candidate and feeds the utility winner and the efficiency baselines.
func (u UtilityMatrix) Totals() []float64 {
	totals := make([]float64, u.Candidates())
	for _, row := range u {
		floats.Add(totals, row)
	}
	return totals
}

// NormalizedByRange returns a copy with each voter's utilities linearly
// rescaled so their highest utility is 1 and lowest is 0. A voter who is
// exactly indifferent between all candidates gets an all-zero row.
// The receiver is not modified.
func (u UtilityMatrix) NormalizedByRange() UtilityMatrix {
	out := make(UtilityMatrix, len(u))
	for i, row := range u {
		norm := make([]float64, len(row))
		copy(norm, row)
		lo := floats.Min(norm)
		floats.AddConst(-lo, norm)
		if hi := floats.Max(norm); hi > 0 {
			floats.Scale(1/hi, norm)
		}
		out[i] = norm
	}
	return out
}

// RankedBallots holds one strict preference ordering per voter.
// Rows represent voters and columns represent rankings, from best to
// worst, with no tied rankings. Each cell contains a candidate index,
// starting at 0.
type RankedBallots [][]int

// Voters returns the number of ballots.
func (e RankedBallots) Voters() int { return len(e) }

// Candidates returns the number of ranking positions per ballot.
func (e RankedBallots) Candidates() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0])
}

// Validate checks that every ballot is a permutation of the full candidate
// index range. Methods call this at their boundary before tallying.
func (e RankedBallots) Validate() error {
	if e.Voters() == 0 {
		return ErrNoVoters
	}
	n := e.Candidates()
	if n == 0 {
		return ErrNoCandidates
	}
	seen := make([]bool, n)
	for i, ballot := range e {
		if len(ballot) != n {
			return &BallotError{Voter: i, Err: ErrRaggedBallots}
		}
		for j := range seen {
			seen[j] = false
		}
		for _, c := range ballot {
			if c < 0 || c >= n || seen[c] {
				return &BallotError{Voter: i, Err: ErrNotPermutation}
			}
			seen[c] = true
		}
	}
	return nil
}

// FirstPreferences returns each voter's top-ranked candidate.
func (e RankedBallots) FirstPreferences() []int {
	prefs := make([]int, len(e))
	for i, ballot := range e {
		prefs[i] = ballot[0]
	}
	return prefs
}

// ApprovalBallots holds one approval vector per voter.
// A cell contains 1 if that voter approves of that candidate, otherwise 0.
type ApprovalBallots [][]int

// Voters returns the number of ballots.
func (e ApprovalBallots) Voters() int { return len(e) }

// Candidates returns the number of candidates covered per ballot.
func (e ApprovalBallots) Candidates() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0])
}

// Validate checks shape and that every cell is 0 or 1.
func (e ApprovalBallots) Validate() error {
	return validateIntBallots([][]int(e), 0, 1)
}

// CombinedBallots holds one combined approval (dis&approval) vector per
// voter: +1 approves, -1 disapproves, 0 is neutral.
type CombinedBallots [][]int

// Voters returns the number of ballots.
func (e CombinedBallots) Voters() int { return len(e) }

// Candidates returns the number of candidates covered per ballot.
func (e CombinedBallots) Candidates() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0])
}

// Validate checks shape and that every cell is -1, 0, or +1.
func (e CombinedBallots) Validate() error {
	return validateIntBallots([][]int(e), -1, 1)
}

// ScoreBallots holds one numeric rating vector per voter. A cell contains
// a high score if that voter approves of that candidate, or a low score
// if they disapprove. Scores are non-negative and bounded by whichever
// strategy produced them.
type ScoreBallots [][]float64

// Voters returns the number of ballots.
func (e ScoreBallots) Voters() int { return len(e) }

// Candidates returns the number of candidates covered per ballot.
func (e ScoreBallots) Candidates() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0])
}

// Validate checks shape and that every score is finite and non-negative.
func (e ScoreBallots) Validate() error {
	if e.Voters() == 0 {
		return ErrNoVoters
	}
	n := e.Candidates()
	if n == 0 {
		return ErrNoCandidates
	}
	for i, ballot := range e {
		if len(ballot) != n {
			return &BallotError{Voter: i, Err: ErrRaggedBallots}
		}
		for _, s := range ballot {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return &BallotError{Voter: i, Err: ErrNotFinite}
			}
			if s < 0 {
				return &BallotError{Voter: i, Err: ErrBallotRange}
			}
		}
	}
	return nil
}

func validateIntBallots(e [][]int, lo, hi int) error {
	if len(e) == 0 {
		return ErrNoVoters
	}
	n := len(e[0])
	if n == 0 {
		return ErrNoCandidates
	}
	for i, ballot := range e {
		if len(ballot) != n {
			return &BallotError{Voter: i, Err: ErrRaggedBallots}
		}
		for _, v := range ballot {
			if v < lo || v > hi {
				return &BallotError{Voter: i, Err: ErrBallotRange}
			}
		}
	}
	return nil
}
