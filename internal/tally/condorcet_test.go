package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voteforge/voteforge/internal/domain"
)

func TestMatrixFromRanked(t *testing.T) {
	tests := []struct {
		name    string
		ballots domain.RankedBallots
		want    PreferenceMatrix
	}{
		{
			name:    "single ballot",
			ballots: domain.RankedBallots{{1, 2, 0, 3}},
			want: PreferenceMatrix{
				{0, 0, 0, 1},
				{1, 0, 1, 1},
				{1, 0, 0, 1},
				{0, 0, 0, 0},
			},
		},
		{
			name: "three ballots",
			ballots: domain.RankedBallots{
				{1, 2, 0, 3},
				{3, 0, 2, 1},
				{0, 2, 1, 3},
			},
			want: PreferenceMatrix{
				{0, 2, 2, 2},
				{1, 0, 1, 2},
				{1, 2, 0, 2},
				{1, 1, 1, 0},
			},
		},
		{
			name: "twenty voters",
			ballots: cat(
				dup(5, []int{3, 1, 2, 0}),
				dup(4, []int{1, 2, 0, 3}),
				dup(3, []int{0, 3, 2, 1}),
				dup(3, []int{0, 3, 1, 2}),
				dup(4, []int{2, 0, 1, 3}),
			),
			want: PreferenceMatrix{
				{0, 10, 6, 14},
				{9, 0, 12, 8},
				{13, 7, 0, 8},
				{5, 11, 11, 0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatrixFromRanked(tt.ballots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Ranked ballots are strict total orders, so every off-diagonal pair of
// cells must account for every voter.
func TestMatrixFromRankedComplementary(t *testing.T) {
	ballots := tennessee()
	matrix, err := MatrixFromRanked(ballots)
	require.NoError(t, err)
	require.NoError(t, matrix.Validate())

	n := matrix.Candidates()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			assert.Equal(t, ballots.Voters(), matrix[a][b]+matrix[b][a],
				"pair (%d, %d)", a, b)
		}
	}
}

func TestMatrixFromScoresAllowsIndifference(t *testing.T) {
	ballots := domain.ScoreBallots{
		{5, 5, 0},
		{0, 4, 5},
	}
	matrix, err := MatrixFromScores(ballots)
	require.NoError(t, err)

	assert.Equal(t, PreferenceMatrix{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, matrix)

	// Voter 0 is indifferent between candidates 0 and 1, so the pair's
	// cells sum to fewer than the voter count.
	assert.Less(t, matrix[0][1]+matrix[1][0], ballots.Voters())
}

func TestCondorcetFromMatrix(t *testing.T) {
	tests := []struct {
		name   string
		matrix PreferenceMatrix
		want   domain.Winner
	}{
		{
			name: "cycle of three",
			matrix: PreferenceMatrix{
				{0, 8, 6},
				{5, 0, 11},
				{7, 2, 0},
			},
			want: domain.NoWinner,
		},
		{
			name: "cycle of four",
			matrix: PreferenceMatrix{
				{0, 12, 15, 17},
				{13, 0, 16, 11},
				{10, 9, 0, 18},
				{8, 14, 7, 0},
			},
			want: domain.NoWinner,
		},
		{
			name: "clear winner",
			matrix: PreferenceMatrix{
				{0, 23, 29},
				{37, 0, 29},
				{31, 31, 0},
			},
			want: 2,
		},
		{
			name: "four candidates",
			matrix: PreferenceMatrix{
				{0, 63, 89, 57},
				{87, 0, 78, 73},
				{69, 72, 0, 74},
				{67, 51, 52, 0},
			},
			want: 1,
		},
		{
			name: "pairwise tie blocks winner",
			matrix: PreferenceMatrix{
				{0, 40, 22, 13},
				{37, 0, 50, 50},
				{30, 35, 0, 25},
				{20, 60, 20, 0},
			},
			want: domain.NoWinner,
		},
		{
			name: "large real election",
			matrix: PreferenceMatrix{
				{0, 34, 66, 38, 228},
				{428, 0, 238, 224, 449},
				{385, 221, 0, 226, 405},
				{397, 228, 237, 0, 424},
				{202, 29, 65, 39, 0},
			},
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CondorcetFromMatrix(tt.matrix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCondorcetFromMatrixRejectsMalformed(t *testing.T) {
	_, err := CondorcetFromMatrix(PreferenceMatrix{{0, 1}})
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = CondorcetFromMatrix(PreferenceMatrix{{1, 2}, {3, 0}})
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = CondorcetFromMatrix(PreferenceMatrix{})
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
}

func TestCondorcet(t *testing.T) {
	tests := []struct {
		name    string
		ballots domain.RankedBallots
		want    domain.Winner
	}{
		{
			name: "beats plurality favorite",
			ballots: domain.RankedBallots{
				{1, 2, 0, 3},
				{3, 0, 2, 1},
				{0, 2, 1, 3},
			},
			want: 0,
		},
		{
			name: "narrow centrist",
			ballots: cat(
				dup(499, []int{0, 1, 2}),
				dup(498, []int{2, 1, 0}),
				dup(3, []int{1, 2, 0}),
			),
			want: 1,
		},
		{
			name: "head to head favorite",
			ballots: domain.RankedBallots{
				{0, 1, 2},
				{1, 0, 2},
				{1, 0, 2},
				{2, 0, 1},
				{2, 1, 0},
			},
			want: 1,
		},
		{
			name: "majority cycle",
			ballots: domain.RankedBallots{
				{0, 1, 2}, {1, 2, 0}, {2, 0, 1},
			},
			want: domain.NoWinner,
		},
		{
			name:    "single candidate",
			ballots: domain.RankedBallots{{0}, {0}},
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Condorcet(tt.ballots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlack(t *testing.T) {
	tests := []struct {
		name    string
		ballots domain.RankedBallots
		want    domain.Winner
	}{
		{
			name: "condorcet winner taken directly",
			ballots: domain.RankedBallots{
				{0, 2, 1},
				{0, 2, 1},
				{1, 2, 0},
				{1, 2, 0},
				{2, 0, 1},
			},
			want: 2,
		},
		{
			name: "condorcet and borda differ",
			ballots: cat(
				dup(4, []int{0, 4, 3, 2, 1}),
				dup(3, []int{1, 2, 4, 3, 0}),
				dup(2, []int{2, 3, 4, 1, 0}),
			),
			want: 2,
		},
		{
			name: "borda fallback on cycle",
			ballots: cat(
				dup(3, []int{0, 1, 2}),
				dup(2, []int{1, 2, 0}),
				dup(2, []int{2, 0, 1}),
			),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Black(tt.ballots, domain.ByOrder())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
