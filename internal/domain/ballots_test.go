package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilityMatrix_Validate(t *testing.T) {
	tests := []struct {
		name    string
		matrix  UtilityMatrix
		wantErr error
	}{
		{
			name:   "valid matrix",
			matrix: UtilityMatrix{{0.2, 0.8}, {0.5, 0.1}},
		},
		{
			name:    "no voters",
			matrix:  UtilityMatrix{},
			wantErr: ErrNoVoters,
		},
		{
			name:    "no candidates",
			matrix:  UtilityMatrix{{}},
			wantErr: ErrNoCandidates,
		},
		{
			name:    "ragged rows",
			matrix:  UtilityMatrix{{0.2, 0.8}, {0.5}},
			wantErr: ErrRaggedBallots,
		},
		{
			name:    "NaN utility",
			matrix:  UtilityMatrix{{0.2, math.NaN()}},
			wantErr: ErrNotFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.matrix.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUtilityMatrix_Totals(t *testing.T) {
	u := UtilityMatrix{
		{1.0, 1.0, 0.0},
		{0.1, 0.8, 1.0},
		{0.0, 0.5, 0.5},
	}
	assert.InDeltaSlice(t, []float64{1.1, 2.3, 1.5}, u.Totals(), 1e-12)
}

func TestUtilityMatrix_NormalizedByRange(t *testing.T) {
	u := UtilityMatrix{
		{2.0, 4.0, 3.0},
		{7.0, 7.0, 7.0}, // indifferent voter
	}
	got := u.NormalizedByRange()

	assert.InDeltaSlice(t, []float64{0, 1, 0.5}, got[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, got[1], 1e-12)

	// The receiver must be untouched.
	assert.Equal(t, UtilityMatrix{{2.0, 4.0, 3.0}, {7.0, 7.0, 7.0}}, u)
}

func TestRankedBallots_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ballots RankedBallots
		wantErr error
	}{
		{
			name:    "valid strict orders",
			ballots: RankedBallots{{0, 2, 1}, {2, 1, 0}},
		},
		{
			name:    "duplicate candidate",
			ballots: RankedBallots{{0, 0, 1}},
			wantErr: ErrNotPermutation,
		},
		{
			name:    "index out of range",
			ballots: RankedBallots{{0, 3, 1}},
			wantErr: ErrNotPermutation,
		},
		{
			name:    "ragged ballots",
			ballots: RankedBallots{{0, 1, 2}, {1, 0}},
			wantErr: ErrRaggedBallots,
		},
		{
			name:    "empty",
			ballots: RankedBallots{},
			wantErr: ErrNoVoters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ballots.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApprovalAndCombinedBallots_Validate(t *testing.T) {
	assert.NoError(t, ApprovalBallots{{1, 0, 1}}.Validate())
	assert.ErrorIs(t, ApprovalBallots{{1, 2, 0}}.Validate(), ErrBallotRange)

	assert.NoError(t, CombinedBallots{{1, -1, 0}}.Validate())
	assert.ErrorIs(t, CombinedBallots{{-2, 0, 1}}.Validate(), ErrBallotRange)
}

func TestScoreBallots_Validate(t *testing.T) {
	assert.NoError(t, ScoreBallots{{5, 0, 3}}.Validate())
	assert.ErrorIs(t, ScoreBallots{{5, -1, 3}}.Validate(), ErrBallotRange)
	assert.ErrorIs(t, ScoreBallots{{5, math.NaN(), 3}}.Validate(), ErrNotFinite)
}

func TestWinner_Sentinel(t *testing.T) {
	assert.False(t, NoWinner.Valid())
	assert.True(t, Winner(0).Valid())
	assert.Equal(t, 0, Winner(0).Index())
	assert.Panics(t, func() { NoWinner.Index() })
}
