package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur while validating pipeline inputs.
var (
	// ErrNoVoters indicates a ballot collection or utility matrix with no rows.
	ErrNoVoters = errors.New("at least one voter is required")

	// ErrNoCandidates indicates a ballot collection or utility matrix with no columns.
	ErrNoCandidates = errors.New("at least one candidate is required")

	// ErrRaggedBallots indicates rows with differing candidate counts.
	ErrRaggedBallots = errors.New("all ballots must cover the same candidate count")

	// ErrNotFinite indicates a NaN or infinite utility or score value.
	ErrNotFinite = errors.New("values must be finite")

	// ErrNotPermutation indicates a ranked ballot that is not a strict
	// ordering of all candidate indices.
	ErrNotPermutation = errors.New("ranked ballot must be a permutation of candidate indices")

	// ErrBallotRange indicates an approval or score cell outside its legal range.
	ErrBallotRange = errors.New("ballot value out of range")

	// ErrInvalidConfiguration indicates that configuration is invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// BallotError reports a validation failure at a specific ballot position.
// It provides context about which voter's ballot caused the error.
type BallotError struct {
	// Voter is the row index of the offending ballot.
	Voter int

	// Err is the underlying validation error.
	Err error
}

// Error implements the error interface for BallotError.
func (e *BallotError) Error() string {
	return fmt.Sprintf("ballot for voter %d: %v", e.Voter, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is matching.
func (e *BallotError) Unwrap() error { return e.Err }
