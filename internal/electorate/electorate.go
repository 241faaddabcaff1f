// Package electorate generates voter utilities and ranked ballots from the
// supported electorate models: uniform random utilities (the "random
// society" model), impartial culture rankings, and a normally distributed
// spatial model with configurable dimensionality, correlation, and
// candidate dispersion.
//
// Every generator is a pure function of its parameters and the explicit
// random source it is given; callers own seeding, which is what makes
// trials reproducible and safely parallelizable at the boundary.
package electorate

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/voteforge/voteforge/internal/domain"
	"github.com/voteforge/voteforge/internal/strategy"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Positions holds point coordinates in issue space, one row per voter or
// candidate, one column per dimension.
type Positions [][]float64

// RandomUtilities generates a utility matrix using the impartial culture /
// random society model: independent utilities for each voter-candidate
// pair drawn uniformly from [0, 1).
//
// The model is unrealistic but has useful worst-case properties and is
// directly comparable between studies, which is why the classic efficiency
// literature uses it.
func RandomUtilities(nVoters, nCands int, rng *rand.Rand) (domain.UtilityMatrix, error) {
	if err := checkCounts(nVoters, nCands); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", domain.ErrInvalidConfiguration)
	}

	u := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	utilities := make(domain.UtilityMatrix, nVoters)
	for i := range utilities {
		row := make([]float64, nCands)
		for j := range row {
			row[j] = u.Rand()
		}
		utilities[i] = row
	}
	return utilities, nil
}

// ImpartialCulture generates ranked ballots with every voter's full
// ranking drawn uniformly and independently from all permutations of
// candidates. Rankings are built by ordering uniform random utilities,
// which is equivalent to (and much faster than) shuffling index sequences.
func ImpartialCulture(nVoters, nCands int, rng *rand.Rand) (domain.RankedBallots, error) {
	utilities, err := RandomUtilities(nVoters, nCands, rng)
	if err != nil {
		return nil, err
	}
	return strategy.HonestRankings(utilities)
}

// SpatialConfig holds the issue-space model parameters.
type SpatialConfig struct {
	// Dims is the number of issue-space dimensions.
	Dims int `yaml:"dims" validate:"min=1"`

	// Corr is the correlation between each pair of dimensions.
	// Must lie in [0, 1).
	Corr float64 `yaml:"corr" validate:"gte=0,lt=1"`

	// Disp is the relative dispersion of candidates vs voters, as a ratio
	// of standard deviations. 1.0 spreads candidates exactly like voters;
	// 0.5 concentrates candidates twice as tightly.
	Disp float64 `yaml:"disp" validate:"gt=0"`
}

// DefaultSpatialConfig returns the conventional two-dimensional,
// uncorrelated, equal-dispersion spatial model.
func DefaultSpatialConfig() SpatialConfig {
	return SpatialConfig{Dims: 2, Corr: 0, Disp: 1}
}

// NormalElectorate places voters and candidates as normally distributed
// points in issue space and returns both position sets.
//
// Correlated dimensions are produced by the principal-axis trick: an
// equicorrelation matrix with pairwise correlation C diagonalizes to one
// axis of variance 1+(dims-1)C with the rest at 1-C, so scaling the first
// coordinate by sqrt((1+(dims-1)C)/(1-C)) gives the same distribution
// shape as drawing correlated variables directly.
func NormalElectorate(nVoters, nCands int, cfg SpatialConfig, rng *rand.Rand) (voters, cands Positions, err error) {
	if err := checkCounts(nVoters, nCands); err != nil {
		return nil, nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, nil, fmt.Errorf("spatial configuration validation failed: %w", err)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%w: nil random source", domain.ErrInvalidConfiguration)
	}

	a := 1 + float64(cfg.Dims-1)*cfg.Corr
	b := 1 - cfg.Corr

	// Correlation is proportional to variance; coordinates scale with
	// standard deviation.
	scale := math.Sqrt(a / b)

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	draw := func(n int, disp float64) Positions {
		points := make(Positions, n)
		for i := range points {
			row := make([]float64, cfg.Dims)
			for j := range row {
				row[j] = normal.Rand()
			}
			row[0] *= scale
			if disp != 1 {
				floats.Scale(disp, row)
			}
			points[i] = row
		}
		return points
	}

	voters = draw(nVoters, 1)
	cands = draw(nCands, cfg.Disp)
	return voters, cands, nil
}

// NormedDistUtilities converts spatial positions into a utility matrix.
// Raw utility is the negated Euclidean distance from voter to candidate
// ("u(d) = -d"), then each voter's utilities are rescaled so their nearest
// candidate scores 1 and their farthest scores 0.
func NormedDistUtilities(voters, cands Positions) (domain.UtilityMatrix, error) {
	if len(voters) == 0 {
		return nil, domain.ErrNoVoters
	}
	if len(cands) == 0 {
		return nil, domain.ErrNoCandidates
	}
	dims := len(voters[0])
	for _, p := range cands {
		if len(p) != dims {
			return nil, fmt.Errorf("%w: voter and candidate dimensions differ", domain.ErrInvalidConfiguration)
		}
	}

	utilities := make(domain.UtilityMatrix, len(voters))
	for i, v := range voters {
		row := make([]float64, len(cands))
		for j, c := range cands {
			row[j] = -floats.Distance(v, c, 2)
		}
		utilities[i] = row
	}
	return utilities.NormalizedByRange(), nil
}

func checkCounts(nVoters, nCands int) error {
	if nVoters < 1 {
		return domain.ErrNoVoters
	}
	if nCands < 1 {
		return domain.ErrNoCandidates
	}
	return nil
}
