// Package sim estimates voting-method performance metrics by Monte Carlo
// simulation: it generates electorates from a configured model, casts
// ballots with the configured strategies, tallies every configured method,
// and accumulates Condorcet efficiency, social utility efficiency, and
// cycle-rate statistics over many trials.
package sim

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/voteforge/voteforge/internal/domain"
	"github.com/voteforge/voteforge/internal/electorate"
	"github.com/voteforge/voteforge/internal/tally"
)

// Electorate model names accepted by Config.Model.
const (
	// ModelRandom draws i.i.d. uniform utilities (random society).
	ModelRandom = "random"

	// ModelSpatial places voters and candidates in a normally
	// distributed issue space and derives utilities from distance.
	ModelSpatial = "spatial"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Config holds the parameters for one simulation study.
type Config struct {
	// Seed is the base seed; each trial derives its own independent
	// stream from it, so results are reproducible regardless of how
	// trials are batched across workers.
	Seed uint64 `yaml:"seed"`

	// Trials is the number of simulated elections.
	Trials int `yaml:"trials" validate:"min=1"`

	// Voters is the electorate size per trial.
	Voters int `yaml:"voters" validate:"min=1"`

	// Candidates is the number of candidates per trial.
	Candidates int `yaml:"candidates" validate:"min=1"`

	// Model selects the electorate model.
	Model string `yaml:"model" validate:"oneof=random spatial"`

	// Spatial configures the issue-space model; ignored under
	// ModelRandom, so it is validated conditionally rather than by tag.
	Spatial electorate.SpatialConfig `yaml:"spatial" validate:"-"`

	// MaxScore is the top of the score-ballot range.
	MaxScore int `yaml:"max_score" validate:"min=1"`

	// ApprovalK fixes how many candidates each voter approves. Zero
	// selects the expected-utility-maximizing mean-threshold strategy
	// instead of a fixed count.
	ApprovalK int `yaml:"approval_k" validate:"min=0"`

	// TiePolicy is applied by every tallied method.
	TiePolicy domain.TiePolicy `yaml:"tie_policy" validate:"oneof=none order random"`

	// Methods names the voting methods to estimate, per the tally
	// registry.
	Methods []string `yaml:"methods" validate:"min=1"`
}

// DefaultConfig returns a small random-society study over every
// registered method, sized to run in well under a second.
func DefaultConfig() Config {
	return Config{
		Seed:       1,
		Trials:     1000,
		Voters:     25,
		Candidates: 3,
		Model:      ModelRandom,
		Spatial:    electorate.DefaultSpatialConfig(),
		MaxScore:   5,
		ApprovalK:  0,
		TiePolicy:  domain.TieOrder,
		Methods:    tally.Names(),
	}
}

// Validate checks the structural constraints plus the cross-field rules
// the tag grammar cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("simulation configuration validation failed: %w", err)
	}
	if c.Model == ModelSpatial {
		if err := validate.Struct(c.Spatial); err != nil {
			return fmt.Errorf("spatial configuration validation failed: %w", err)
		}
	}
	if c.ApprovalK >= c.Candidates {
		return fmt.Errorf("%w: approval_k %d needs more than %d candidates",
			domain.ErrInvalidConfiguration, c.ApprovalK, c.Candidates)
	}
	for _, name := range c.Methods {
		if _, err := tally.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}
