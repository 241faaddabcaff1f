// Package scenario loads simulation study definitions from YAML files.
// A scenario is one study swept over several candidate counts, the shape
// of the classic efficiency tables: rows of methods, columns of candidate
// counts.
package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/voteforge/voteforge/internal/domain"
	"github.com/voteforge/voteforge/internal/electorate"
	"github.com/voteforge/voteforge/internal/sim"
	"github.com/voteforge/voteforge/internal/tally"
)

// Package-level validator instance for scenario validation.
var validate = validator.New()

// Scenario describes one simulation study: the electorate model, the
// methods under test, and the candidate counts to sweep.
type Scenario struct {
	// Name identifies the study in output tables.
	Name string `yaml:"name" validate:"required"`

	// Description is free-form context printed with the results.
	Description string `yaml:"description"`

	// Seed is the base seed shared by every sweep point.
	Seed uint64 `yaml:"seed"`

	// Trials is the number of simulated elections per candidate count.
	Trials int `yaml:"trials" validate:"min=1"`

	// Voters is the electorate size per trial.
	Voters int `yaml:"voters" validate:"min=1"`

	// CandidateCounts lists the candidate counts to sweep.
	CandidateCounts []int `yaml:"candidate_counts" validate:"min=1,dive,min=1"`

	// Model selects the electorate model.
	Model string `yaml:"model" validate:"oneof=random spatial"`

	// Spatial configures the issue-space model when Model is spatial;
	// validated per sweep-point configuration, not by tag.
	Spatial electorate.SpatialConfig `yaml:"spatial" validate:"-"`

	// MaxScore is the top of the score-ballot range.
	MaxScore int `yaml:"max_score" validate:"min=1"`

	// ApprovalK fixes the approve-top-k strategy; zero selects the
	// mean-threshold strategy.
	ApprovalK int `yaml:"approval_k" validate:"min=0"`

	// TiePolicy is applied by every tallied method.
	TiePolicy domain.TiePolicy `yaml:"tie_policy" validate:"oneof=none order random"`

	// Methods names the voting methods to estimate.
	Methods []string `yaml:"methods" validate:"min=1"`
}

// Default returns the baseline scenario: a random-society sweep over
// 2..5 candidates with every registered method.
func Default() Scenario {
	return Scenario{
		Name:            "random-society",
		Seed:            1,
		Trials:          10000,
		Voters:          25,
		CandidateCounts: []int{2, 3, 4, 5},
		Model:           sim.ModelRandom,
		Spatial:         electorate.DefaultSpatialConfig(),
		MaxScore:        5,
		ApprovalK:       0,
		TiePolicy:       domain.TieOrder,
		Methods:         tally.Names(),
	}
}

// Parse decodes a scenario from YAML. Fields omitted in the document keep
// their Default values; unknown fields are rejected so typos fail loudly
// instead of silently running the default.
func Parse(r io.Reader) (Scenario, error) {
	s := Default()
	// Every scenario file must carry its own name; only the tuning
	// parameters inherit defaults.
	s.Name = ""
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the scenario and every per-sweep-point configuration it
// expands to.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("scenario validation failed: %w", err)
	}
	for _, cfg := range s.Configs() {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Configs expands the scenario into one simulation configuration per
// candidate count. Every sweep point shares the base seed; trial streams
// still differ because the generated electorates differ in shape.
func (s Scenario) Configs() []sim.Config {
	configs := make([]sim.Config, len(s.CandidateCounts))
	for i, nCands := range s.CandidateCounts {
		configs[i] = sim.Config{
			Seed:       s.Seed,
			Trials:     s.Trials,
			Voters:     s.Voters,
			Candidates: nCands,
			Model:      s.Model,
			Spatial:    s.Spatial,
			MaxScore:   s.MaxScore,
			ApprovalK:  s.ApprovalK,
			TiePolicy:  s.TiePolicy,
			Methods:    s.Methods,
		}
	}
	return configs
}
