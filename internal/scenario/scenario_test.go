package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voteforge/voteforge/internal/domain"
	"github.com/voteforge/voteforge/internal/sim"
	"github.com/voteforge/voteforge/internal/tally"
)

const sampleYAML = `
name: spatial-sweep
description: two-dimensional spatial model, honest voters
seed: 42
trials: 500
voters: 29
candidate_counts: [3, 5, 7]
model: spatial
spatial:
  dims: 2
  corr: 0.5
  disp: 1.0
max_score: 10
tie_policy: none
methods: [fptp, borda, irv, star]
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "spatial-sweep", s.Name)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, 500, s.Trials)
	assert.Equal(t, 29, s.Voters)
	assert.Equal(t, []int{3, 5, 7}, s.CandidateCounts)
	assert.Equal(t, sim.ModelSpatial, s.Model)
	assert.Equal(t, 0.5, s.Spatial.Corr)
	assert.Equal(t, 10, s.MaxScore)
	assert.Equal(t, domain.TieNone, s.TiePolicy)
	assert.Equal(t, []string{"fptp", "borda", "irv", "star"}, s.Methods)
}

func TestParseAppliesDefaults(t *testing.T) {
	s, err := Parse(strings.NewReader("name: tiny\ntrials: 10\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 10, s.Trials)
	assert.Equal(t, def.Voters, s.Voters)
	assert.Equal(t, def.CandidateCounts, s.CandidateCounts)
	assert.Equal(t, def.TiePolicy, s.TiePolicy)
	assert.Equal(t, tally.Names(), s.Methods)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "name: x\nvoterz: 10\n"},
		{"unknown method", "name: x\nmethods: [schulze]\n"},
		{"unknown model", "name: x\nmodel: bimodal\n"},
		{"missing name", "trials: 10\n"},
		{"zero trials", "name: x\ntrials: 0\n"},
		{"bad candidate count", "name: x\ncandidate_counts: [3, 0]\n"},
		{"bad tie policy", "name: x\ntie_policy: coin\n"},
		{"malformed yaml", "name: [\n"},
		{
			"bad spatial under spatial model",
			"name: x\nmodel: spatial\nspatial:\n  dims: 0\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestConfigs(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	configs := s.Configs()
	require.Len(t, configs, 3)
	for i, nCands := range s.CandidateCounts {
		cfg := configs[i]
		assert.Equal(t, nCands, cfg.Candidates)
		assert.Equal(t, s.Seed, cfg.Seed)
		assert.Equal(t, s.Trials, cfg.Trials)
		assert.Equal(t, s.Methods, cfg.Methods)
		require.NoError(t, cfg.Validate())

		_, err := sim.NewEstimator(cfg)
		assert.NoError(t, err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spatial-sweep", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
