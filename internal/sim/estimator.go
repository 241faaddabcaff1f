package sim

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/voteforge/voteforge/internal/domain"
	"github.com/voteforge/voteforge/internal/electorate"
	"github.com/voteforge/voteforge/internal/strategy"
	"github.com/voteforge/voteforge/internal/tally"
)

// Estimator runs simulated elections for one configuration and
// accumulates method statistics. Trials are indexed 0..Trials-1 and each
// is a pure function of (config, trial index), so any partition of the
// index range across workers reproduces the same study.
type Estimator struct {
	cfg     Config
	methods []tally.Method
}

// NewEstimator validates the configuration and resolves its method names
// against the registry.
func NewEstimator(cfg Config) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	methods := make([]tally.Method, len(cfg.Methods))
	for i, name := range cfg.Methods {
		m, err := tally.Lookup(name)
		if err != nil {
			return nil, err
		}
		methods[i] = m
	}
	return &Estimator{cfg: cfg, methods: methods}, nil
}

// Config returns the validated configuration the estimator runs.
func (e *Estimator) Config() Config { return e.cfg }

// RunTrial simulates election number trial and returns its single-trial
// accumulator.
func (e *Estimator) RunTrial(trial int) (Stats, error) {
	rng := rand.New(rand.NewSource(trialSeed(e.cfg.Seed, trial)))

	tb, err := domain.NewTieBreaker(e.cfg.TiePolicy, rng)
	if err != nil {
		return Stats{}, err
	}

	utilities, err := e.generate(rng)
	if err != nil {
		return Stats{}, fmt.Errorf("trial %d: generating electorate: %w", trial, err)
	}

	ranked, err := strategy.HonestRankings(utilities)
	if err != nil {
		return Stats{}, fmt.Errorf("trial %d: ranking: %w", trial, err)
	}

	condorcet, err := tally.Condorcet(ranked)
	if err != nil {
		return Stats{}, fmt.Errorf("trial %d: condorcet: %w", trial, err)
	}

	totals := utilities.Totals()
	maxUtility := floats.Max(totals)
	randomUtility := stat.Mean(totals, nil)

	ballots, err := e.castBallots(utilities, ranked)
	if err != nil {
		return Stats{}, fmt.Errorf("trial %d: casting ballots: %w", trial, err)
	}

	s := NewStats(e.cfg.Methods)
	s.Trials = 1
	if condorcet.Valid() {
		s.CondorcetWinners = 1
	} else {
		s.Cycles = 1
	}

	for _, m := range e.methods {
		winner, err := m.Tally(ballots[m.Format], tb)
		if err != nil {
			return Stats{}, fmt.Errorf("trial %d: tallying %s: %w", trial, m.Name, err)
		}

		ms := s.Methods[m.Name]
		ms.Trials = 1
		if condorcet.Valid() {
			ms.CondorcetTrials = 1
			if winner == condorcet {
				ms.CondorcetMatches = 1
			}
		}
		if winner.Valid() {
			ms.WinnerUtility = totals[winner.Index()]
			ms.MaxUtility = maxUtility
			ms.RandomUtility = randomUtility
		} else {
			ms.Unresolved = 1
		}
		s.Methods[m.Name] = ms
	}
	return s, nil
}

// Run simulates trials [from, to) sequentially and returns their merged
// accumulator. The context is checked between trials.
func (e *Estimator) Run(ctx context.Context, from, to int) (Stats, error) {
	if from < 0 || to > e.cfg.Trials || from > to {
		return Stats{}, fmt.Errorf("%w: trial range [%d, %d) outside [0, %d)",
			domain.ErrInvalidConfiguration, from, to, e.cfg.Trials)
	}

	s := NewStats(e.cfg.Methods)
	for trial := from; trial < to; trial++ {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		t, err := e.RunTrial(trial)
		if err != nil {
			return Stats{}, err
		}
		s = s.Merge(t)
	}
	return s, nil
}

// RunAll simulates every configured trial sequentially.
func (e *Estimator) RunAll(ctx context.Context) (Stats, error) {
	return e.Run(ctx, 0, e.cfg.Trials)
}

func (e *Estimator) generate(rng *rand.Rand) (domain.UtilityMatrix, error) {
	switch e.cfg.Model {
	case ModelSpatial:
		voters, cands, err := electorate.NormalElectorate(e.cfg.Voters, e.cfg.Candidates, e.cfg.Spatial, rng)
		if err != nil {
			return nil, err
		}
		return electorate.NormedDistUtilities(voters, cands)
	default:
		return electorate.RandomUtilities(e.cfg.Voters, e.cfg.Candidates, rng)
	}
}

// castBallots derives one ballot set per format from the trial's
// utilities, shared by every method of that format.
func (e *Estimator) castBallots(u domain.UtilityMatrix, ranked domain.RankedBallots) (map[tally.BallotFormat]tally.Ballots, error) {
	var approval domain.ApprovalBallots
	var err error
	if e.cfg.ApprovalK > 0 {
		approval, err = strategy.VoteForK(u, e.cfg.ApprovalK)
	} else {
		approval, err = strategy.ApprovalOptimal(u)
	}
	if err != nil {
		return nil, err
	}

	scores, err := strategy.HonestNormedScores(u, e.cfg.MaxScore)
	if err != nil {
		return nil, err
	}

	return map[tally.BallotFormat]tally.Ballots{
		tally.FormatRanked:   tally.RankedSet(ranked),
		tally.FormatApproval: tally.ApprovalSet(approval),
		tally.FormatScore:    tally.ScoreSet(scores),
	}, nil
}

// trialSeed derives an independent stream seed from the base seed and
// trial index with a splitmix64 step, so neighboring trials get
// uncorrelated streams.
func trialSeed(base uint64, trial int) uint64 {
	z := base + 0x9e3779b97f4a7c15*uint64(trial+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
