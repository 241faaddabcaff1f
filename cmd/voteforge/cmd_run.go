package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voteforge/voteforge/internal/scenario"
	"github.com/voteforge/voteforge/internal/sim"
	"github.com/voteforge/voteforge/internal/simrunner"
)

func newRunCmd() *cobra.Command {
	var (
		scenarioPath string
		workers      int
		seed         uint64
		trials       int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation study and print its efficiency tables",
		Long: `Run the scenario's trials for every candidate count and print one
table per metric, methods as rows and candidate counts as columns.

Examples:
  voteforge run
  voteforge run --scenario studies/spatial.yaml
  voteforge run --scenario studies/spatial.yaml --trials 1000 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Default()
			if scenarioPath != "" {
				loaded, err := scenario.Load(scenarioPath)
				if err != nil {
					return err
				}
				sc = loaded
			}
			if cmd.Flags().Changed("seed") {
				sc.Seed = seed
			}
			if cmd.Flags().Changed("trials") {
				sc.Trials = trials
			}
			if err := sc.Validate(); err != nil {
				return err
			}

			results := make([]sim.Stats, 0, len(sc.CandidateCounts))
			for _, cfg := range sc.Configs() {
				est, err := sim.NewEstimator(cfg)
				if err != nil {
					return err
				}
				stats, err := simrunner.New(est, simrunner.WithWorkers(workers)).Run(cmd.Context())
				if err != nil {
					return fmt.Errorf("running %d-candidate sweep: %w", cfg.Candidates, err)
				}
				results = append(results, stats)
			}

			writeReport(cmd.OutOrStdout(), sc, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Scenario YAML file (default: built-in random-society sweep)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent batch workers (default: GOMAXPROCS)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Override the scenario's base seed")
	cmd.Flags().IntVar(&trials, "trials", 0, "Override the scenario's trial count")
	return cmd
}
