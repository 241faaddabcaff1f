// Command voteforge runs Monte Carlo voting-method studies: it simulates
// elections under a configured electorate model, tallies each configured
// method, and prints Condorcet efficiency, social utility efficiency, and
// cycle-rate tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "voteforge",
		Short: "Monte Carlo simulation of voting methods",
		Long: `voteforge estimates how voting methods perform over simulated
electorates: how often each method elects the Condorcet winner, how much
social utility its winners capture, and how often pairwise preferences
form a cycle.

Studies are described by YAML scenario files; without one, a default
random-society sweep is run.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newMethodsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("voteforge version %s\n", version)
		},
	}
}
