package main

import (
	"fmt"
	"io"

	"github.com/voteforge/voteforge/internal/scenario"
	"github.com/voteforge/voteforge/internal/sim"
)

// writeReport prints the study's efficiency tables: methods as rows,
// candidate counts as columns, percentages throughout. results must be
// ordered like sc.CandidateCounts.
func writeReport(w io.Writer, sc scenario.Scenario, results []sim.Stats) {
	fmt.Fprintf(w, "Scenario: %s (model %s, %d voters, %d trials, seed %d)\n",
		sc.Name, sc.Model, sc.Voters, sc.Trials, sc.Seed)
	if sc.Description != "" {
		fmt.Fprintln(w, sc.Description)
	}

	fmt.Fprintf(w, "\nCondorcet efficiency (%%)\n")
	writeHeader(w, sc.CandidateCounts)
	for _, name := range sc.Methods {
		fmt.Fprintf(w, "%-12s", name)
		for _, stats := range results {
			if ce, ok := stats.Methods[name].CondorcetEfficiency(); ok {
				fmt.Fprintf(w, "%9.2f", 100*ce)
			} else {
				fmt.Fprintf(w, "%9s", "-")
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nSocial utility efficiency (%%)\n")
	writeHeader(w, sc.CandidateCounts)
	for _, name := range sc.Methods {
		fmt.Fprintf(w, "%-12s", name)
		for _, stats := range results {
			if sue, ok := stats.Methods[name].SUE(); ok {
				fmt.Fprintf(w, "%9.2f", 100*sue)
			} else {
				fmt.Fprintf(w, "%9s", "-")
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%-12s", "cycle rate")
	for _, stats := range results {
		fmt.Fprintf(w, "%9.2f", 100*stats.CycleRate())
	}
	fmt.Fprintln(w)
}

func writeHeader(w io.Writer, candidateCounts []int) {
	fmt.Fprintf(w, "%-12s", "method")
	for _, n := range candidateCounts {
		fmt.Fprintf(w, "%9d", n)
	}
	fmt.Fprintln(w)
}
