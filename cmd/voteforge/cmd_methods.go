package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voteforge/voteforge/internal/tally"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available voting methods and their ballot formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tally.Names() {
				m, err := tally.Lookup(name)
				if err != nil {
					continue
				}
				fmt.Printf("%-12s %s ballots\n", m.Name, m.Format)
			}
		},
	}
}
