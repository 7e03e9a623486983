package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List registered param sources and runners",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "param sources:")
		for _, name := range a.registry.ParamSourceNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "runners:")
		runners := a.registry.RunnerNames()
		if len(runners) == 0 {
			fmt.Fprintln(out, "  (none; harness provides them natively)")
		}
		for _, name := range runners {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
