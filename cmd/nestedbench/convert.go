package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/nestedbench/internal/dataset"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in.csv> <out.parquet>",
	Short: "Convert a CSV dataset to parquet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(args[0])
		if err != nil {
			return err //nolint:wrapcheck // dataset errors carry the path
		}
		if err := dataset.WriteParquet(args[1], ds); err != nil {
			return err //nolint:wrapcheck // dataset errors carry the path
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", ds.Len(), args[1])
		return nil
	},
}
