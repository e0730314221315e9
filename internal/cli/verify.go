package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stocktracker/journal"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.csv>",
		Short: "Check that a saved report's total matches its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := journal.ReadCSVFile(args[0])
			if err != nil {
				return fmt.Errorf("verify %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d stocks, Total Investment %d\n", args[0], len(r.Rows), r.Total)
			return nil
		},
	}
}
