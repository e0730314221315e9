package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stocktracker/market"
)

func newPricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "List the stocks that can be entered and their prices",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cat := market.DefaultCatalog()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s%s\n", "Stock", "Price ($)")
			for _, sym := range cat.Symbols() {
				p, _ := cat.Lookup(sym)
				fmt.Fprintf(out, "%-10s%d\n", sym, p)
			}
		},
	}
}
