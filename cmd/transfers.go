package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/1junior/Bakala-stocks/renderer"
	"github.com/google/subcommands"
)

type transfersCmd struct {
	month string
	year  int
}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "list the bank-transfer log" }
func (*transfersCmd) Usage() string {
	return `bks transfers [-month <2006-01>] [-year <2006>]

  Renders the bank-transfer log as a table, with all-time and this-month net
  totals.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Calendar month to filter on.")
	f.IntVar(&c.year, "year", 0, "Year to filter on.")
}

func (c *transfersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(bakala.Transfer) bool
	if c.month != "" {
		m, err := bakala.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, bakala.TransferInMonth(m))
	}
	if c.year != 0 {
		filters = append(filters, bakala.TransferInYear(c.year))
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransfersMarkdown(book, bakala.Today(), filters...))
	return subcommands.ExitSuccess
}
