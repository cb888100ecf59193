package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/1junior/Bakala-stocks/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the shop at-a-glance view" }
func (*dashboardCmd) Usage() string {
	return `bks dashboard [-d <date>]

  Displays per-ledger totals, sales per payment method and the five most
  recent activities. The date controls which calendar month counts as "this
  month"; it defaults to today.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the monthly figures.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DashboardMarkdown(book, on))
	return subcommands.ExitSuccess
}
