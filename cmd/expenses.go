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

type expensesCmd struct {
	month    string
	category string
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list the expense log" }
func (*expensesCmd) Usage() string {
	return `bks expenses [-month <2006-01>] [-category <category>]

  Renders the expense log as a table, with all-time and this-month totals.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Calendar month to filter on.")
	f.StringVar(&c.category, "category", "", "Category to filter on.")
}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(bakala.Expense) bool
	if c.month != "" {
		m, err := bakala.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, bakala.ExpenseInMonth(m))
	}
	if c.category != "" {
		filters = append(filters, bakala.ExpenseOfCategory(c.category))
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ExpensesMarkdown(book, bakala.Today(), filters...))
	return subcommands.ExitSuccess
}
