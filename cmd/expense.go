package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	category string
	amount   string
	date     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `bks expense -c <category> -a <amount> [-d <date>] <description>

  Appends an expense to the expense log.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Expense category.")
	f.StringVar(&c.amount, "a", "", "Expense amount.")
	f.StringVar(&c.date, "d", "", "Date of the expense. Defaults to today.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one description")
		return subcommands.ExitUsageError
	}
	amount, err := bakala.ParseMoney(c.amount, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	e, err := book.RecordExpense(c.category, f.Arg(0), amount, on)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("expense %d: %s %s (%s)\n", e.ID, e.Description, e.Amount, e.Category)
	return subcommands.ExitSuccess
}

type rmExpenseCmd struct{}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "delete an expense by id" }
func (*rmExpenseCmd) Usage() string {
	return `bks rm-expense <id>

  Deletes an expense. No other ledger is affected.
`
}

func (*rmExpenseCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status := parseIDArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	if err := book.DeleteExpense(id); err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("deleted expense %d\n", id)
	return subcommands.ExitSuccess
}
