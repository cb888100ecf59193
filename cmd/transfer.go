package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/google/subcommands"
)

type transferCmd struct {
	amount string
	date   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a bank transfer" }
func (*transferCmd) Usage() string {
	return `bks transfer -a <amount> [-d <date>] <description>

  Appends a bank transfer. The sign of the amount is meaningful: positive for
  money moved into the bank account, negative for money moved out.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Transfer amount (sign meaningful).")
	f.StringVar(&c.date, "d", "", "Date of the transfer. Defaults to today.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	t, err := book.RecordTransfer(f.Arg(0), amount, on)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("transfer %d: %s %s\n", t.ID, t.Description, t.Amount.SignedString())
	return subcommands.ExitSuccess
}

type rmTransferCmd struct{}

func (*rmTransferCmd) Name() string     { return "rm-transfer" }
func (*rmTransferCmd) Synopsis() string { return "delete a bank transfer by id" }
func (*rmTransferCmd) Usage() string {
	return `bks rm-transfer <id>

  Deletes a bank transfer. No other ledger is affected.
`
}

func (*rmTransferCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmTransferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status := parseIDArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	if err := book.DeleteTransfer(id); err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("deleted transfer %d\n", id)
	return subcommands.ExitSuccess
}
