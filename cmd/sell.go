package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/google/subcommands"
)

type sellCmd struct {
	quantity int
	method   string
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against a product" }
func (*sellCmd) Usage() string {
	return `bks sell -q <quantity> [-m <method>] [-d <date>] <name>

  Records a sale of the named product at its current price. The unit price is
  captured into the sale, so repricing the product later never changes the
  recorded amount.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.quantity, "q", 0, "Quantity sold.")
	f.StringVar(&c.method, "m", "cash", "Payment method (cash, momo, bank).")
	f.StringVar(&c.date, "d", "", "Date of the sale. Defaults to today.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product name")
		return subcommands.ExitUsageError
	}
	method, err := bakala.ParsePaymentMethod(c.method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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
	sale, err := book.RecordSale(f.Arg(0), c.quantity, method, on)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("sale %d: %d x %s for %s (%s)\n", sale.ID, sale.Quantity, sale.Product, sale.Amount, sale.Method)
	return subcommands.ExitSuccess
}

type rmSaleCmd struct{}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete a sale and restore the product stock" }
func (*rmSaleCmd) Usage() string {
	return `bks rm-sale <id>

  Deletes a sale, restoring the product quantity and the totals exactly as
  they were before the sale was recorded. When the product has been removed
  since, it is re-created from the sale.
`
}

func (*rmSaleCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status := parseIDArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	if err := book.DeleteSale(id); err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("deleted sale %d\n", id)
	return subcommands.ExitSuccess
}
