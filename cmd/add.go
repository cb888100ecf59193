package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/google/subcommands"
)

type addCmd struct {
	price    string
	quantity int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product or restock an existing one" }
func (*addCmd) Usage() string {
	return `bks add -p <price> -q <quantity> <name>

  Adds a new product to the registry, or restocks an existing one. When the
  name already exists the quantity is added and the price is left unchanged:
  existing stock is not repriced.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "p", "", "Unit price. Required; a restock keeps the existing price.")
	f.IntVar(&c.quantity, "q", 0, "Quantity to add.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	price, err := bakala.ParseMoney(c.price, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}

	p, err := book.AddProduct(name, price, c.quantity)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("%q now has %d units at %s\n", p.Name, p.Quantity, p.Price)
	return subcommands.ExitSuccess
}
