package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "check the quantity on hand for a product" }
func (*stockCmd) Usage() string {
	return `bks stock <name>

  Prints the quantity on hand for a product.
`
}

func (*stockCmd) SetFlags(f *flag.FlagSet) {}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product name")
		return subcommands.ExitUsageError
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	quantity, err := book.StockOf(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	fmt.Printf("available stock for %q: %d\n", f.Arg(0), quantity)
	return subcommands.ExitSuccess
}
