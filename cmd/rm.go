package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a product from the registry" }
func (*rmCmd) Usage() string {
	return `bks rm <name>

  Removes a product unconditionally. Past sales of the product stay in the
  sales history; deleting one of them later re-creates the product entry.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product name")
		return subcommands.ExitUsageError
	}
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveProduct(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("removed %q\n", f.Arg(0))
	return subcommands.ExitSuccess
}
