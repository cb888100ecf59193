package cmd

import (
	"context"
	"flag"

	"github.com/1junior/Bakala-stocks/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct {
	search string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the product registry" }
func (*productsCmd) Usage() string {
	return `bks products [-search <substring>]

  Renders the product registry as a table.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Case-insensitive name substring to filter on.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProductsMarkdown(book, c.search))
	return subcommands.ExitSuccess
}
