package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/google/subcommands"
)

type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy browser localStorage dump" }
func (*importCmd) Usage() string {
	return `bks import [-f] <dump.json>

  Reads a JSON dump of the old browser tool's localStorage (either historical
  format) and replaces the book with its contents. Refuses to overwrite a
  non-empty book unless -f is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite a non-empty book.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one dump file")
		return subcommands.ExitUsageError
	}

	if !c.force {
		current, err := OpenBook()
		if err != nil {
			return fail(err)
		}
		if !current.Equal(bakala.NewBook(*currency)) {
			fmt.Fprintln(os.Stderr, "Error: the book is not empty; use -f to overwrite it")
			return subcommands.ExitFailure
		}
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	book, err := bakala.ImportLegacy(file, *currency)
	if err != nil {
		return fail(err)
	}
	if err := SaveBook(book); err != nil {
		return fail(err)
	}

	products, sales, expenses, transfers := 0, 0, 0, 0
	for range book.Products() {
		products++
	}
	for range book.Sales() {
		sales++
	}
	for range book.Expenses() {
		expenses++
	}
	for range book.Transfers() {
		transfers++
	}
	fmt.Printf("imported %d products, %d sales, %d expenses, %d transfers\n",
		products, sales, expenses, transfers)
	return subcommands.ExitSuccess
}
