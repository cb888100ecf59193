// Package cmd implements the CLI application to manage the shop book.
// A main package calls Register() and lets the commander execute the
// user-selected subcommand.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	bakala "github.com/1junior/Bakala-stocks"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "products")
	c.Register(&rmCmd{}, "products")
	c.Register(&stockCmd{}, "products")
	c.Register(&productsCmd{}, "products")

	c.Register(&sellCmd{}, "sales")
	c.Register(&rmSaleCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")

	c.Register(&expenseCmd{}, "expenses")
	c.Register(&rmExpenseCmd{}, "expenses")
	c.Register(&expensesCmd{}, "expenses")

	c.Register(&transferCmd{}, "transfers")
	c.Register(&rmTransferCmd{}, "transfers")
	c.Register(&transfersCmd{}, "transfers")

	c.Register(&dashboardCmd{}, "reports")

	c.Register(&importCmd{}, "book")
	c.Register(&topicCmd{}, "book")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookPath = flag.String("book", ".bakala", "Path to the book storage directory (one JSON file per ledger)")
var currency = flag.String("currency", bakala.DefaultCurrency, "Currency the book keeps its amounts in")

// OpenBook loads the book from the app storage directory. A missing
// directory reads as an empty book.
func OpenBook() (*bakala.Book, error) {
	return bakala.LoadBook(bakala.NewDirStore(*bookPath), *currency)
}

// SaveBook snapshots the book back into the app storage directory.
func SaveBook(b *bakala.Book) error {
	return b.Save(bakala.NewDirStore(*bookPath))
}

// parseDateFlag turns a -d flag value into a Date; empty means today.
func parseDateFlag(s string) (bakala.Date, error) {
	if s == "" {
		return bakala.Today(), nil
	}
	return bakala.ParseDate(s)
}

// printMarkdown renders a markdown report to the terminal. When the terminal
// renderer cannot be built the raw markdown is still usable output.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and maps it to the commander's failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// parseIDArg reads the single numeric id argument of the rm-* commands.
func parseIDArg(f *flag.FlagSet) (int64, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one id")
		return 0, subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid id %q\n", f.Arg(0))
		return 0, subcommands.ExitUsageError
	}
	return id, subcommands.ExitSuccess
}
