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

type salesCmd struct {
	month   string
	product string
	method  string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales history" }
func (*salesCmd) Usage() string {
	return `bks sales [-month <2006-01>] [-product <substring>] [-method <cash|momo|bank>]

  Renders the sales history as a table, filtered by month, product name
  substring (case-insensitive) and payment method.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Calendar month to filter on.")
	f.StringVar(&c.product, "product", "", "Product name substring to filter on.")
	f.StringVar(&c.method, "method", "", "Payment method to filter on.")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(bakala.Sale) bool
	if c.month != "" {
		m, err := bakala.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, bakala.SaleInMonth(m))
	}
	if c.product != "" {
		filters = append(filters, bakala.SaleOfProduct(c.product))
	}
	if c.method != "" {
		m, err := bakala.ParsePaymentMethod(c.method)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, bakala.SaleByMethod(m))
	}

	book, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SalesMarkdown(book, filters...))
	return subcommands.ExitSuccess
}
