package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	bakala "github.com/1junior/Bakala-stocks"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the sales ledger as a table. The filters are applied
// as given; pass none for the full history.
func SalesMarkdown(b *bakala.Book, filters ...func(bakala.Sale) bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Product", "Qty", "Unit Price", "Amount", "Method", "ID"},
		Rows:   [][]string{},
	}
	total := bakala.M(0, b.Currency())
	for s := range b.Sales(filters...) {
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			s.Product,
			strconv.Itoa(s.Quantity),
			s.UnitPrice.String(),
			s.Amount.String(),
			s.Method.String(),
			strconv.FormatInt(s.ID, 10),
		})
		total = total.Add(s.Amount)
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s", total))

	return doc.String()
}
