// Package renderer turns book state into markdown reports. It only calls the
// read-only query operations of the bakala package and writes nothing back.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	bakala "github.com/1junior/Bakala-stocks"
	md "github.com/nao1215/markdown"
)

// ProductsMarkdown renders the product registry as a table, optionally
// filtered by a case-insensitive name substring.
func ProductsMarkdown(b *bakala.Book, search string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Product", "Price", "In Stock", "Units Sold"},
		Rows:   [][]string{},
	}
	for p := range b.Products() {
		if search != "" && !containsFold(p.Name, search) {
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.Name,
			p.Price.String(),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.Sales),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total sales: %s", b.TotalSales()))

	return doc.String()
}
