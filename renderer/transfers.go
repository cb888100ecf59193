package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	bakala "github.com/1junior/Bakala-stocks"
	md "github.com/nao1215/markdown"
)

// TransfersMarkdown renders the bank-transfer log as a table, with the
// all-time and this-month net totals.
func TransfersMarkdown(b *bakala.Book, now bakala.Date, filters ...func(bakala.Transfer) bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bank Transfers")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Description", "Amount", "ID"},
		Rows:   [][]string{},
	}
	for t := range b.Transfers(filters...) {
		table.Rows = append(table.Rows, []string{
			t.Date.String(),
			t.Description,
			t.Amount.SignedString(),
			strconv.FormatInt(t.ID, 10),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Net total: %s, this month: %s",
		bakala.SumTransfers(b), bakala.SumTransfersInMonth(b, now.Month())))

	return doc.String()
}
