package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	bakala "github.com/1junior/Bakala-stocks"
	md "github.com/nao1215/markdown"
)

// ExpensesMarkdown renders the expense log as a table, with the all-time and
// this-month totals side by side.
func ExpensesMarkdown(b *bakala.Book, now bakala.Date, filters ...func(bakala.Expense) bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Category", "Description", "Amount", "ID"},
		Rows:   [][]string{},
	}
	for e := range b.Expenses(filters...) {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Category,
			e.Description,
			e.Amount.String(),
			strconv.FormatInt(e.ID, 10),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s, this month: %s",
		bakala.SumExpenses(b), bakala.SumExpensesInMonth(b, now.Month())))

	return doc.String()
}
