package renderer

import (
	"bytes"
	"strconv"

	bakala "github.com/1junior/Bakala-stocks"
	md "github.com/nao1215/markdown"
)

// recentFeedSize is how many events the dashboard activity feed shows.
const recentFeedSize = 5

// DashboardMarkdown renders the at-a-glance view: per-ledger totals, sales
// per payment method, and the recent-activity feed.
func DashboardMarkdown(b *bakala.Book, now bakala.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")

	products := 0
	for range b.Products() {
		products++
	}
	month := now.Month()

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Ledger", "All Time", month.String()},
		Rows: [][]string{
			{"Products", strconv.Itoa(products), ""},
			{"Sales", bakala.SumSales(b).String(), bakala.SumSalesInMonth(b, month).String()},
			{"Expenses", bakala.SumExpenses(b).String(), bakala.SumExpensesInMonth(b, month).String()},
			{"Transfers", bakala.SumTransfers(b).String(), bakala.SumTransfersInMonth(b, month).String()},
		},
	})

	doc.H2("Sales by Payment Method")
	byMethod := bakala.SalesByMethod(b)
	methodRows := [][]string{}
	for _, m := range bakala.PaymentMethods {
		methodRows = append(methodRows, []string{m.String(), byMethod[m].String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Method", "Total"},
		Rows:      methodRows,
	})

	doc.H2("Recent Activity")
	feedRows := [][]string{}
	for _, a := range bakala.RecentActivity(b, recentFeedSize) {
		feedRows = append(feedRows, []string{
			a.Date.String(),
			a.Description,
			a.Amount.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Activity", "Amount"},
		Rows:      feedRows,
	})

	return doc.String()
}
