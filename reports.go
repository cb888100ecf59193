package bakala

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// This file holds the read-only projections of the book: every total is
// recomputed from current ledger state on each call, never cached.

func (b *Book) zero() Money { return M(decimal.Zero, b.currency) }

// SumSales recomputes the total sales amount from the ledger.
func SumSales(b *Book) Money {
	total := b.zero()
	for s := range b.Sales() {
		total = total.Add(s.Amount)
	}
	return total
}

// SumExpenses recomputes the total expenses from the log.
func SumExpenses(b *Book) Money {
	total := b.zero()
	for e := range b.Expenses() {
		total = total.Add(e.Amount)
	}
	return total
}

// SumTransfers recomputes the net transfer total (signs included).
func SumTransfers(b *Book) Money {
	total := b.zero()
	for t := range b.Transfers() {
		total = total.Add(t.Amount)
	}
	return total
}

// SumSalesInMonth totals the sales dated in the given calendar month.
func SumSalesInMonth(b *Book, m Month) Money {
	total := b.zero()
	for s := range b.Sales(SaleInMonth(m)) {
		total = total.Add(s.Amount)
	}
	return total
}

// SumExpensesInMonth totals the expenses dated in the given calendar month.
func SumExpensesInMonth(b *Book, m Month) Money {
	total := b.zero()
	for e := range b.Expenses(ExpenseInMonth(m)) {
		total = total.Add(e.Amount)
	}
	return total
}

// SumTransfersInMonth totals the transfers dated in the given calendar month.
func SumTransfersInMonth(b *Book, m Month) Money {
	total := b.zero()
	for t := range b.Transfers(TransferInMonth(m)) {
		total = total.Add(t.Amount)
	}
	return total
}

// SalesByMethod totals the sales per payment method.
func SalesByMethod(b *Book) map[PaymentMethod]Money {
	totals := map[PaymentMethod]Money{
		Cash:        b.zero(),
		MobileMoney: b.zero(),
		Bank:        b.zero(),
	}
	for s := range b.Sales() {
		totals[s.Method] = totals[s.Method].Add(s.Amount)
	}
	return totals
}

// Activity is one event of the recent-activity feed: a sale, an expense or a
// transfer, with a signed amount. Sales and transfers count positive,
// expenses negative.
type Activity struct {
	Date        Date
	ID          int64
	Description string
	Amount      Money
}

// RecentActivity merges the three dated ledgers into one feed, sorted by date
// descending (ids break ties within a day, most recent first), truncated to
// the n most recent events.
func RecentActivity(b *Book, n int) []Activity {
	var feed []Activity
	for s := range b.Sales() {
		feed = append(feed, Activity{
			Date:        s.Date,
			ID:          s.ID,
			Description: fmt.Sprintf("Sale: %s (%d units)", s.Product, s.Quantity),
			Amount:      s.Amount,
		})
	}
	for e := range b.Expenses() {
		feed = append(feed, Activity{
			Date:        e.Date,
			ID:          e.ID,
			Description: fmt.Sprintf("Expense: %s", e.Description),
			Amount:      e.Amount.Neg(),
		})
	}
	for t := range b.Transfers() {
		feed = append(feed, Activity{
			Date:        t.Date,
			ID:          t.ID,
			Description: fmt.Sprintf("Transfer: %s", t.Description),
			Amount:      t.Amount,
		})
	}
	sort.SliceStable(feed, func(i, j int) bool {
		if feed[i].Date != feed[j].Date {
			return feed[j].Date.Before(feed[i].Date)
		}
		return feed[i].ID > feed[j].ID
	})
	if n >= 0 && len(feed) > n {
		feed = feed[:n]
	}
	return feed
}
