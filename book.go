// Package bakala implements the bookkeeping core of a small shop: a product
// registry, a sales ledger, an expense log and a bank-transfer log, kept
// mutually consistent and persisted as a whole through a key-value storage
// facility.
package bakala

import "github.com/shopspring/decimal"

// Book owns the four ledgers and enforces the invariants that tie them
// together: product stock, cumulative units sold and the running total-sales
// accumulator move in lockstep with sale creation and deletion.
//
// A Book is not safe for concurrent use. Every mutation runs to completion
// before the next one is dispatched; only Book methods mutate its state, the
// rendering layer reads.
type Book struct {
	currency  string
	products  []*Product // in id order
	index     map[string]*Product
	sales     []Sale
	expenses  []Expense
	transfers []Transfer

	// totalSales is the one cached aggregate: the sum of all sale amounts.
	// Record and delete keep it exact; reconcile proves it on load.
	totalSales Money

	// nextID is shared by the four ledgers so ids also order events that
	// happen on the same day.
	nextID int64
}

// NewBook creates an empty book keeping its amounts in the given currency.
// An empty currency defaults to DefaultCurrency.
func NewBook(currency string) *Book {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Book{
		currency:   currency,
		index:      make(map[string]*Product),
		totalSales: M(decimal.Zero, currency),
		nextID:     1,
	}
}

// Currency returns the currency the book keeps its amounts in.
func (b *Book) Currency() string { return b.currency }

// TotalSales returns the running total-sales accumulator. It is maintained
// incrementally by RecordSale and DeleteSale and is always equal to
// SumSales(b); reconcile checks that equality when a book is loaded.
func (b *Book) TotalSales() Money { return b.totalSales }

func (b *Book) newID() int64 {
	id := b.nextID
	b.nextID++
	return id
}

// seedNextID moves the id counter past every id already in the book. Called
// after decoding so freshly recorded entries never collide with loaded ones.
func (b *Book) seedNextID() {
	max := int64(0)
	for _, p := range b.products {
		if p.ID > max {
			max = p.ID
		}
	}
	for _, s := range b.sales {
		if s.ID > max {
			max = s.ID
		}
	}
	for _, e := range b.expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, t := range b.transfers {
		if t.ID > max {
			max = t.ID
		}
	}
	b.nextID = max + 1
}

// reconcile recomputes the total-sales accumulator from the sales ledger.
// The accumulator is authoritative only between load and save; on load the
// recomputed sum wins, so a drifted snapshot heals rather than propagates.
func (b *Book) reconcile() {
	b.totalSales = SumSales(b)
}
