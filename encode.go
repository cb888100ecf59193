package bakala

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Storage keys, one per ledger. Each key holds an ordered JSON array of
// self-describing records.
const (
	KeyProducts  = "products"
	KeySales     = "sales"
	KeyExpenses  = "expenses"
	KeyTransfers = "transfers"
)

// Save snapshots the whole book into storage, one key per ledger. Keys are
// written independently; a failure on one key leaves the others as they were
// and is reported as a persistence error. The in-memory book is never rolled
// back.
func (b *Book) Save(storage Storage) error {
	if err := setJSON(storage, KeyProducts, b.products); err != nil {
		return err
	}
	if err := setJSON(storage, KeySales, b.sales); err != nil {
		return err
	}
	if err := setJSON(storage, KeyExpenses, b.expenses); err != nil {
		return err
	}
	return setJSON(storage, KeyTransfers, b.transfers)
}

func setJSON(storage Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return persistenceErr("could not encode %q: %v", key, err)
	}
	if err := storage.Set(key, string(data)); err != nil {
		return persistenceErr("could not store %q: %v", key, err)
	}
	return nil
}

func getJSON(storage Storage, key string, v any) error {
	text, ok, err := storage.Get(key)
	if err != nil {
		return persistenceErr("could not load %q: %v", key, err)
	}
	if !ok || text == "" {
		return nil // absent key reads as an empty ledger
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return persistenceErr("could not decode %q: %v", key, err)
	}
	return nil
}

// LoadBook restores a book from storage. Absent keys read as empty ledgers,
// so an empty store yields an empty book. Decoded amounts are rebound to the
// given currency (DefaultCurrency when empty), the id counter is seeded past
// every loaded id, and the total-sales accumulator is recomputed from the
// sales ledger.
func LoadBook(storage Storage, currency string) (*Book, error) {
	b := NewBook(currency)

	if err := getJSON(storage, KeyProducts, &b.products); err != nil {
		return nil, err
	}
	if err := getJSON(storage, KeySales, &b.sales); err != nil {
		return nil, err
	}
	if err := getJSON(storage, KeyExpenses, &b.expenses); err != nil {
		return nil, err
	}
	if err := getJSON(storage, KeyTransfers, &b.transfers); err != nil {
		return nil, err
	}

	for _, p := range b.products {
		p.Price = p.Price.withCurrency(b.currency)
		if _, dup := b.index[p.Name]; dup {
			return nil, persistenceErr("could not load %q: duplicate product name %q", KeyProducts, p.Name)
		}
		b.index[p.Name] = p
	}
	for i := range b.sales {
		b.sales[i].Amount = b.sales[i].Amount.withCurrency(b.currency)
		b.sales[i].UnitPrice = b.sales[i].UnitPrice.withCurrency(b.currency)
	}
	for i := range b.expenses {
		b.expenses[i].Amount = b.expenses[i].Amount.withCurrency(b.currency)
	}
	for i := range b.transfers {
		b.transfers[i].Amount = b.transfers[i].Amount.withCurrency(b.currency)
	}

	b.seedNextID()
	b.reconcile()
	return b, nil
}

// Equal reports whether two books hold the same records. Used by tests and by
// the import command to verify a round trip.
func (b *Book) Equal(o *Book) bool {
	if b.currency != o.currency ||
		len(b.products) != len(o.products) ||
		len(b.sales) != len(o.sales) ||
		len(b.expenses) != len(o.expenses) ||
		len(b.transfers) != len(o.transfers) {
		return false
	}
	for i := range b.products {
		p, q := b.products[i], o.products[i]
		if p.ID != q.ID || p.Name != q.Name || !p.Price.Equal(q.Price) ||
			p.Quantity != q.Quantity || p.Sales != q.Sales {
			return false
		}
	}
	for i := range b.sales {
		s, t := b.sales[i], o.sales[i]
		if s.ID != t.ID || s.Date != t.Date || s.Product != t.Product ||
			s.Quantity != t.Quantity || !s.Amount.Equal(t.Amount) ||
			s.Method != t.Method || !s.UnitPrice.Equal(t.UnitPrice) {
			return false
		}
	}
	for i := range b.expenses {
		e, f := b.expenses[i], o.expenses[i]
		if e.ID != f.ID || e.Date != f.Date || e.Category != f.Category ||
			e.Description != f.Description || !e.Amount.Equal(f.Amount) {
			return false
		}
	}
	for i := range b.transfers {
		t, u := b.transfers[i], o.transfers[i]
		if t.ID != u.ID || t.Date != u.Date || t.Description != u.Description ||
			!t.Amount.Equal(u.Amount) {
			return false
		}
	}
	return true
}
