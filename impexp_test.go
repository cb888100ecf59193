package bakala

import (
	"slices"
	"strings"
	"testing"
	"time"
)

// earliest browser format: products as [name, details] pairs, sales under
// "salesHistory", transfers under "bankTransfers", no payment methods yet.
const legacyPairDump = `{
	"products": [
		["Bottled Water", {"price": 12.5, "quantity": 40, "sales": 3}],
		["Soap", {"price": 5, "quantity": 10, "sales": 0}]
	],
	"salesHistory": [
		{"date": "2024-01-15", "product": "Bottled Water", "quantity": 3, "unitPrice": 12.5, "amount": 37.5}
	],
	"expenses": [
		{"date": "2024-01-16", "category": "transport", "description": "Fuel", "amount": 30}
	],
	"bankTransfers": [
		{"date": "2024-01-17", "description": "Deposit", "amount": 500}
	],
	"totalSales": 999
}`

// later browser format: objects with millisecond-timestamp ids, sales with a
// per-unit "price" and no captured amount, full timestamps as dates.
const legacyObjectDump = `{
	"products": [
		{"id": 1705312800000, "name": "Bottled Water", "price": 12.5, "quantity": 40, "sales": 3}
	],
	"sales": [
		{"id": 1705312900000, "date": "2024-01-15T10:00:00Z", "productName": "Bottled Water",
		 "quantity": 3, "price": 12.5, "paymentMethod": "momo"}
	],
	"expenses": [],
	"transfers": [
		{"id": 1705313000000, "date": "2024-01-17", "description": "Deposit", "amount": -120}
	]
}`

func TestImportLegacyPairFormat(t *testing.T) {
	b, err := ImportLegacy(strings.NewReader(legacyPairDump), "GHS")
	if err != nil {
		t.Fatalf("ImportLegacy: %v", err)
	}

	products := slices.Collect(b.Products())
	if len(products) != 2 {
		t.Fatalf("imported %d products, want 2", len(products))
	}
	water := b.Product("Bottled Water")
	if water.Quantity != 40 || water.Sales != 3 || !water.Price.Equal(ghs(12.5)) {
		t.Errorf("unexpected product: %+v", water)
	}

	sales := slices.Collect(b.Sales())
	if len(sales) != 1 {
		t.Fatalf("imported %d sales, want 1", len(sales))
	}
	s := sales[0]
	if s.Date != NewDate(2024, time.January, 15) || s.Quantity != 3 || !s.Amount.Equal(ghs(37.5)) {
		t.Errorf("unexpected sale: %+v", s)
	}
	if s.Method != Cash {
		t.Errorf("method = %v, want cash (the default for pre-method dumps)", s.Method)
	}

	if n := len(slices.Collect(b.Expenses())); n != 1 {
		t.Errorf("imported %d expenses, want 1", n)
	}
	if n := len(slices.Collect(b.Transfers())); n != 1 {
		t.Errorf("imported %d transfers, want 1", n)
	}

	// The dump's own totalSales figure is ignored; the accumulator is rebuilt.
	if !b.TotalSales().Equal(ghs(37.5)) {
		t.Errorf("total sales = %s, want %s", b.TotalSales(), ghs(37.5))
	}
}

func TestImportLegacyObjectFormat(t *testing.T) {
	b, err := ImportLegacy(strings.NewReader(legacyObjectDump), "GHS")
	if err != nil {
		t.Fatalf("ImportLegacy: %v", err)
	}

	water := b.Product("Bottled Water")
	if water == nil {
		t.Fatal("product not imported")
	}
	if water.ID != 1705312800000 {
		t.Errorf("product id = %d, want the legacy timestamp id", water.ID)
	}

	sales := slices.Collect(b.Sales())
	if len(sales) != 1 {
		t.Fatalf("imported %d sales, want 1", len(sales))
	}
	s := sales[0]
	if s.Product != "Bottled Water" || s.Method != MobileMoney {
		t.Errorf("unexpected sale: %+v", s)
	}
	if s.Date != NewDate(2024, time.January, 15) {
		t.Errorf("date = %v, want the day of the timestamp", s.Date)
	}
	// Amount missing from the dump: computed from unit price and quantity.
	if !s.Amount.Equal(ghs(37.5)) {
		t.Errorf("amount = %s, want %s", s.Amount, ghs(37.5))
	}

	transfers := slices.Collect(b.Transfers())
	if len(transfers) != 1 || !transfers[0].Amount.Equal(ghs(-120)) {
		t.Errorf("unexpected transfers: %+v", transfers)
	}
}

func TestImportLegacySeedsIDs(t *testing.T) {
	b, err := ImportLegacy(strings.NewReader(legacyObjectDump), "GHS")
	if err != nil {
		t.Fatal(err)
	}
	p, err := b.AddProduct("Airtime", ghs(1), 50)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID <= 1705313000000 {
		t.Errorf("new id %d collides with the legacy id range", p.ID)
	}
}

func TestImportLegacyIsUsable(t *testing.T) {
	// The imported book is a live book: recording against it works.
	b, err := ImportLegacy(strings.NewReader(legacyPairDump), "GHS")
	if err != nil {
		t.Fatal(err)
	}
	s, err := b.RecordSale("Soap", 2, Cash, Date{})
	if err != nil {
		t.Fatalf("RecordSale on imported book: %v", err)
	}
	if !b.TotalSales().Equal(ghs(37.5).Add(s.Amount)) {
		t.Errorf("total sales = %s after the new sale", b.TotalSales())
	}
}

func TestImportLegacyMalformed(t *testing.T) {
	tests := []struct {
		name string
		dump string
	}{
		{name: "not json", dump: "not json"},
		{name: "products not an array", dump: `{"products": {}}`},
		{name: "sale without product", dump: `{"sales": [{"date": "2024-01-15", "quantity": 1}]}`},
		{name: "sale without date", dump: `{"products": [], "sales": [{"product": "Soap", "quantity": 1}]}`},
		{name: "duplicate product name", dump: `{"products": [["Soap", {"price": 1}], ["Soap", {"price": 2}]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportLegacy(strings.NewReader(tt.dump), "GHS"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestImportLegacyRoundTrip(t *testing.T) {
	b, err := ImportLegacy(strings.NewReader(legacyObjectDump), "GHS")
	if err != nil {
		t.Fatal(err)
	}
	store := NewMemStore()
	if err := b.Save(store); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadBook(store, "GHS")
	if err != nil {
		t.Fatal(err)
	}
	if !b.Equal(loaded) {
		t.Error("imported book did not survive a save and load")
	}
}
