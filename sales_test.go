package bakala

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestRecordSale(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Bottled Water", ghs(12.50), 40); err != nil {
		t.Fatal(err)
	}

	day := NewDate(2024, time.January, 15)
	s, err := b.RecordSale("Bottled Water", 3, MobileMoney, day)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if s.Product != "Bottled Water" || s.Quantity != 3 || s.Method != MobileMoney || s.Date != day {
		t.Errorf("unexpected sale: %+v", s)
	}
	if !s.UnitPrice.Equal(ghs(12.50)) {
		t.Errorf("unit price = %s, want %s", s.UnitPrice, ghs(12.50))
	}
	if !s.Amount.Equal(ghs(37.50)) {
		t.Errorf("amount = %s, want %s", s.Amount, ghs(37.50))
	}

	p := b.Product("Bottled Water")
	if p.Quantity != 37 || p.Sales != 3 {
		t.Errorf("product after sale: quantity = %d, sales = %d, want 37, 3", p.Quantity, p.Sales)
	}
	if !b.TotalSales().Equal(ghs(37.50)) {
		t.Errorf("total sales = %s, want %s", b.TotalSales(), ghs(37.50))
	}
}

func TestRecordSaleDefaultsToToday(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 10); err != nil {
		t.Fatal(err)
	}
	s, err := b.RecordSale("Soap", 1, Cash, Date{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Date != Today() {
		t.Errorf("date = %v, want today", s.Date)
	}
}

func TestRecordSaleFailuresMutateNothing(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 10); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		product  string
		quantity int
		sentinel error
	}{
		{name: "unknown product", product: "Shampoo", quantity: 1, sentinel: ErrNotFound},
		{name: "zero quantity", product: "Soap", quantity: 0, sentinel: ErrValidation},
		{name: "negative quantity", product: "Soap", quantity: -2, sentinel: ErrValidation},
		{name: "more than stock", product: "Soap", quantity: 11, sentinel: ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.RecordSale(tt.product, tt.quantity, Cash, Date{})
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("got %v, want %v", err, tt.sentinel)
			}
		})
	}

	// No partial effect from any of the failures above.
	p := b.Product("Soap")
	if p.Quantity != 10 || p.Sales != 0 {
		t.Errorf("product mutated: quantity = %d, sales = %d, want 10, 0", p.Quantity, p.Sales)
	}
	if n := len(slices.Collect(b.Sales())); n != 0 {
		t.Errorf("ledger has %d sales, want 0", n)
	}
	if !b.TotalSales().IsZero() {
		t.Errorf("total sales = %s, want zero", b.TotalSales())
	}
}

func TestRecordSaleExactStock(t *testing.T) {
	// Selling the exact stock succeeds and leaves the product at quantity zero.
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 10); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordSale("Soap", 10, Cash, Date{}); err != nil {
		t.Fatalf("selling the whole stock: %v", err)
	}
	p := b.Product("Soap")
	if p == nil {
		t.Fatal("sold-out product vanished from the registry")
	}
	if p.Quantity != 0 || p.Sales != 10 {
		t.Errorf("quantity = %d, sales = %d, want 0, 10", p.Quantity, p.Sales)
	}
}

func TestDeleteSaleIsInverse(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 10); err != nil {
		t.Fatal(err)
	}
	before := *b.Product("Soap")
	total := b.TotalSales()

	s, err := b.RecordSale("Soap", 4, Bank, NewDate(2024, time.January, 15))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteSale(s.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}

	after := *b.Product("Soap")
	if after.ID != before.ID || after.Name != before.Name ||
		!after.Price.Equal(before.Price) ||
		after.Quantity != before.Quantity || after.Sales != before.Sales {
		t.Errorf("product not restored: got %+v, want %+v", after, before)
	}
	if !b.TotalSales().Equal(total) {
		t.Errorf("total sales = %s, want %s", b.TotalSales(), total)
	}
	if n := len(slices.Collect(b.Sales())); n != 0 {
		t.Errorf("ledger has %d sales, want 0", n)
	}
}

func TestDeleteSaleUnknownID(t *testing.T) {
	b := NewBook("GHS")
	if err := b.DeleteSale(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}

func TestDeleteSaleRecreatesRemovedProduct(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 10); err != nil {
		t.Fatal(err)
	}
	s, err := b.RecordSale("Soap", 4, Cash, Date{})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.RemoveProduct("Soap"); err != nil {
		t.Fatal(err)
	}

	if err := b.DeleteSale(s.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	p := b.Product("Soap")
	if p == nil {
		t.Fatal("product not re-created from the deleted sale")
	}
	if p.Quantity != 4 || !p.Price.Equal(ghs(5)) {
		t.Errorf("re-created product: quantity = %d, price = %s, want 4, %s", p.Quantity, p.Price, ghs(5))
	}
}

func TestDeleteSaleKeepsCumulativeSalesNonNegative(t *testing.T) {
	// Two sales, then the product is removed. Deleting the first sale
	// re-creates the product with a zero counter; deleting the second must
	// not drive the counter below zero.
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 10); err != nil {
		t.Fatal(err)
	}
	s1, err := b.RecordSale("Soap", 3, Cash, Date{})
	if err != nil {
		t.Fatal(err)
	}
	s2, err := b.RecordSale("Soap", 4, Cash, Date{})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.RemoveProduct("Soap"); err != nil {
		t.Fatal(err)
	}

	if err := b.DeleteSale(s1.ID); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteSale(s2.ID); err != nil {
		t.Fatal(err)
	}

	p := b.Product("Soap")
	if p == nil {
		t.Fatal("product not re-created")
	}
	if p.Sales != 0 {
		t.Errorf("cumulative sales = %d, want 0", p.Sales)
	}
	if p.Quantity != 7 {
		t.Errorf("quantity = %d, want the 7 returned units", p.Quantity)
	}
	if !b.TotalSales().IsZero() {
		t.Errorf("total sales = %s, want zero", b.TotalSales())
	}
}

func TestSalesFilters(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Bottled Water", ghs(2), 100); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddProduct("Soap", ghs(5), 100); err != nil {
		t.Fatal(err)
	}
	mustSell := func(name string, q int, m PaymentMethod, d Date) {
		t.Helper()
		if _, err := b.RecordSale(name, q, m, d); err != nil {
			t.Fatal(err)
		}
	}
	jan15 := NewDate(2024, time.January, 15)
	feb01 := NewDate(2024, time.February, 1)
	mustSell("Bottled Water", 1, Cash, jan15)
	mustSell("Soap", 2, MobileMoney, jan15)
	mustSell("Bottled Water", 3, MobileMoney, feb01)

	count := func(filters ...func(Sale) bool) int {
		return len(slices.Collect(b.Sales(filters...)))
	}

	if got := count(); got != 3 {
		t.Errorf("no filter: %d sales, want 3", got)
	}
	if got := count(SaleInMonth(NewMonth(2024, time.January))); got != 2 {
		t.Errorf("january: %d sales, want 2", got)
	}
	if got := count(SaleOfProduct("water")); got != 2 {
		t.Errorf("product substring: %d sales, want 2", got)
	}
	if got := count(SaleByMethod(MobileMoney)); got != 2 {
		t.Errorf("momo: %d sales, want 2", got)
	}
	// Filters combine with AND semantics.
	if got := count(SaleInMonth(NewMonth(2024, time.January)), SaleByMethod(MobileMoney)); got != 1 {
		t.Errorf("january momo: %d sales, want 1", got)
	}
}

func TestTotalSalesMatchesLedger(t *testing.T) {
	b := NewBook("GHS")
	if _, err := b.AddProduct("Soap", ghs(5), 100); err != nil {
		t.Fatal(err)
	}
	var lastID int64
	for i := 1; i <= 5; i++ {
		s, err := b.RecordSale("Soap", i, Cash, Date{})
		if err != nil {
			t.Fatal(err)
		}
		lastID = s.ID
	}
	if err := b.DeleteSale(lastID); err != nil {
		t.Fatal(err)
	}
	if !b.TotalSales().Equal(SumSales(b)) {
		t.Errorf("accumulator %s drifted from ledger sum %s", b.TotalSales(), SumSales(b))
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		str     string
		want    PaymentMethod
		wantErr bool
	}{
		{str: "cash", want: Cash},
		{str: "momo", want: MobileMoney},
		{str: "mobile-money", want: MobileMoney},
		{str: "bank", want: Bank},
		{str: "cheque", wantErr: true},
		{str: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			got, err := ParsePaymentMethod(tt.str)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
