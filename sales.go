package bakala

import (
	"fmt"
	"iter"
	"strings"
)

// PaymentMethod enumerates how a sale was settled.
type PaymentMethod int

const (
	// Cash is payment in physical cash.
	Cash PaymentMethod = iota
	// MobileMoney is payment over a mobile-money wallet.
	MobileMoney
	// Bank is payment into the bank account.
	Bank
)

func (m PaymentMethod) String() string {
	switch m {
	case Cash:
		return "cash"
	case MobileMoney:
		return "momo"
	case Bank:
		return "bank"
	default:
		return "unknown"
	}
}

// PaymentMethods lists the valid methods in display order.
var PaymentMethods = []PaymentMethod{Cash, MobileMoney, Bank}

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "momo", "mobile-money":
		return MobileMoney, nil
	case "bank":
		return Bank, nil
	default:
		return 0, fmt.Errorf("unknown payment method: %q", s)
	}
}

// MarshalJSON persists the method under its string name.
func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON reads the method from its string name.
func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePaymentMethod(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sale is one entry of the sales ledger. Product is a weak reference by name:
// removing the product does not invalidate past sales. UnitPrice is captured
// at record time so later price changes never touch historical totals, and
// Amount always equals UnitPrice × Quantity exactly.
type Sale struct {
	ID        int64         `json:"id"`
	Date      Date          `json:"date"`
	Product   string        `json:"product"`
	Quantity  int           `json:"quantity"`
	Amount    Money         `json:"amount"`
	Method    PaymentMethod `json:"paymentMethod"`
	UnitPrice Money         `json:"unitPrice"`
}

// RecordSale sells quantity units of the named product, settled with the
// given method, dated on (today when zero). The product's current price is
// captured immutably into the sale. On success the product quantity, the
// cumulative-sales counter, the ledger and the total-sales accumulator are
// all updated in one step; on failure nothing changes.
//
// A product driven to zero quantity stays in the registry with quantity 0,
// keeping its price history for the next restock.
func (b *Book) RecordSale(name string, quantity int, method PaymentMethod, on Date) (*Sale, error) {
	p, ok := b.index[name]
	if !ok {
		return nil, notFoundErr("product %q not found", name)
	}
	if quantity <= 0 {
		return nil, validationErr("quantity must be a positive number, got %d", quantity)
	}
	if quantity > p.Quantity {
		return nil, insufficientStockErr("insufficient stock for %q: want %d, have %d", name, quantity, p.Quantity)
	}
	if method != Cash && method != MobileMoney && method != Bank {
		return nil, validationErr("unknown payment method")
	}
	if on.IsZero() {
		on = Today()
	}

	sale := Sale{
		ID:        b.newID(),
		Date:      on,
		Product:   name,
		Quantity:  quantity,
		UnitPrice: p.Price,
		Amount:    p.Price.Mul(quantity),
		Method:    method,
	}

	p.Quantity -= quantity
	p.Sales += quantity
	b.sales = append(b.sales, sale)
	b.totalSales = b.totalSales.Add(sale.Amount)
	return &sale, nil
}

// DeleteSale removes a sale and reverses its effect on all four mutated
// quantities: the product quantity, the cumulative-sales counter, the
// total-sales accumulator and the ledger membership. When the referenced
// product has been removed since, a best-effort registry entry is re-created
// from the sale itself (quantity and unit price at time of sale) so the
// returned stock is not lost.
func (b *Book) DeleteSale(id int64) error {
	at := -1
	for i := range b.sales {
		if b.sales[i].ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return notFoundErr("sale %d not found", id)
	}
	sale := b.sales[at]

	if p, ok := b.index[sale.Product]; ok {
		p.Quantity += sale.Quantity
		// A re-created entry restarts its counter at zero, so older sales of
		// the same name can outnumber it. The counter stays non-negative.
		p.Sales -= min(sale.Quantity, p.Sales)
	} else {
		p := &Product{
			ID:       b.newID(),
			Name:     sale.Product,
			Price:    sale.UnitPrice,
			Quantity: sale.Quantity,
		}
		b.products = append(b.products, p)
		b.index[sale.Product] = p
	}

	b.totalSales = b.totalSales.Sub(sale.Amount)
	b.sales = append(b.sales[:at], b.sales[at+1:]...)
	return nil
}

// Sales returns an iterator over the sales ledger in record order. With no
// filters every sale is yielded; with filters a sale must satisfy all of them.
func (b *Book) Sales(filters ...func(Sale) bool) iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range b.sales {
			accept := true
			for _, filter := range filters {
				if !filter(s) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// SaleInMonth returns a predicate keeping sales dated in the given month.
func SaleInMonth(m Month) func(Sale) bool {
	return func(s Sale) bool { return m.Contains(s.Date) }
}

// SaleOfProduct returns a predicate keeping sales whose product name contains
// the given substring, case-insensitively.
func SaleOfProduct(substring string) func(Sale) bool {
	substring = strings.ToLower(substring)
	return func(s Sale) bool {
		return strings.Contains(strings.ToLower(s.Product), substring)
	}
}

// SaleByMethod returns a predicate keeping sales settled with the given method.
func SaleByMethod(m PaymentMethod) func(Sale) bool {
	return func(s Sale) bool { return s.Method == m }
}
