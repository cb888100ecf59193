package bakala

import "iter"

// Product is an entry of the product registry. Name is the lookup key; the
// quantity on hand and the cumulative units sold are derived counters kept in
// sync by the sales ledger.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
	Sales    int    `json:"sales"`
}

// AddProduct creates a product or restocks an existing one. When the name
// already exists the quantity is added to the entry and its price is left
// unchanged: existing stock is not repriced.
func (b *Book) AddProduct(name string, price Money, quantity int) (*Product, error) {
	if name == "" {
		return nil, validationErr("product name is required")
	}
	if quantity <= 0 {
		return nil, validationErr("quantity must be a positive number, got %d", quantity)
	}
	// The price is validated even on a restock, where its value is not used.
	if !price.IsPositive() {
		return nil, validationErr("price must be a positive number, got %s", price)
	}
	if p, ok := b.index[name]; ok {
		// Restock: price of the existing stock is not touched.
		p.Quantity += quantity
		return p, nil
	}
	p := &Product{
		ID:       b.newID(),
		Name:     name,
		Price:    price.withCurrency(b.currency),
		Quantity: quantity,
	}
	b.products = append(b.products, p)
	b.index[name] = p
	return p, nil
}

// RemoveProduct deletes the entry unconditionally. It does not cascade into
// the sales ledger: past sales keep referencing the name, and deleting one of
// them later re-creates the product (see DeleteSale).
func (b *Book) RemoveProduct(name string) error {
	p, ok := b.index[name]
	if !ok {
		return notFoundErr("product %q not found", name)
	}
	delete(b.index, name)
	for i := range b.products {
		if b.products[i] == p {
			b.products = append(b.products[:i], b.products[i+1:]...)
			break
		}
	}
	return nil
}

// StockOf returns the quantity on hand for a product. Pure read.
func (b *Book) StockOf(name string) (int, error) {
	p, ok := b.index[name]
	if !ok {
		return 0, notFoundErr("product %q not found", name)
	}
	return p.Quantity, nil
}

// Product returns a copy of the registry entry for name, or nil if unknown.
func (b *Book) Product(name string) *Product {
	p, ok := b.index[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// Products returns an iterator over the registry in id order (the order
// products were first added).
func (b *Book) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range b.products {
			if !yield(*p) {
				return
			}
		}
	}
}
