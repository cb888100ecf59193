package bakala

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file imports the dumps of the browser-based predecessor. That tool
// persisted to localStorage in two diverging formats over its life:
//
//   - a combined object where products are [name, details] pairs and sales
//     live under "salesHistory" with captured amount and unitPrice;
//   - per-key arrays where products carry their own id and name, sales live
//     under "sales" with a per-unit "price", and transfers under "transfers"
//     or "bankTransfers".
//
// ImportLegacy accepts a single JSON document in either shape (or a mix) and
// normalizes it into a Book.

// ImportLegacy reads a legacy localStorage dump and builds a book from it.
// Derived counters are recomputed rather than trusted: the total-sales
// accumulator of the dump is ignored.
func ImportLegacy(r io.Reader, currency string) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read legacy dump: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not parse legacy dump: %w", err)
	}

	b := NewBook(currency)

	if jval, err := jsonpath.Get("$.products", jobj); err == nil {
		if err := importProducts(b, jval); err != nil {
			return nil, err
		}
	}

	jsales, err := jsonpath.Get("$.salesHistory", jobj)
	if err != nil {
		jsales, err = jsonpath.Get("$.sales", jobj)
	}
	if err == nil {
		if err := importSales(b, jsales); err != nil {
			return nil, err
		}
	}

	if jval, err := jsonpath.Get("$.expenses", jobj); err == nil {
		if err := importExpenses(b, jval); err != nil {
			return nil, err
		}
	}

	jtransfers, err := jsonpath.Get("$.bankTransfers", jobj)
	if err != nil {
		jtransfers, err = jsonpath.Get("$.transfers", jobj)
	}
	if err == nil {
		if err := importTransfers(b, jtransfers); err != nil {
			return nil, err
		}
	}

	b.seedNextID()
	b.reconcile()
	return b, nil
}

func importProducts(b *Book, jval any) error {
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("legacy products: expected an array, got %T", jval)
	}
	for i, jentry := range jlist {
		switch entry := jentry.(type) {
		case []any:
			// [name, {price, quantity, sales}] pair.
			if len(entry) != 2 {
				return fmt.Errorf("legacy products[%d]: expected a [name, details] pair", i)
			}
			name, _ := entry[0].(string)
			details, ok := entry[1].(map[string]any)
			if name == "" || !ok {
				return fmt.Errorf("legacy products[%d]: malformed [name, details] pair", i)
			}
			b.products = append(b.products, &Product{
				ID:       b.newID(),
				Name:     name,
				Price:    jmoney(details["price"], b.currency),
				Quantity: jint(details["quantity"]),
				Sales:    jint(details["sales"]),
			})
		case map[string]any:
			name, _ := entry["name"].(string)
			if name == "" {
				return fmt.Errorf("legacy products[%d]: missing name", i)
			}
			b.products = append(b.products, &Product{
				ID:       jid(entry["id"], b),
				Name:     name,
				Price:    jmoney(entry["price"], b.currency),
				Quantity: jint(entry["quantity"]),
				Sales:    jint(entry["sales"]),
			})
		default:
			return fmt.Errorf("legacy products[%d]: unexpected entry %T", i, jentry)
		}
	}
	// The pair format carries no ids; keep whatever order the dump had but
	// make the index consistent either way.
	for _, p := range b.products {
		if _, dup := b.index[p.Name]; dup {
			return fmt.Errorf("legacy products: duplicate name %q", p.Name)
		}
		b.index[p.Name] = p
	}
	return nil
}

func importSales(b *Book, jval any) error {
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("legacy sales: expected an array, got %T", jval)
	}
	for i, jentry := range jlist {
		entry, ok := jentry.(map[string]any)
		if !ok {
			return fmt.Errorf("legacy sales[%d]: unexpected entry %T", i, jentry)
		}
		name, _ := entry["product"].(string)
		if name == "" {
			name, _ = entry["productName"].(string)
		}
		if name == "" {
			return fmt.Errorf("legacy sales[%d]: missing product name", i)
		}
		day, err := jdate(entry["date"])
		if err != nil {
			return fmt.Errorf("legacy sales[%d]: %w", i, err)
		}
		method, err := jmethod(entry["paymentMethod"])
		if err != nil {
			return fmt.Errorf("legacy sales[%d]: %w", i, err)
		}
		quantity := jint(entry["quantity"])

		unit := jmoney(entry["unitPrice"], b.currency)
		if unit.IsZero() {
			unit = jmoney(entry["price"], b.currency)
		}
		amount := jmoney(entry["amount"], b.currency)
		if amount.IsZero() {
			amount = unit.Mul(quantity)
		}

		b.sales = append(b.sales, Sale{
			ID:        jid(entry["id"], b),
			Date:      day,
			Product:   name,
			Quantity:  quantity,
			UnitPrice: unit,
			Amount:    amount,
			Method:    method,
		})
	}
	sort.SliceStable(b.sales, func(i, j int) bool { return b.sales[i].Date.Before(b.sales[j].Date) })
	return nil
}

func importExpenses(b *Book, jval any) error {
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("legacy expenses: expected an array, got %T", jval)
	}
	for i, jentry := range jlist {
		entry, ok := jentry.(map[string]any)
		if !ok {
			return fmt.Errorf("legacy expenses[%d]: unexpected entry %T", i, jentry)
		}
		day, err := jdate(entry["date"])
		if err != nil {
			return fmt.Errorf("legacy expenses[%d]: %w", i, err)
		}
		category, _ := entry["category"].(string)
		description, _ := entry["description"].(string)
		b.expenses = append(b.expenses, Expense{
			ID:          jid(entry["id"], b),
			Date:        day,
			Category:    category,
			Description: description,
			Amount:      jmoney(entry["amount"], b.currency),
		})
	}
	return nil
}

func importTransfers(b *Book, jval any) error {
	jlist, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("legacy transfers: expected an array, got %T", jval)
	}
	for i, jentry := range jlist {
		entry, ok := jentry.(map[string]any)
		if !ok {
			return fmt.Errorf("legacy transfers[%d]: unexpected entry %T", i, jentry)
		}
		day, err := jdate(entry["date"])
		if err != nil {
			return fmt.Errorf("legacy transfers[%d]: %w", i, err)
		}
		description, _ := entry["description"].(string)
		b.transfers = append(b.transfers, Transfer{
			ID:          jid(entry["id"], b),
			Date:        day,
			Description: description,
			Amount:      jmoney(entry["amount"], b.currency),
		})
	}
	return nil
}

// jint reads a JSON number as an int, tolerating absence.
func jint(jval any) int {
	f, _ := jval.(float64)
	return int(f)
}

// jid reads a legacy id (the browser used millisecond timestamps); a missing
// id gets a fresh one.
func jid(jval any, b *Book) int64 {
	f, ok := jval.(float64)
	if !ok || f <= 0 {
		return b.newID()
	}
	return int64(f)
}

// jmoney reads a JSON number or numeric string as an amount.
func jmoney(jval any, currency string) Money {
	switch v := jval.(type) {
	case float64:
		return M(decimal.NewFromFloat(v), currency)
	case string:
		if m, err := ParseMoney(v, currency); err == nil {
			return m
		}
	}
	return M(decimal.Zero, currency)
}

// jdate reads a legacy date: either a bare day or a full browser timestamp.
func jdate(jval any) (Date, error) {
	s, ok := jval.(string)
	if !ok {
		return Date{}, fmt.Errorf("missing date")
	}
	return ParseDate(s)
}

// jmethod reads a legacy payment method, defaulting to cash when absent (the
// earliest dumps predate payment methods).
func jmethod(jval any) (PaymentMethod, error) {
	s, ok := jval.(string)
	if !ok || s == "" {
		return Cash, nil
	}
	return ParsePaymentMethod(s)
}
