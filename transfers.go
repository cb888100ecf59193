package bakala

import "iter"

// Transfer is one entry of the bank-transfer log. The sign of the amount is
// meaningful: positive for money moved into the bank account, negative for
// money moved out.
type Transfer struct {
	ID          int64  `json:"id"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
}

// RecordTransfer appends a bank transfer dated on (today when zero).
func (b *Book) RecordTransfer(description string, amount Money, on Date) (*Transfer, error) {
	if description == "" {
		return nil, validationErr("transfer description is required")
	}
	if amount.IsZero() {
		return nil, validationErr("transfer amount must not be zero")
	}
	if on.IsZero() {
		on = Today()
	}
	t := Transfer{
		ID:          b.newID(),
		Date:        on,
		Description: description,
		Amount:      amount.withCurrency(b.currency),
	}
	b.transfers = append(b.transfers, t)
	return &t, nil
}

// DeleteTransfer removes a transfer by id. No cascading effects.
func (b *Book) DeleteTransfer(id int64) error {
	for i := range b.transfers {
		if b.transfers[i].ID == id {
			b.transfers = append(b.transfers[:i], b.transfers[i+1:]...)
			return nil
		}
	}
	return notFoundErr("transfer %d not found", id)
}

// Transfers returns an iterator over the transfer log in record order,
// filtered like Sales.
func (b *Book) Transfers(filters ...func(Transfer) bool) iter.Seq[Transfer] {
	return func(yield func(Transfer) bool) {
		for _, t := range b.transfers {
			accept := true
			for _, filter := range filters {
				if !filter(t) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// TransferInMonth returns a predicate keeping transfers dated in the given month.
func TransferInMonth(m Month) func(Transfer) bool {
	return func(t Transfer) bool { return m.Contains(t.Date) }
}

// TransferInYear returns a predicate keeping transfers dated in the given year.
func TransferInYear(year int) func(Transfer) bool {
	return func(t Transfer) bool { return t.Date.Year() == year }
}
