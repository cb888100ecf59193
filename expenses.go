package bakala

import "iter"

// Expense is one entry of the expense log.
type Expense struct {
	ID          int64  `json:"id"`
	Date        Date   `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
}

// RecordExpense appends an expense dated on (today when zero).
func (b *Book) RecordExpense(category, description string, amount Money, on Date) (*Expense, error) {
	if category == "" {
		return nil, validationErr("expense category is required")
	}
	if description == "" {
		return nil, validationErr("expense description is required")
	}
	if !amount.IsPositive() {
		return nil, validationErr("expense amount must be a positive number, got %s", amount)
	}
	if on.IsZero() {
		on = Today()
	}
	e := Expense{
		ID:          b.newID(),
		Date:        on,
		Category:    category,
		Description: description,
		Amount:      amount.withCurrency(b.currency),
	}
	b.expenses = append(b.expenses, e)
	return &e, nil
}

// DeleteExpense removes an expense by id. No cascading effects.
func (b *Book) DeleteExpense(id int64) error {
	for i := range b.expenses {
		if b.expenses[i].ID == id {
			b.expenses = append(b.expenses[:i], b.expenses[i+1:]...)
			return nil
		}
	}
	return notFoundErr("expense %d not found", id)
}

// Expenses returns an iterator over the expense log in record order,
// filtered like Sales.
func (b *Book) Expenses(filters ...func(Expense) bool) iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range b.expenses {
			accept := true
			for _, filter := range filters {
				if !filter(e) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ExpenseInMonth returns a predicate keeping expenses dated in the given month.
func ExpenseInMonth(m Month) func(Expense) bool {
	return func(e Expense) bool { return m.Contains(e.Date) }
}

// ExpenseOfCategory returns a predicate keeping expenses of the given category.
func ExpenseOfCategory(category string) func(Expense) bool {
	return func(e Expense) bool { return e.Category == category }
}
