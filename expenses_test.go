package bakala

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestRecordExpense(t *testing.T) {
	b := NewBook("GHS")
	day := NewDate(2024, time.January, 15)
	e, err := b.RecordExpense("transport", "Fuel for delivery bike", ghs(30), day)
	if err != nil {
		t.Fatalf("RecordExpense: %v", err)
	}
	if e.Category != "transport" || e.Description != "Fuel for delivery bike" || e.Date != day {
		t.Errorf("unexpected expense: %+v", e)
	}
	if !e.Amount.Equal(ghs(30)) {
		t.Errorf("amount = %s, want %s", e.Amount, ghs(30))
	}
}

func TestRecordExpenseValidation(t *testing.T) {
	b := NewBook("GHS")
	tests := []struct {
		name        string
		category    string
		description string
		amount      Money
	}{
		{name: "empty category", category: "", description: "Fuel", amount: ghs(30)},
		{name: "empty description", category: "transport", description: "", amount: ghs(30)},
		{name: "zero amount", category: "transport", description: "Fuel", amount: ghs(0)},
		{name: "negative amount", category: "transport", description: "Fuel", amount: ghs(-30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.RecordExpense(tt.category, tt.description, tt.amount, Date{})
			if !errors.Is(err, ErrValidation) {
				t.Errorf("got %v, want a validation error", err)
			}
		})
	}
	if n := len(slices.Collect(b.Expenses())); n != 0 {
		t.Errorf("failed records left %d expenses in the log", n)
	}
}

func TestDeleteExpense(t *testing.T) {
	b := NewBook("GHS")
	e, err := b.RecordExpense("rent", "Shop rent", ghs(400), Date{})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteExpense(e.ID); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if n := len(slices.Collect(b.Expenses())); n != 0 {
		t.Errorf("log has %d expenses, want 0", n)
	}
	if err := b.DeleteExpense(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want not found", err)
	}
}

func TestExpenseFilters(t *testing.T) {
	b := NewBook("GHS")
	mustRecord := func(category string, d Date) {
		t.Helper()
		if _, err := b.RecordExpense(category, "x", ghs(10), d); err != nil {
			t.Fatal(err)
		}
	}
	mustRecord("transport", NewDate(2024, time.January, 15))
	mustRecord("rent", NewDate(2024, time.January, 20))
	mustRecord("transport", NewDate(2024, time.February, 1))

	if got := len(slices.Collect(b.Expenses(ExpenseOfCategory("transport")))); got != 2 {
		t.Errorf("transport: %d expenses, want 2", got)
	}
	jan := NewMonth(2024, time.January)
	if got := len(slices.Collect(b.Expenses(ExpenseInMonth(jan), ExpenseOfCategory("transport")))); got != 1 {
		t.Errorf("january transport: %d expenses, want 1", got)
	}
}
