package bakala

import (
	"errors"
	"fmt"
)

// Kind classifies the failures a book operation can report.
type Kind int

const (
	// KindValidation flags malformed, missing or out-of-range input.
	KindValidation Kind = iota
	// KindNotFound flags an operation referencing an id or name absent from its ledger.
	KindNotFound
	// KindInsufficientStock flags a sale whose quantity exceeds the available stock.
	KindInsufficientStock
	// KindPersistence flags a storage failure. The in-memory mutation that
	// preceded it is NOT rolled back.
	KindPersistence
)

// Sentinels for errors.Is matching. Every *Error matches exactly one of them.
var (
	ErrValidation        = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPersistence       = errors.New("persistence failure")
)

// Error is the structured outcome of a failed book operation: a kind the
// caller can branch on and a message fit to surface to the user.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrValidation
	case KindNotFound:
		return target == ErrNotFound
	case KindInsufficientStock:
		return target == ErrInsufficientStock
	case KindPersistence:
		return target == ErrPersistence
	}
	return false
}

func validationErr(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundErr(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func insufficientStockErr(format string, args ...any) error {
	return &Error{Kind: KindInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

func persistenceErr(format string, args ...any) error {
	return &Error{Kind: KindPersistence, Message: fmt.Sprintf(format, args...)}
}
