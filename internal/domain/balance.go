package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Rejection reasons returned by EvaluateTransaction.
var (
	ErrMinorIncome         = errors.New("minors may only record expenses")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Candidate is a transaction that has not been committed yet, together with
// the facts about its owner that the rules depend on.
type Candidate struct {
	Kind    Kind
	Amount  decimal.Decimal
	UserAge int
	Balance decimal.Decimal
}

// EvaluateTransaction decides whether c may be committed. It returns nil to
// accept, or ErrMinorIncome / ErrInsufficientBalance to reject. The minority
// rule is checked first. Amount positivity is the caller's job.
func EvaluateTransaction(c Candidate) error {
	if c.UserAge < AdultAge && c.Kind == KindIncome {
		return ErrMinorIncome
	}
	if c.Kind == KindExpense && c.Balance.LessThan(c.Amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// IsRejection reports whether err is one of the rule rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrMinorIncome) || errors.Is(err, ErrInsufficientBalance)
}
