package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// ParseKind accepts "income"/"expense" in any case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("kind must be %q or %q, got %q", KindIncome, KindExpense, s)
	}
	return k, nil
}

// Transaction is an immutable income or expense record owned by a user.
// UserIdentifier and UserName are filled when the owner is joined in.
type Transaction struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	UserID      int64
	CreatedAt   time.Time

	UserIdentifier string
	UserName       string
}
