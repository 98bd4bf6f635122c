package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdultAge is the first age at which a user may record income.
const AdultAge = 18

// User is the domain entity for a household member.
// ID is the storage key; Identifier is the opaque token exposed over the API.
type User struct {
	ID         int64
	Identifier string
	Name       string
	Age        int
	Email      string
	CreatedAt  time.Time
}

// IsMinor reports whether the user is under AdultAge.
func (u User) IsMinor() bool { return u.Age < AdultAge }

// UserSummary is a user together with its aggregated amounts.
type UserSummary struct {
	User
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Balance is income minus expense.
func (s UserSummary) Balance() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// Totals aggregates amounts and counts across all users.
type Totals struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	UserCount        int64
	TransactionCount int64
}

// NetBalance is income minus expense over every transaction.
func (t Totals) NetBalance() decimal.Decimal {
	return t.TotalIncome.Sub(t.TotalExpense)
}
