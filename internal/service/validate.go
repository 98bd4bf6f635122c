package service

import (
	"strings"
	"unicode/utf8"

	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/repo"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 200
	maxEmailLen       = 254
	minAge, maxAge    = 1, 120
)

var (
	// maxAmount is the largest value a NUMERIC(18,2) column holds.
	maxAmount = decimal.RequireFromString("9999999999999999.99")
	// maxUserTotal bounds each of a user's income and expense sums so they
	// still fit in int64 cents.
	maxUserTotal = decimal.RequireFromString("90000000000000000.00")
)

var validate = validator.New()

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return "", ErrInvalidName
	}
	return name, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if len(email) > maxEmailLen || validate.Var(email, "required,email") != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func checkAge(age int) error {
	if age < minAge || age > maxAge {
		return ErrInvalidAge
	}
	return nil
}

func normalizeDescription(desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" || utf8.RuneCountInString(desc) > maxDescriptionLen {
		return "", ErrInvalidDescription
	}
	return desc, nil
}

// checkAmount accepts positive amounts up to maxAmount with cent precision.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(maxAmount) || !amount.Equal(amount.Round(2)) {
		return ErrInvalidAmount
	}
	return nil
}

// checkUserTotals rejects an amount that would push the owner's sum for
// kind past maxUserTotal.
func checkUserTotals(kind dom.Kind, amount decimal.Decimal, sums repo.Sums) error {
	current := sums.Income
	if kind == dom.KindExpense {
		current = sums.Expense
	}
	if current.Add(amount).GreaterThan(maxUserTotal) {
		return ErrTotalLimit
	}
	return nil
}

func checkKind(k dom.Kind) error {
	if !k.Valid() {
		return ErrInvalidKind
	}
	return nil
}
