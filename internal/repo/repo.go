package repo

import (
	"context"
	"errors"

	dom "ControleGastos/internal/domain"

	"github.com/shopspring/decimal"
)

// Errors returned by every driver in place of its native errors.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateIdentifier = errors.New("identifier already exists")
	ErrAmountOutOfRange    = errors.New("amount out of storable range")
)

// UserRepo provides user persistence. Reads return users with their
// summed income and expense.
type UserRepo interface {
	List(ctx context.Context) ([]dom.UserSummary, error)
	GetByIdentifier(ctx context.Context, identifier string) (dom.UserSummary, error)
	IdentifierExists(ctx context.Context, identifier string) (bool, error)
	// EmailExists ignores the user with excludeID (0 excludes nobody).
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	// Update changes name and email of the user with u.ID.
	Update(ctx context.Context, u dom.User) (dom.User, error)
	// Delete removes the user and every transaction it owns.
	Delete(ctx context.Context, id int64) error
}

// Sums holds a user's summed income and expense.
type Sums struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (s Sums) Balance() decimal.Decimal { return s.Income.Sub(s.Expense) }

// BalanceCheck is called with the owner's current sums before an insert.
// A non-nil error aborts the insert and is returned unchanged.
type BalanceCheck func(sums Sums) error

// TransactionRepo provides transaction persistence. Listed transactions carry
// the owner's identifier and name.
type TransactionRepo interface {
	List(ctx context.Context) ([]dom.Transaction, error)
	// ListByUserIdentifier returns an empty list for an unknown identifier.
	ListByUserIdentifier(ctx context.Context, identifier string) ([]dom.Transaction, error)
	Totals(ctx context.Context) (dom.Totals, error)
	// CreateChecked locks the owner, sums its transactions, runs check and
	// inserts t, all in one database transaction.
	CreateChecked(ctx context.Context, t dom.Transaction, check BalanceCheck) (dom.Transaction, error)
}

// Store bundles the repositories of one database.
type Store struct {
	Users        UserRepo
	Transactions TransactionRepo

	ping  func(ctx context.Context) error
	close func() error
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the underlying connections.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
