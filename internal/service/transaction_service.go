package service

import (
	"context"
	"errors"
	"log/slog"

	"ControleGastos/internal/cache"
	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/repo"

	"github.com/shopspring/decimal"
)

// TransactionService records transactions after the balance rules accept them.
type TransactionService struct {
	users repo.UserRepo
	txs   repo.TransactionRepo
	cache *cache.SummaryCache
	log   *slog.Logger
}

// NewTransactionService creates a TransactionService. If c is nil, caching is disabled.
func NewTransactionService(users repo.UserRepo, txs repo.TransactionRepo, c *cache.SummaryCache, log *slog.Logger) *TransactionService {
	if log == nil {
		log = slog.Default()
	}
	return &TransactionService{users: users, txs: txs, cache: c, log: log}
}

// Create validates the input, evaluates the balance rules against the owner's
// current balance and stores the transaction. Rule rejections are returned as
// domain.ErrMinorIncome or domain.ErrInsufficientBalance; ErrTotalLimit means
// the owner's sum for kind is full.
func (s *TransactionService) Create(ctx context.Context, description string, amount decimal.Decimal, kind dom.Kind, userIdentifier string) (dom.Transaction, error) {
	description, err := normalizeDescription(description)
	if err != nil {
		return dom.Transaction{}, err
	}
	if err := checkAmount(amount); err != nil {
		return dom.Transaction{}, err
	}
	if err := checkKind(kind); err != nil {
		return dom.Transaction{}, err
	}

	owner, err := s.users.GetByIdentifier(ctx, userIdentifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Transaction{}, ErrNotFound
		}
		return dom.Transaction{}, err
	}

	t, err := s.txs.CreateChecked(ctx, dom.Transaction{
		Description: description,
		Amount:      amount,
		Kind:        kind,
		UserID:      owner.ID,
	}, func(sums repo.Sums) error {
		if err := dom.EvaluateTransaction(dom.Candidate{
			Kind:    kind,
			Amount:  amount,
			UserAge: owner.Age,
			Balance: sums.Balance(),
		}); err != nil {
			return err
		}
		return checkUserTotals(kind, amount, sums)
	})
	if err != nil {
		switch {
		case dom.IsRejection(err):
			s.log.Info("transaction rejected",
				"user", userIdentifier, "kind", kind, "amount", amount.StringFixed(2), "reason", err.Error())
			return dom.Transaction{}, err
		case errors.Is(err, repo.ErrNotFound):
			// owner deleted between lookup and insert
			return dom.Transaction{}, ErrNotFound
		}
		return dom.Transaction{}, err
	}

	s.log.Info("transaction created",
		"id", t.ID, "user", userIdentifier, "kind", t.Kind, "amount", t.Amount.StringFixed(2))
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn("cache invalidation failed", "error", err)
		}
	}
	return t, nil
}

// List returns all transactions, newest first.
func (s *TransactionService) List(ctx context.Context) ([]dom.Transaction, error) {
	return s.txs.List(ctx)
}

// ListByUser returns the user's transactions, newest first. Unknown
// identifiers yield an empty list.
func (s *TransactionService) ListByUser(ctx context.Context, identifier string) ([]dom.Transaction, error) {
	return s.txs.ListByUserIdentifier(ctx, identifier)
}
