package repo

import (
	"context"
	"errors"
	"fmt"

	dom "ControleGastos/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgTransactionSelect = `
	SELECT t.id, t.description, t.amount, t.kind, t.user_id, t.created_at, u.identifier, u.name
	FROM transactions t
	JOIN users u ON u.id = t.user_id`

// PGTransactionRepo implements TransactionRepo with Postgres.
type PGTransactionRepo struct {
	db *pgxpool.Pool
}

func NewPGTransactionRepo(db *pgxpool.Pool) *PGTransactionRepo {
	return &PGTransactionRepo{db: db}
}

func (r *PGTransactionRepo) List(ctx context.Context) ([]dom.Transaction, error) {
	rows, err := r.db.Query(ctx, pgTransactionSelect+` ORDER BY t.created_at DESC, t.id DESC`)
	if err != nil {
		return nil, err
	}
	return collectPGTransactions(rows)
}

func (r *PGTransactionRepo) ListByUserIdentifier(ctx context.Context, identifier string) ([]dom.Transaction, error) {
	rows, err := r.db.Query(ctx,
		pgTransactionSelect+` WHERE u.identifier = $1 ORDER BY t.created_at DESC, t.id DESC`, identifier)
	if err != nil {
		return nil, err
	}
	return collectPGTransactions(rows)
}

func (r *PGTransactionRepo) Totals(ctx context.Context) (dom.Totals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0),
			COUNT(*),
			(SELECT COUNT(*) FROM users)
		FROM transactions`
	var t dom.Totals
	err := r.db.QueryRow(ctx, query).Scan(&t.TotalIncome, &t.TotalExpense, &t.TransactionCount, &t.UserCount)
	return t, err
}

// CreateChecked takes a row lock on the owner so concurrent inserts for the
// same user see each other's amounts.
func (r *PGTransactionRepo) CreateChecked(ctx context.Context, t dom.Transaction, check BalanceCheck) (dom.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var owner dom.User
	err = tx.QueryRow(ctx,
		`SELECT id, identifier, name FROM users WHERE id = $1 FOR UPDATE`, t.UserID,
	).Scan(&owner.ID, &owner.Identifier, &owner.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Transaction{}, ErrNotFound
	}
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("lock user: %w", err)
	}

	var sums Sums
	err = tx.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0)
		FROM transactions WHERE user_id = $1`, t.UserID,
	).Scan(&sums.Income, &sums.Expense)
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("sums: %w", err)
	}
	if err := check(sums); err != nil {
		return dom.Transaction{}, err
	}

	out := t
	err = tx.QueryRow(ctx, `
		INSERT INTO transactions (description, amount, kind, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		t.Description, t.Amount, string(t.Kind), t.UserID,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return dom.Transaction{}, fmt.Errorf("commit: %w", err)
	}

	out.CreatedAt = out.CreatedAt.UTC()
	out.UserIdentifier = owner.Identifier
	out.UserName = owner.Name
	return out, nil
}

func collectPGTransactions(rows pgx.Rows) ([]dom.Transaction, error) {
	defer rows.Close()
	list := []dom.Transaction{}
	for rows.Next() {
		var t dom.Transaction
		var kind string
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &kind, &t.UserID, &t.CreatedAt,
			&t.UserIdentifier, &t.UserName); err != nil {
			return nil, err
		}
		t.Kind = dom.Kind(kind)
		t.CreatedAt = t.CreatedAt.UTC()
		list = append(list, t)
	}
	return list, rows.Err()
}
