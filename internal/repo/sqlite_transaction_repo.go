package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dom "ControleGastos/internal/domain"

	"github.com/shopspring/decimal"
)

const sqliteTransactionSelect = `
	SELECT t.id, t.description, t.amount_cents, t.kind, t.user_id, t.created_at, u.identifier, u.name
	FROM transactions t
	JOIN users u ON u.id = t.user_id`

// SQLiteTransactionRepo implements TransactionRepo with SQLite.
type SQLiteTransactionRepo struct {
	db *sql.DB
}

func NewSQLiteTransactionRepo(db *sql.DB) *SQLiteTransactionRepo {
	return &SQLiteTransactionRepo{db: db}
}

func (r *SQLiteTransactionRepo) List(ctx context.Context) ([]dom.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, sqliteTransactionSelect+` ORDER BY t.created_at DESC, t.id DESC`)
	if err != nil {
		return nil, err
	}
	return collectSQLiteTransactions(rows)
}

func (r *SQLiteTransactionRepo) ListByUserIdentifier(ctx context.Context, identifier string) ([]dom.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		sqliteTransactionSelect+` WHERE u.identifier = ? ORDER BY t.created_at DESC, t.id DESC`, identifier)
	if err != nil {
		return nil, err
	}
	return collectSQLiteTransactions(rows)
}

// Totals sums per user in SQL and across users in Go: a single user's sums
// fit in int64 cents, the grand total need not.
func (r *SQLiteTransactionRepo) Totals(ctx context.Context) (dom.Totals, error) {
	t := dom.Totals{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&t.UserCount); err != nil {
		return dom.Totals{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT kind, SUM(amount_cents), COUNT(*)
		FROM transactions
		GROUP BY user_id, kind`)
	if err != nil {
		return dom.Totals{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var cents, n int64
		if err := rows.Scan(&kind, &cents, &n); err != nil {
			return dom.Totals{}, err
		}
		if dom.Kind(kind) == dom.KindIncome {
			t.TotalIncome = t.TotalIncome.Add(fromCents(cents))
		} else {
			t.TotalExpense = t.TotalExpense.Add(fromCents(cents))
		}
		t.TransactionCount += n
	}
	return t, rows.Err()
}

// CreateChecked relies on the single connection of the store for isolation:
// no other statement runs between the balance read and the insert.
func (r *SQLiteTransactionRepo) CreateChecked(ctx context.Context, t dom.Transaction, check BalanceCheck) (dom.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var owner dom.User
	err = tx.QueryRowContext(ctx,
		`SELECT id, identifier, name FROM users WHERE id = ?`, t.UserID,
	).Scan(&owner.ID, &owner.Identifier, &owner.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return dom.Transaction{}, ErrNotFound
	}
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("load user: %w", err)
	}

	cents, err := toCents(t.Amount)
	if err != nil {
		return dom.Transaction{}, err
	}

	var income, expense int64
	err = tx.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'income' THEN amount_cents END), 0),
			COALESCE(SUM(CASE WHEN kind = 'expense' THEN amount_cents END), 0)
		FROM transactions WHERE user_id = ?`, t.UserID,
	).Scan(&income, &expense)
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("sums: %w", err)
	}
	if err := check(Sums{Income: fromCents(income), Expense: fromCents(expense)}); err != nil {
		return dom.Transaction{}, err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (description, amount_cents, kind, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.Description, cents, string(t.Kind), t.UserID, formatSQLiteTime(now),
	)
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return dom.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return dom.Transaction{}, fmt.Errorf("commit: %w", err)
	}

	out := t
	out.ID = id
	out.Amount = fromCents(cents)
	out.CreatedAt, _ = parseSQLiteTime(formatSQLiteTime(now))
	out.UserIdentifier = owner.Identifier
	out.UserName = owner.Name
	return out, nil
}

func collectSQLiteTransactions(rows *sql.Rows) ([]dom.Transaction, error) {
	defer rows.Close()
	list := []dom.Transaction{}
	for rows.Next() {
		var t dom.Transaction
		var cents int64
		var kind, created string
		if err := rows.Scan(&t.ID, &t.Description, &cents, &kind, &t.UserID, &created,
			&t.UserIdentifier, &t.UserName); err != nil {
			return nil, err
		}
		ts, err := parseSQLiteTime(created)
		if err != nil {
			return nil, fmt.Errorf("transactions: created_at: %w", err)
		}
		t.Amount = fromCents(cents)
		t.Kind = dom.Kind(kind)
		t.CreatedAt = ts
		list = append(list, t)
	}
	return list, rows.Err()
}
