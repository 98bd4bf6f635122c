package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/utils"
)

const sqliteUserSummaryQuery = `
	SELECT u.id, u.identifier, u.name, u.age, u.email, u.created_at,
		COALESCE(SUM(CASE WHEN t.kind = 'income' THEN t.amount_cents END), 0),
		COALESCE(SUM(CASE WHEN t.kind = 'expense' THEN t.amount_cents END), 0)
	FROM users u
	LEFT JOIN transactions t ON t.user_id = u.id`

// SQLiteUserRepo implements UserRepo with SQLite.
type SQLiteUserRepo struct {
	db *sql.DB
}

func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]dom.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, sqliteUserSummaryQuery+` GROUP BY u.id ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.UserSummary{}
	for rows.Next() {
		s, err := scanSQLiteUserSummary(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SQLiteUserRepo) GetByIdentifier(ctx context.Context, identifier string) (dom.UserSummary, error) {
	row := r.db.QueryRowContext(ctx, sqliteUserSummaryQuery+` WHERE u.identifier = ? GROUP BY u.id`, identifier)
	s, err := scanSQLiteUserSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return dom.UserSummary{}, ErrNotFound
	}
	return s, err
}

func (r *SQLiteUserRepo) IdentifierExists(ctx context.Context, identifier string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE identifier = ?)`, identifier,
	).Scan(&exists)
	return exists, err
}

func (r *SQLiteUserRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = ? COLLATE NOCASE AND id <> ?)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (identifier, name, age, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.Identifier, u.Name, u.Age, u.Email, formatSQLiteTime(now),
	)
	if err != nil {
		return dom.User{}, sqliteUserError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return dom.User{}, fmt.Errorf("users: %w", err)
	}
	u.ID = id
	u.CreatedAt, _ = parseSQLiteTime(formatSQLiteTime(now))
	return u, nil
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u dom.User) (dom.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ? WHERE id = ?`, u.Name, u.Email, u.ID)
	if err != nil {
		return dom.User{}, sqliteUserError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return dom.User{}, ErrNotFound
	}

	var out dom.User
	var created string
	err = r.db.QueryRowContext(ctx,
		`SELECT id, identifier, name, age, email, created_at FROM users WHERE id = ?`, u.ID,
	).Scan(&out.ID, &out.Identifier, &out.Name, &out.Age, &out.Email, &created)
	if err != nil {
		return dom.User{}, sqliteUserError(err)
	}
	if out.CreatedAt, err = parseSQLiteTime(created); err != nil {
		return dom.User{}, fmt.Errorf("users: created_at: %w", err)
	}
	return out, nil
}

// Delete removes transactions explicitly so it does not depend on the
// foreign_keys pragma being active on the connection.
func (r *SQLiteUserRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = ?`, id); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteUserSummary(row rowScanner) (dom.UserSummary, error) {
	var s dom.UserSummary
	var created string
	var income, expense int64
	if err := row.Scan(&s.ID, &s.Identifier, &s.Name, &s.Age, &s.Email, &created, &income, &expense); err != nil {
		return dom.UserSummary{}, err
	}
	t, err := parseSQLiteTime(created)
	if err != nil {
		return dom.UserSummary{}, fmt.Errorf("users: created_at: %w", err)
	}
	s.CreatedAt = t
	s.TotalIncome = fromCents(income)
	s.TotalExpense = fromCents(expense)
	return s, nil
}

func sqliteUserError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if msg, ok := utils.SQLiteUniqueViolation(err); ok {
		if strings.Contains(msg, "users.identifier") {
			return ErrDuplicateIdentifier
		}
		return ErrDuplicateEmail
	}
	return fmt.Errorf("users: %w", err)
}
