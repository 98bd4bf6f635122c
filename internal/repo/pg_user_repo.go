package repo

import (
	"context"
	"errors"
	"fmt"

	dom "ControleGastos/internal/domain"
	"ControleGastos/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUserSummaryQuery = `
	SELECT u.id, u.identifier, u.name, u.age, u.email, u.created_at,
		COALESCE(SUM(t.amount) FILTER (WHERE t.kind = 'income'), 0),
		COALESCE(SUM(t.amount) FILTER (WHERE t.kind = 'expense'), 0)
	FROM users u
	LEFT JOIN transactions t ON t.user_id = u.id`

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

func (r *PGUserRepo) List(ctx context.Context) ([]dom.UserSummary, error) {
	rows, err := r.db.Query(ctx, pgUserSummaryQuery+` GROUP BY u.id ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.UserSummary{}
	for rows.Next() {
		s, err := scanPGUserSummary(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *PGUserRepo) GetByIdentifier(ctx context.Context, identifier string) (dom.UserSummary, error) {
	row := r.db.QueryRow(ctx, pgUserSummaryQuery+` WHERE u.identifier = $1 GROUP BY u.id`, identifier)
	s, err := scanPGUserSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.UserSummary{}, ErrNotFound
	}
	return s, err
}

func (r *PGUserRepo) IdentifierExists(ctx context.Context, identifier string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE identifier = $1)`, identifier,
	).Scan(&exists)
	return exists, err
}

func (r *PGUserRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (identifier, name, age, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, identifier, name, age, email, created_at`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.Identifier, u.Name, u.Age, u.Email).Scan(
		&out.ID, &out.Identifier, &out.Name, &out.Age, &out.Email, &out.CreatedAt,
	)
	if err != nil {
		return dom.User{}, pgUserError(err)
	}
	return out, nil
}

func (r *PGUserRepo) Update(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		UPDATE users SET name = $2, email = $3
		WHERE id = $1
		RETURNING id, identifier, name, age, email, created_at`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.ID, u.Name, u.Email).Scan(
		&out.ID, &out.Identifier, &out.Name, &out.Age, &out.Email, &out.CreatedAt,
	)
	if err != nil {
		return dom.User{}, pgUserError(err)
	}
	return out, nil
}

// Delete relies on ON DELETE CASCADE for the user's transactions.
func (r *PGUserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPGUserSummary(row pgx.Row) (dom.UserSummary, error) {
	var s dom.UserSummary
	err := row.Scan(&s.ID, &s.Identifier, &s.Name, &s.Age, &s.Email, &s.CreatedAt,
		&s.TotalIncome, &s.TotalExpense)
	s.CreatedAt = s.CreatedAt.UTC()
	return s, err
}

func pgUserError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if constraint, ok := utils.PGUniqueViolation(err); ok {
		if constraint == "users_identifier_key" {
			return ErrDuplicateIdentifier
		}
		return ErrDuplicateEmail
	}
	return fmt.Errorf("users: %w", err)
}
