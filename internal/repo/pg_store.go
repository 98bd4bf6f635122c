package repo

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPGStore wraps an open pool. Close closes the pool.
func NewPGStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:        NewPGUserRepo(pool),
		Transactions: NewPGTransactionRepo(pool),
		ping:         pool.Ping,
		close: func() error {
			pool.Close()
			return nil
		},
	}
}
