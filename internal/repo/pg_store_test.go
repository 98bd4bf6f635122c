package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestPGStoreSuite needs a disposable database in PG_TEST_DSN; every test
// starts from truncated tables.
func TestPGStoreSuite(t *testing.T) {
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx))

	db := stdlib.OpenDBFromPool(pool)
	require.NoError(t, Migrate(ctx, goose.DialectPostgres, db))
	require.NoError(t, db.Close())

	suite.Run(t, &StoreSuite{open: func(ctx context.Context) (*Store, error) {
		if _, err := pool.Exec(ctx, `TRUNCATE transactions, users RESTART IDENTITY CASCADE`); err != nil {
			return nil, err
		}
		store := NewPGStore(pool)
		// the pool outlives each test
		store.close = nil
		return store, nil
	}})
}
