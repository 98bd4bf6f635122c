package repo

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"ControleGastos/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded migrations of the given dialect.
func Migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB) error {
	dir := "postgres"
	if dialect == goose.DialectSQLite3 {
		dir = "sqlite"
	}
	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		slog.Debug("migration applied", "source", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
