// Package migrations embeds the SQL schema of the account directory and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
)

//go:embed *.sql
var FS embed.FS

// upContext is replaced in tests.
var upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies every pending migration to db.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := upContext(ctx, db, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Log.Infow("migrations applied")
	return nil
}
