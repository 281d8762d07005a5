package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedMigrations(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_accounts.sql", "00002_create_profiles.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up")
		assert.Contains(t, string(body), "-- +goose Down")
	}
}

func TestUp(t *testing.T) {
	orig := upContext
	t.Cleanup(func() { upContext = orig })

	t.Run("success", func(t *testing.T) {
		var gotDir string
		upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			return nil
		}
		require.NoError(t, Up(context.Background(), nil))
		assert.Equal(t, ".", gotDir)
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		upContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return boom
		}
		err := Up(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}
