package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "menta.db")

	repos, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	defer repos.Close()

	require.True(t, tableExists(t, repos.DB, "goose_db_version"))
	require.True(t, tableExists(t, repos.DB, "metadata"))

	require.NoError(t, repos.Metadata.Set(ctx, "token", []byte("abc")))
	v, err := repos.Metadata.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestInitDatabase_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "menta.db")

	repos, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repos.Metadata.Set(ctx, "token", []byte("abc")))
	require.NoError(t, repos.Close())

	repos, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer repos.Close()

	v, err := repos.Metadata.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "menta.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "metadata"))
}
