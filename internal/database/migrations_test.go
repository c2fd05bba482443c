package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunMigrations_CreatesSettings(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value, created_at, updated_at) VALUES ('k', 'v', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	assert.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrator_OrderAndCount(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	migrations := fstest.MapFS{
		"002_add_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER REFERENCES a(id));")},
		"001_add_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"README.md":     {Data: []byte("ignored")},
		"003_add_c.sql": {Data: []byte("CREATE TABLE c (id INTEGER);")},
	}

	m := NewMigrator(db, migrations)
	loaded, err := m.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{loaded[0].Version, loaded[1].Version, loaded[2].Version})
	assert.Equal(t, "add_a", loaded[0].Name)

	n, err := m.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = m.Migrate(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMigrator_FailedMigrationRollsBack(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	m := NewMigrator(db, fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE ok (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE nope (;")},
	})

	n, err := m.Migrate(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, n)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrator_BadFilenames(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{"no underscore", fstest.MapFS{"001.sql": {Data: []byte("")}}},
		{"non numeric", fstest.MapFS{"abc_x.sql": {Data: []byte("")}}},
		{"duplicate", fstest.MapFS{
			"001_a.sql": {Data: []byte("")},
			"1_b.sql":   {Data: []byte("")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMigrator(openMemory(t), tt.fs).Load()
			assert.Error(t, err)
		})
	}
}
