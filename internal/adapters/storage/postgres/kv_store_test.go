package postgres

import (
	"context"
	"os"
	"testing"

	"paws-cafe/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_ImplementsInterface(t *testing.T) {
	var _ kv.Store = (*KVStore)(nil)
}

// Requiere TEST_DATABASE_URL (postgres://...); sin ella se salta.
func TestKVStore_Postgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, RunMigrations(url))

	db, err := Open(url)
	if err != nil {
		t.Skipf("cannot connect to test database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	s := NewKVStore(db)
	key := "test-slot"
	t.Cleanup(func() { _ = s.Remove(ctx, key) })

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, key, []byte("v1")))
	require.NoError(t, s.Set(ctx, key, []byte("v2")))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	require.NoError(t, s.Remove(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
