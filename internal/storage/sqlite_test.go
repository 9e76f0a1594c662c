package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStore(t *testing.T) *SliceStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSliceStore(dbPath)
	require.NoError(t, err, "failed to create storage")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to migrate")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSliceStoreSaveLoadRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"txn-1","title":"Coffee","amount":"4.5"}]`)
	require.NoError(t, store.Save(ctx, "budgetTracker_transactions", payload))

	loaded, err := store.Load(ctx, "budgetTracker_transactions")
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestSliceStoreOverwrite(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "key", []byte(`"first"`)))
	require.NoError(t, store.Save(ctx, "key", []byte(`"second"`)))

	loaded, err := store.Load(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"second"`), loaded)
}

func TestSliceStoreLoadMissing(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Load(context.Background(), "never-written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSliceStoreIsEmpty(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value string
		want  bool
	}{
		{name: "absent key", key: "absent", want: true},
		{name: "empty array", key: "arr", value: "[]", want: true},
		{name: "empty object", key: "obj", value: "{}", want: true},
		{name: "null", key: "null", value: "null", want: true},
		{name: "populated array", key: "full", value: `[{"id":"1"}]`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				require.NoError(t, store.Save(ctx, tt.key, []byte(tt.value)))
			}
			empty, err := store.IsEmpty(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, empty)
		})
	}
}

func TestSliceStoreRemove(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "key", []byte(`[1]`)))
	require.NoError(t, store.Remove(ctx, "key"))

	_, err := store.Load(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is not an error.
	assert.NoError(t, store.Remove(ctx, "key"))
}

func TestSliceStoreWipe(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", []byte(`[1]`)))
	require.NoError(t, store.Save(ctx, "b", []byte(`[2]`)))
	require.NoError(t, store.Wipe(ctx))

	for _, key := range []string{"a", "b"} {
		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestSliceStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewSliceStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Save(ctx, "key", []byte(`["persisted"]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSliceStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	loaded, err := reopened.Load(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["persisted"]`), loaded)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := createTestStore(t)
	// createTestStore already migrated once.
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestSliceStoreValidation(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, "", []byte(`[]`)), ErrEmptyString)
	_, err := store.Load(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = NewSliceStore("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
