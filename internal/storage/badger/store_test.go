package badgerstore

import (
	"context"
	"testing"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	store, err := NewSessionStore("", nil)
	require.NoError(t, err)
	defer store.Close()

	t.Run("LoadEmpty", testLoadEmpty(store))
	t.Run("SaveOverwrites", testSaveOverwrites(store))
	t.Run("RemoveIdempotent", testRemoveIdempotent(store))
}

func TestSessionStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewSessionStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, model.SessionRecord{Address: "0xABC", PrivateKey: "k1"}))
	require.NoError(t, store.Close())

	store, err = NewSessionStore(dir, nil)
	require.NoError(t, err)
	defer store.Close()

	rec, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &model.SessionRecord{Address: "0xABC", PrivateKey: "k1"}, rec)
}

func testLoadEmpty(store storage.SessionStore) func(*testing.T) {
	return func(t *testing.T) {
		rec, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Nil(t, rec)
	}
}

func testSaveOverwrites(store storage.SessionStore) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()

		err := store.Save(ctx, model.SessionRecord{Address: "0xA", PrivateKey: "k1"})
		require.NoError(t, err)
		err = store.Save(ctx, model.SessionRecord{Address: "0xB", PrivateKey: "k2"})
		require.NoError(t, err)

		rec, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0xB", rec.Address)
		assert.Equal(t, "k2", rec.PrivateKey)
	}
}

func testRemoveIdempotent(store storage.SessionStore) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, model.SessionRecord{Address: "0xA", PrivateKey: "k1"}))
		require.NoError(t, store.Remove(ctx))
		require.NoError(t, store.Remove(ctx))

		rec, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, rec)
	}
}
