package startup

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	store := NewStore(writeCSV(t, normalizerFixture), nil)
	assert.False(t, store.Loaded())
	assert.Nil(t, store.Current())

	require.NoError(t, store.Load(context.Background()))
	assert.True(t, store.Loaded())

	snap := store.Current()
	require.NotNil(t, snap)
	assert.Len(t, snap.Records, 2)
	assert.Equal(t, snap.Records, store.Records())
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore("does/not/exist.csv", nil)

	err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
	assert.False(t, store.Loaded())
}

func TestStore_LoadKeepsPreviousSnapshotOnError(t *testing.T) {
	path := writeCSV(t, normalizerFixture)
	store := NewStore(path, nil)
	require.NoError(t, store.Load(context.Background()))
	snap := store.Current()

	// A failed reload never clears published data.
	require.NoError(t, os.Remove(path))
	assert.ErrorIs(t, store.Load(context.Background()), ErrNoData)
	assert.Equal(t, snap, store.Current())
}

func TestStore_LoadIfNeeded(t *testing.T) {
	store := NewStore(writeCSV(t, normalizerFixture), nil)
	require.NoError(t, store.LoadIfNeeded(context.Background()))
	require.NoError(t, store.LoadIfNeeded(context.Background()))
	assert.True(t, store.Loaded())
}

func TestStore_LoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(writeCSV(t, normalizerFixture), nil)
	assert.Error(t, store.Load(ctx))
}
