package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space_fleet/internal/app/ds"
)

func TestMemoryStoreAssignsIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := ds.Ship{Name: "A"}
	b := ds.Ship{Name: "B"}
	require.NoError(t, store.CreateShip(ctx, &a))
	require.NoError(t, store.CreateShip(ctx, &b))
	assert.Equal(t, int64(1), a.ShipID)
	assert.Equal(t, int64(2), b.ShipID)

	got, ok, err := store.GetShip(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b, got)

	_, ok, err = store.GetShip(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreUpdateOverwritesSameID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ship := ds.Ship{Name: "A", Speed: 0.1}
	require.NoError(t, store.CreateShip(ctx, &ship))

	ship.Speed = 0.9
	require.NoError(t, store.UpdateShip(ctx, &ship))

	ships, err := store.GetShips(ctx)
	require.NoError(t, err)
	require.Len(t, ships, 1)
	assert.Equal(t, 0.9, ships[0].Speed)

	assert.Error(t, store.UpdateShip(ctx, &ds.Ship{}))
}

func TestMemoryStoreSnapshotIsOrderedAndDetached(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for _, name := range []string{"C", "A", "B"} {
		require.NoError(t, store.CreateShip(ctx, &ds.Ship{Name: name}))
	}
	require.NoError(t, store.DeleteShip(ctx, 2))

	ships, err := store.GetShips(ctx)
	require.NoError(t, err)
	require.Len(t, ships, 2)
	assert.Equal(t, int64(1), ships[0].ShipID)
	assert.Equal(t, int64(3), ships[1].ShipID)

	ships[0].Name = "mutated"
	again, err := store.GetShips(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C", again[0].Name)
}

func TestMemoryStoreConcurrentCreates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.CreateShip(ctx, &ds.Ship{Name: "S"})
		}()
	}
	wg.Wait()

	ships, err := store.GetShips(ctx)
	require.NoError(t, err)
	assert.Len(t, ships, 50)
	assert.Equal(t, int64(50), ships[49].ShipID)
}
