package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/service"
)

var _ service.Store = (*MemoryStore)(nil)

// MemoryStore keeps ships in process memory. Used for StoreBackend = "memory" and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	ships  map[int64]ds.Ship
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ships: make(map[int64]ds.Ship), nextID: 1}
}

func (m *MemoryStore) CreateShip(_ context.Context, ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ship.ShipID = m.nextID
	m.nextID++
	m.ships[ship.ShipID] = *ship
	return nil
}

func (m *MemoryStore) UpdateShip(_ context.Context, ship *ds.Ship) error {
	if ship.ShipID <= 0 {
		return fmt.Errorf("update ship: invalid id %d", ship.ShipID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ships[ship.ShipID] = *ship
	if ship.ShipID >= m.nextID {
		m.nextID = ship.ShipID + 1
	}
	return nil
}

func (m *MemoryStore) GetShip(_ context.Context, id int64) (ds.Ship, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ship, ok := m.ships[id]
	return ship, ok, nil
}

// GetShips returns a snapshot ordered by id.
func (m *MemoryStore) GetShips(_ context.Context) ([]ds.Ship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ships := make([]ds.Ship, 0, len(m.ships))
	for _, id := range slices.Sorted(maps.Keys(m.ships)) {
		ships = append(ships, m.ships[id])
	}
	return ships, nil
}

func (m *MemoryStore) DeleteShip(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ships, id)
	return nil
}
