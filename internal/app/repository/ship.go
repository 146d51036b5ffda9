package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"space_fleet/internal/app/ds"
)

func (r *Repository) GetShips(ctx context.Context) ([]ds.Ship, error) {
	var ships []ds.Ship
	err := r.db.WithContext(ctx).Order("ship_id").Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// GetShip reads through the redis cache when one is configured.
func (r *Repository) GetShip(ctx context.Context, id int64) (ds.Ship, bool, error) {
	if r.cache != nil {
		ship, ok, err := r.cache.Get(ctx, id)
		if err != nil {
			logrus.Warnf("ship cache get %d: %v", id, err)
		} else if ok {
			return ship, true, nil
		}
	}

	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Where("ship_id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, false, nil
	}
	if err != nil {
		return ds.Ship{}, false, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, ship); err != nil {
			logrus.Warnf("ship cache set %d: %v", id, err)
		}
	}
	return ship, true, nil
}

// CreateShip - создание корабля, ShipID назначает база
func (r *Repository) CreateShip(ctx context.Context, ship *ds.Ship) error {
	return r.db.WithContext(ctx).Create(ship).Error
}

// UpdateShip - перезапись корабля с тем же ShipID
func (r *Repository) UpdateShip(ctx context.Context, ship *ds.Ship) error {
	if err := r.db.WithContext(ctx).Save(ship).Error; err != nil {
		return err
	}
	r.evict(ctx, ship.ShipID)
	return nil
}

// DeleteShip - удаление корабля
func (r *Repository) DeleteShip(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("ship_id = ?", id).Delete(&ds.Ship{}).Error; err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *Repository) evict(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, id); err != nil {
		logrus.Warnf("ship cache delete %d: %v", id, err)
	}
}
