package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"space_fleet/internal/app/ds"
)

// ShipCache keeps recently read ships by id.
type ShipCache interface {
	Get(ctx context.Context, id int64) (ds.Ship, bool, error)
	Set(ctx context.Context, ship ds.Ship) error
	Delete(ctx context.Context, id int64) error
}

type redisShipCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisShipCache(rdb *redis.Client, ttl time.Duration) ShipCache {
	return &redisShipCache{rdb: rdb, ttl: ttl}
}

func cacheKey(id int64) string {
	return "ship:" + strconv.FormatInt(id, 10)
}

func (c *redisShipCache) Get(ctx context.Context, id int64) (ds.Ship, bool, error) {
	data, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ds.Ship{}, false, nil
	}
	if err != nil {
		return ds.Ship{}, false, err
	}
	var ship ds.Ship
	if err := json.Unmarshal(data, &ship); err != nil {
		return ds.Ship{}, false, err
	}
	return ship, true, nil
}

func (c *redisShipCache) Set(ctx context.Context, ship ds.Ship) error {
	data, err := json.Marshal(ship)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(ship.ShipID), data, c.ttl).Err()
}

func (c *redisShipCache) Delete(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, cacheKey(id)).Err()
}
