package repository

import (
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"space_fleet/internal/app/service"
)

var _ service.Store = (*Repository)(nil)

type Repository struct {
	db       *gorm.DB
	redis    *redis.Client
	cache    ShipCache
	jwtKey   string // для JWT
	tokenTTL time.Duration
}

// New opens postgres by dsn. rdb may be nil: the ship cache and the token
// store are then disabled.
func New(dsn string, rdb *redis.Client, jwtKey string, cacheTTL time.Duration) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, rdb, jwtKey, cacheTTL), nil
}

func NewWithDB(db *gorm.DB, rdb *redis.Client, jwtKey string, cacheTTL time.Duration) *Repository {
	r := &Repository{
		db:       db,
		redis:    rdb,
		jwtKey:   jwtKey,
		tokenTTL: 24 * time.Hour,
	}
	if rdb != nil {
		r.cache = NewRedisShipCache(rdb, cacheTTL)
	}
	return r
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Redis() *redis.Client {
	return r.redis
}

func (r *Repository) JWTKey() string {
	return r.jwtKey
}
