package config

import (
	"fmt"
	"os"

	"warehouse.GO/core/store"
)

// NewStore builds the persistence store from the environment.
//
//	STORE_BACKEND = file (default) | sqlite | redis | memory
//	STORE_FILE    = path of the JSON file (file backend)
//	STORE_DB      = path of the sqlite database (sqlite backend)
//
// The redis backend requires InitRedis to have run with REDIS_ADDR set.
func NewStore() (store.Store, error) {
	backend := os.Getenv("STORE_BACKEND")
	switch backend {
	case "", "file":
		path := os.Getenv("STORE_FILE")
		if path == "" {
			path = "warehouse-receptions.json"
		}
		return store.NewFileStore(path), nil
	case "sqlite":
		path := os.Getenv("STORE_DB")
		if path == "" {
			path = "warehouse.db"
		}
		return store.OpenSQLite(path)
	case "redis":
		if RedisClient == nil {
			return nil, fmt.Errorf("store backend redis requires REDIS_ADDR")
		}
		return store.NewRedisStore(RedisClient), nil
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
