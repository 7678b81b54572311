package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// RedisStore keeps the reception array as one JSON value under StorageKey.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load() []receptionEntity.Reception {
	val, err := s.client.Get(context.Background(), StorageKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("store: read %s: %v", StorageKey, err)
		}
		return []receptionEntity.Reception{}
	}
	var list []receptionEntity.Reception
	if err := json.Unmarshal([]byte(val), &list); err != nil {
		log.Printf("store: malformed content under %s, treating as empty: %v", StorageKey, err)
		return []receptionEntity.Reception{}
	}
	if list == nil {
		list = []receptionEntity.Reception{}
	}
	return list
}

func (s *RedisStore) Save(list []receptionEntity.Reception) error {
	data, err := json.Marshal(list)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := s.client.Set(context.Background(), StorageKey, data, 0).Err(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
