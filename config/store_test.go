package config

import (
	"path/filepath"
	"testing"

	"warehouse.GO/core/store"
)

func TestNewStoreDefaultsToFile(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	st, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, ok := st.(*store.FileStore); !ok {
		t.Errorf("default backend = %T, want *store.FileStore", st)
	}
}

func TestNewStoreMemory(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	st, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Errorf("memory backend = %T, want *store.MemoryStore", st)
	}
}

func TestNewStoreSQLite(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("STORE_DB", filepath.Join(t.TempDir(), "test.db"))
	st, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, ok := st.(*store.SQLiteStore); !ok {
		t.Errorf("sqlite backend = %T, want *store.SQLiteStore", st)
	}
}

func TestNewStoreRedisWithoutClient(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	if RedisClient != nil {
		t.Skip("redis client configured in this environment")
	}
	if _, err := NewStore(); err == nil {
		t.Error("redis backend without client succeeded, want error")
	}
}

func TestNewStoreUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")
	if _, err := NewStore(); err == nil {
		t.Error("unknown backend succeeded, want error")
	}
}
