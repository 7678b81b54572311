package store

import (
	"encoding/json"
	"log"
	"sync"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// MemoryStore is an in-process Store for tests and ephemeral runs. It keeps
// the serialized form, so records still round-trip through JSON exactly as
// they would with a persistent backend.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte

	// FailSave, when set, is returned by every Save call (for testing the
	// no-partial-write contract).
	FailSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() []receptionEntity.Reception {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data) == 0 {
		return []receptionEntity.Reception{}
	}
	var list []receptionEntity.Reception
	if err := json.Unmarshal(s.data, &list); err != nil {
		log.Printf("store: malformed in-memory content, treating as empty: %v", err)
		return []receptionEntity.Reception{}
	}
	if list == nil {
		list = []receptionEntity.Reception{}
	}
	return list
}

func (s *MemoryStore) Save(list []receptionEntity.Reception) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	data, err := json.Marshal(list)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	s.data = data
	return nil
}

// SetRaw seeds the store with raw bytes (for malformed-content tests).
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
