package store

import (
	"encoding/json"
	"log"
	"os"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// FileStore keeps the reception array in a single JSON file on disk, the
// default backend.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() []receptionEntity.Reception {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: read %s: %v", s.path, err)
		}
		return []receptionEntity.Reception{}
	}
	var list []receptionEntity.Reception
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("store: malformed content in %s, treating as empty: %v", s.path, err)
		return []receptionEntity.Reception{}
	}
	if list == nil {
		list = []receptionEntity.Reception{}
	}
	return list
}

func (s *FileStore) Save(list []receptionEntity.Reception) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
