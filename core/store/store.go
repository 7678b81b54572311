package store

import (
	"fmt"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// StorageKey is the single logical key the reception list lives under in
// every backend. The value is always one JSON array of reception records.
const StorageKey = "warehouse-receptions"

// Store persists the full reception list under one key.
//
// Load is fail-open: a missing key, an unreachable backend or malformed
// content yields an empty list (logged), never an error; a broken store
// must not take the UI down. Save fully overwrites the stored array; the
// last writer wins.
type Store interface {
	Load() []receptionEntity.Reception
	Save(list []receptionEntity.Reception) error
}

// StorageError reports a failed write (serialization or backend).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
