package store

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// kvRow is the single-table key-value layout of the sqlite backend. The
// reception array lives as one JSON blob under StorageKey, same as every
// other backend.
type kvRow struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;type:text;not null"`
}

func (kvRow) TableName() string {
	return "kv_store"
}

// SQLiteStore keeps the reception array in a local sqlite database.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database file and ensures the kv table.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db)
}

// NewSQLiteStore wraps an existing gorm handle (tests use :memory:).
func NewSQLiteStore(db *gorm.DB) (*SQLiteStore, error) {
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() []receptionEntity.Reception {
	var row kvRow
	err := s.db.First(&row, "key = ?", StorageKey).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: read %s: %v", StorageKey, err)
		}
		return []receptionEntity.Reception{}
	}
	var list []receptionEntity.Reception
	if err := json.Unmarshal([]byte(row.Value), &list); err != nil {
		log.Printf("store: malformed content under %s, treating as empty: %v", StorageKey, err)
		return []receptionEntity.Reception{}
	}
	if list == nil {
		list = []receptionEntity.Reception{}
	}
	return list
}

func (s *SQLiteStore) Save(list []receptionEntity.Reception) error {
	data, err := json.Marshal(list)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	row := kvRow{Key: StorageKey, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
