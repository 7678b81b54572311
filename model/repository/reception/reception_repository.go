package reception

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"warehouse.GO/core/store"
	receptionEntity "warehouse.GO/model/entity/reception"
	receptionService "warehouse.GO/service/reception"
)

// ErrNotFound means no record with the given id exists.
var ErrNotFound = errors.New("reception not found")

// ValidationError names the field that failed validation on create/update.
// It is always returned before any persistence side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Repository is the CRUD layer over a Store. It holds no global state: the
// store handle is injected, every call re-reads it, and the read-modify-write
// cycle is serialized with a mutex so in-process callers cannot interleave.
// Concurrent writers outside the process still race (last save wins).
type Repository struct {
	mu    sync.Mutex
	store store.Store

	// Now and NewID are swappable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

func NewRepository(st store.Store) *Repository {
	return &Repository{
		store: st,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// CreateInput carries the user-entered fields of a new reception. The
// derived fields (total_units, shelf_life_months, status) are always
// computed here, never taken from the caller.
type CreateInput struct {
	ProductName    string                        `json:"product_name"`
	Cartons        int                           `json:"cartons"`
	UnitsPerCarton int                           `json:"units_per_carton"`
	Barcode        string                        `json:"barcode"`
	ProductionDate receptionEntity.Date          `json:"production_date"`
	ExpirationDate receptionEntity.Date          `json:"expiration_date"`
	PalletConfig   *receptionEntity.PalletConfig `json:"pallet_config"`
}

// Create validates the input, derives the computed fields, assigns a fresh
// id and created_at, appends and persists. Validation happens before any
// write: a failed create leaves the store untouched.
func (r *Repository) Create(in CreateInput) (*receptionEntity.Reception, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	if in.PalletConfig != nil {
		in.PalletConfig.Normalize()
	}

	now := r.Now()
	rec := receptionEntity.Reception{
		ID:              r.NewID(),
		ProductName:     strings.TrimSpace(in.ProductName),
		Cartons:         in.Cartons,
		UnitsPerCarton:  in.UnitsPerCarton,
		TotalUnits:      receptionService.TotalUnits(in.Cartons, in.UnitsPerCarton),
		Barcode:         in.Barcode,
		ProductionDate:  in.ProductionDate,
		ExpirationDate:  in.ExpirationDate,
		ShelfLifeMonths: receptionService.ShelfLifeMonths(in.ProductionDate, in.ExpirationDate),
		Status:          receptionService.Status(in.ProductionDate, in.ExpirationDate, now),
		CreatedAt:       now,
		PalletConfig:    in.PalletConfig,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.store.Load()
	list = append(list, rec)
	if err := r.store.Save(list); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all records ordered by created_at descending. The ordering is
// applied at read time; storage order is append order.
func (r *Repository) List() []receptionEntity.Reception {
	list := r.store.Load()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

// Get returns the record with the given id or ErrNotFound.
func (r *Repository) Get(id string) (*receptionEntity.Reception, error) {
	for _, rec := range r.store.Load() {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateInput is a partial patch: nil fields are left untouched. The pallet
// configuration is replaced wholesale, not merged. id and created_at cannot
// change.
type UpdateInput struct {
	ProductName    *string                       `json:"product_name"`
	Cartons        *int                          `json:"cartons"`
	UnitsPerCarton *int                          `json:"units_per_carton"`
	Barcode        *string                       `json:"barcode"`
	ProductionDate *receptionEntity.Date         `json:"production_date"`
	ExpirationDate *receptionEntity.Date         `json:"expiration_date"`
	Status         *string                       `json:"status"`
	PalletConfig   *receptionEntity.PalletConfig `json:"pallet_config"`
}

// Update merges the patch into the stored record and persists the list.
// total_units is recomputed when cartons or units_per_carton change, and
// shelf_life_months when either date changes. The status snapshot is NOT
// recomputed; callers that want a fresh status pass it explicitly (the
// statusrefresh cron job does exactly that).
func (r *Repository) Update(id string, in UpdateInput) (*receptionEntity.Reception, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.store.Load()
	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	rec := list[idx]
	if in.ProductName != nil {
		rec.ProductName = strings.TrimSpace(*in.ProductName)
	}
	if in.Cartons != nil {
		rec.Cartons = *in.Cartons
	}
	if in.UnitsPerCarton != nil {
		rec.UnitsPerCarton = *in.UnitsPerCarton
	}
	if in.Barcode != nil {
		rec.Barcode = *in.Barcode
	}
	if in.ProductionDate != nil {
		rec.ProductionDate = *in.ProductionDate
	}
	if in.ExpirationDate != nil {
		rec.ExpirationDate = *in.ExpirationDate
	}
	if in.Status != nil {
		rec.Status = *in.Status
	}
	if in.PalletConfig != nil {
		in.PalletConfig.Normalize()
		rec.PalletConfig = in.PalletConfig
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	if in.Cartons != nil || in.UnitsPerCarton != nil {
		rec.TotalUnits = receptionService.TotalUnits(rec.Cartons, rec.UnitsPerCarton)
	}
	if in.ProductionDate != nil || in.ExpirationDate != nil {
		rec.ShelfLifeMonths = receptionService.ShelfLifeMonths(rec.ProductionDate, rec.ExpirationDate)
	}

	list[idx] = rec
	if err := r.store.Save(list); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record if present. Deleting an unknown id is a no-op,
// not an error.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.store.Load()
	filtered := list[:0:0]
	for _, rec := range list {
		if rec.ID != id {
			filtered = append(filtered, rec)
		}
	}
	if len(filtered) == len(list) {
		return nil
	}
	return r.store.Save(filtered)
}

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.ProductName) == "" {
		return &ValidationError{Field: "product_name", Reason: "required"}
	}
	if in.Cartons <= 0 {
		return &ValidationError{Field: "cartons", Reason: "must be greater than 0"}
	}
	if in.UnitsPerCarton <= 0 {
		return &ValidationError{Field: "units_per_carton", Reason: "must be greater than 0"}
	}
	if err := validateBarcode(in.Barcode, true); err != nil {
		return err
	}
	if in.ProductionDate.IsZero() {
		return &ValidationError{Field: "production_date", Reason: "required"}
	}
	if in.ExpirationDate.IsZero() {
		return &ValidationError{Field: "expiration_date", Reason: "required"}
	}
	if in.ExpirationDate.Before(in.ProductionDate.Time) {
		return &ValidationError{Field: "production_date", Reason: "must be on or before expiration_date"}
	}
	return nil
}

// validateRecord re-checks the invariants after an update merge. Unlike
// create, an empty barcode on an old record is tolerated.
func validateRecord(rec receptionEntity.Reception) error {
	if rec.ProductName == "" {
		return &ValidationError{Field: "product_name", Reason: "required"}
	}
	if rec.Cartons <= 0 {
		return &ValidationError{Field: "cartons", Reason: "must be greater than 0"}
	}
	if rec.UnitsPerCarton <= 0 {
		return &ValidationError{Field: "units_per_carton", Reason: "must be greater than 0"}
	}
	if err := validateBarcode(rec.Barcode, false); err != nil {
		return err
	}
	if !rec.ProductionDate.IsZero() && !rec.ExpirationDate.IsZero() &&
		rec.ExpirationDate.Before(rec.ProductionDate.Time) {
		return &ValidationError{Field: "production_date", Reason: "must be on or before expiration_date"}
	}
	return nil
}

func validateBarcode(barcode string, required bool) error {
	if barcode == "" {
		if required {
			return &ValidationError{Field: "barcode", Reason: "required"}
		}
		return nil
	}
	if len(barcode) > 6 {
		return &ValidationError{Field: "barcode", Reason: "at most 6 digits"}
	}
	for _, c := range barcode {
		if c < '0' || c > '9' {
			return &ValidationError{Field: "barcode", Reason: "digits only"}
		}
	}
	return nil
}
