package reception

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"warehouse.GO/core/store"
	receptionEntity "warehouse.GO/model/entity/reception"
)

func testRepo(st store.Store) *Repository {
	repo := NewRepository(st)
	clock := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	seq := 0
	repo.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	repo.NewID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return repo
}

func validInput() CreateInput {
	return CreateInput{
		ProductName:    "Olive Oil",
		Cartons:        5,
		UnitsPerCarton: 12,
		Barcode:        "123456",
		ProductionDate: receptionEntity.NewDate(2024, 1, 1),
		ExpirationDate: receptionEntity.NewDate(2025, 1, 1),
	}
}

func TestCreateDerivesFields(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())

	rec, err := repo.Create(validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("Create did not assign an id")
	}
	if rec.TotalUnits != 60 {
		t.Errorf("TotalUnits = %d, want 60", rec.TotalUnits)
	}
	if rec.ShelfLifeMonths != 12 {
		t.Errorf("ShelfLifeMonths = %d, want 12", rec.ShelfLifeMonths)
	}
	if rec.Status != receptionEntity.StatusOK {
		t.Errorf("Status = %q, want %q", rec.Status, receptionEntity.StatusOK)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(in *CreateInput)
		wantField string
	}{
		{"empty product name", func(in *CreateInput) { in.ProductName = "  " }, "product_name"},
		{"zero cartons", func(in *CreateInput) { in.Cartons = 0 }, "cartons"},
		{"negative cartons", func(in *CreateInput) { in.Cartons = -2 }, "cartons"},
		{"zero units", func(in *CreateInput) { in.UnitsPerCarton = 0 }, "units_per_carton"},
		{"missing barcode", func(in *CreateInput) { in.Barcode = "" }, "barcode"},
		{"barcode too long", func(in *CreateInput) { in.Barcode = "1234567" }, "barcode"},
		{"barcode not digits", func(in *CreateInput) { in.Barcode = "12a456" }, "barcode"},
		{"missing production date", func(in *CreateInput) { in.ProductionDate = receptionEntity.Date{} }, "production_date"},
		{"missing expiration date", func(in *CreateInput) { in.ExpirationDate = receptionEntity.Date{} }, "expiration_date"},
		{"expiration before production", func(in *CreateInput) {
			in.ProductionDate = receptionEntity.NewDate(2025, 1, 1)
			in.ExpirationDate = receptionEntity.NewDate(2024, 1, 1)
		}, "production_date"},
	}

	for _, c := range cases {
		st := store.NewMemoryStore()
		repo := testRepo(st)
		in := validInput()
		c.mutate(&in)

		_, err := repo.Create(in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%s: Create error = %v, want ValidationError", c.name, err)
			continue
		}
		if vErr.Field != c.wantField {
			t.Errorf("%s: field = %q, want %q", c.name, vErr.Field, c.wantField)
		}
		if n := len(st.Load()); n != 0 {
			t.Errorf("%s: store has %d records after failed create, want 0", c.name, n)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())

	first, _ := repo.Create(validInput())
	second, _ := repo.Create(validInput())

	list := repo.List()
	if len(list) != 2 {
		t.Fatalf("List returned %d records, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("List order = [%s %s], want newest first [%s %s]",
			list[0].ID, list[1].ID, second.ID, first.ID)
	}
}

func TestGet(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	rec, _ := repo.Create(validInput())

	got, err := repo.Get(rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ProductName != rec.ProductName {
		t.Errorf("Get returned %q, want %q", got.ProductName, rec.ProductName)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRecomputesTotalUnits(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	rec, _ := repo.Create(validInput())

	cartons, units := 10, 3
	updated, err := repo.Update(rec.ID, UpdateInput{Cartons: &cartons, UnitsPerCarton: &units})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.TotalUnits != 30 {
		t.Errorf("TotalUnits after update = %d, want 30", updated.TotalUnits)
	}
	if updated.ID != rec.ID {
		t.Errorf("Update changed id: %s -> %s", rec.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("Update changed created_at: %s -> %s", rec.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateRecomputesShelfLife(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	rec, _ := repo.Create(validInput())

	expiration := receptionEntity.NewDate(2024, 7, 1)
	updated, err := repo.Update(rec.ID, UpdateInput{ExpirationDate: &expiration})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ShelfLifeMonths != 6 {
		t.Errorf("ShelfLifeMonths after date change = %d, want 6", updated.ShelfLifeMonths)
	}
}

func TestUpdateKeepsStatusSnapshot(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	rec, _ := repo.Create(validInput())

	// An unrelated patch must not touch the stored snapshot.
	name := "Renamed"
	updated, err := repo.Update(rec.ID, UpdateInput{ProductName: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != rec.Status {
		t.Errorf("Status after unrelated update = %q, want %q", updated.Status, rec.Status)
	}

	// An explicit status patch is honored.
	status := receptionEntity.StatusExpired
	updated, err = repo.Update(rec.ID, UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != receptionEntity.StatusExpired {
		t.Errorf("Status after explicit patch = %q, want %q", updated.Status, receptionEntity.StatusExpired)
	}
}

func TestUpdateValidation(t *testing.T) {
	st := store.NewMemoryStore()
	repo := testRepo(st)
	rec, _ := repo.Create(validInput())
	before := st.Load()

	bad := 0
	_, err := repo.Update(rec.ID, UpdateInput{Cartons: &bad})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "cartons" {
		t.Fatalf("Update error = %v, want ValidationError on cartons", err)
	}
	after := st.Load()
	if len(after) != len(before) || after[0].Cartons != before[0].Cartons {
		t.Error("failed update modified the store")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	name := "x"
	if _, err := repo.Update("missing", UpdateInput{ProductName: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateReplacesPalletConfig(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	in := validInput()
	in.PalletConfig = &receptionEntity.PalletConfig{
		Single: &receptionEntity.SinglePallet{CartonsPerRow: 5, RowsPerLevel: 4, NumberOfPallets: 1},
	}
	rec, err := repo.Create(in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.PalletConfig.Single.CartonsPerPallet != 20 {
		t.Errorf("CartonsPerPallet not normalized on create: %d", rec.PalletConfig.Single.CartonsPerPallet)
	}

	patch := &receptionEntity.PalletConfig{
		Multi: &receptionEntity.MultiPallet{
			Pallets: []receptionEntity.PalletSpec{{CartonsPerRow: 3, RowsPerLevel: 2}},
		},
	}
	updated, err := repo.Update(rec.ID, UpdateInput{PalletConfig: patch})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.PalletConfig.Single != nil {
		t.Error("pallet config not replaced wholesale: single shape survived")
	}
	if updated.PalletConfig.Multi.TotalPallets != 1 {
		t.Errorf("TotalPallets not normalized on update: %d", updated.PalletConfig.Multi.TotalPallets)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	rec, _ := repo.Create(validInput())

	if err := repo.Delete(rec.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.List()) != 0 {
		t.Error("record still present after delete")
	}
	if err := repo.Delete(rec.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
	if err := repo.Delete("never-existed"); err != nil {
		t.Errorf("Delete(unknown) = %v, want nil", err)
	}
}

func TestSaveFailureLeavesStoreUntouched(t *testing.T) {
	st := store.NewMemoryStore()
	repo := testRepo(st)
	rec, _ := repo.Create(validInput())

	st.FailSave = &store.StorageError{Op: "save", Err: errors.New("disk full")}

	if _, err := repo.Create(validInput()); err == nil {
		t.Fatal("Create succeeded despite failing store")
	}
	cartons := 9
	if _, err := repo.Update(rec.ID, UpdateInput{Cartons: &cartons}); err == nil {
		t.Fatal("Update succeeded despite failing store")
	}
	if err := repo.Delete(rec.ID); err == nil {
		t.Fatal("Delete succeeded despite failing store")
	}

	st.FailSave = nil
	list := repo.List()
	if len(list) != 1 {
		t.Fatalf("store has %d records after failed writes, want 1", len(list))
	}
	if list[0].Cartons != 5 {
		t.Errorf("Cartons = %d after failed update, want 5", list[0].Cartons)
	}
}

func TestCreateStatusSnapshot(t *testing.T) {
	repo := testRepo(store.NewMemoryStore())
	repo.Now = func() time.Time { return time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC) }

	in := validInput()
	in.ProductionDate = receptionEntity.NewDate(2024, 1, 1)
	in.ExpirationDate = receptionEntity.NewDate(2024, 7, 1)
	rec, err := repo.Create(in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Status != receptionEntity.StatusExpired {
		t.Errorf("Status = %q, want %q", rec.Status, receptionEntity.StatusExpired)
	}
}
