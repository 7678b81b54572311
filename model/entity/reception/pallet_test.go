package reception

import (
	"encoding/json"
	"testing"
)

func TestPalletConfigDecodeSingleShape(t *testing.T) {
	var cfg PalletConfig
	err := json.Unmarshal([]byte(`{"cartons_per_row": 5, "rows_per_level": 4, "number_of_pallets": 2}`), &cfg)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Single == nil {
		t.Fatal("single shape not detected")
	}
	if cfg.Multi != nil {
		t.Error("multi shape set for a flat object")
	}
	if cfg.Single.CartonsPerRow != 5 || cfg.Single.RowsPerLevel != 4 || cfg.Single.NumberOfPallets != 2 {
		t.Errorf("decoded single = %+v", cfg.Single)
	}
}

func TestPalletConfigDecodeMultiShape(t *testing.T) {
	var cfg PalletConfig
	err := json.Unmarshal([]byte(`{"pallets": [{"cartons_per_row": 5, "rows_per_level": 4}], "use_auto_calculation": true}`), &cfg)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Multi == nil {
		t.Fatal("multi shape not detected")
	}
	if cfg.Single != nil {
		t.Error("single shape set for an object with pallets")
	}
	if len(cfg.Multi.Pallets) != 1 || cfg.Multi.Pallets[0].CartonsPerRow != 5 {
		t.Errorf("decoded multi = %+v", cfg.Multi)
	}
	if !cfg.Multi.UseAutoCalc {
		t.Error("use_auto_calculation not decoded")
	}
}

func TestPalletConfigDecodeStringCounts(t *testing.T) {
	// Old records stored form values unparsed.
	var cfg PalletConfig
	err := json.Unmarshal([]byte(`{"cartons_per_row": "5", "rows_per_level": "4"}`), &cfg)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Single == nil || cfg.Single.CartonsPerRow != 5 || cfg.Single.RowsPerLevel != 4 {
		t.Errorf("string counts not coerced: %+v", cfg.Single)
	}
}

func TestPalletConfigMarshalRoundTrip(t *testing.T) {
	cfg := &PalletConfig{
		Single: &SinglePallet{CartonsPerRow: 5, RowsPerLevel: 4, NumberOfPallets: 2, CartonsPerPallet: 20},
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back PalletConfig
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Single == nil || *back.Single != *cfg.Single {
		t.Errorf("round trip = %+v, want %+v", back.Single, cfg.Single)
	}

	multi := &PalletConfig{
		Multi: &MultiPallet{Pallets: []PalletSpec{{CartonsPerRow: 3, RowsPerLevel: 2}}, TotalPallets: 1},
	}
	data, err = json.Marshal(multi)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var backMulti PalletConfig
	if err := json.Unmarshal(data, &backMulti); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if backMulti.Multi == nil || len(backMulti.Multi.Pallets) != 1 {
		t.Errorf("multi round trip = %+v", backMulti.Multi)
	}
}

func TestPalletConfigNormalize(t *testing.T) {
	cfg := &PalletConfig{Single: &SinglePallet{CartonsPerRow: 5, RowsPerLevel: 4}}
	cfg.Normalize()
	if cfg.Single.CartonsPerPallet != 20 {
		t.Errorf("CartonsPerPallet = %d, want 20", cfg.Single.CartonsPerPallet)
	}

	multi := &PalletConfig{Multi: &MultiPallet{Pallets: []PalletSpec{
		{CartonsPerRow: 5, RowsPerLevel: 4},
		{CartonsPerPallet: 7},
	}}}
	multi.Normalize()
	if multi.Multi.Pallets[0].CartonsPerPallet != 20 {
		t.Errorf("pallet[0].CartonsPerPallet = %d, want 20", multi.Multi.Pallets[0].CartonsPerPallet)
	}
	if multi.Multi.Pallets[1].CartonsPerPallet != 7 {
		t.Errorf("pallet[1].CartonsPerPallet = %d, want 7 untouched", multi.Multi.Pallets[1].CartonsPerPallet)
	}
	if multi.Multi.TotalPallets != 2 {
		t.Errorf("TotalPallets = %d, want 2", multi.Multi.TotalPallets)
	}
}

func TestPalletConfigConfigured(t *testing.T) {
	var nilCfg *PalletConfig
	if nilCfg.Configured() {
		t.Error("nil config reports configured")
	}
	empty := &PalletConfig{Single: &SinglePallet{}}
	if empty.Configured() {
		t.Error("empty single config reports configured")
	}
	legacy := &PalletConfig{Single: &SinglePallet{CartonsPerPallet: 18}}
	if !legacy.Configured() {
		t.Error("legacy single config with stored count reports unconfigured")
	}
}
