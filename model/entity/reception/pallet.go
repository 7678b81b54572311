package reception

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// PalletConfig is a tagged variant: exactly one of Single or Multi is set.
// Two historical JSON shapes exist in stored data, a flat single-pallet
// object and a multi-pallet object carrying a "pallets" array, and both
// must stay readable. The discriminator on decode is the presence of the
// "pallets" key.
type PalletConfig struct {
	Single *SinglePallet
	Multi  *MultiPallet
}

// SinglePallet is the original flat shape.
type SinglePallet struct {
	CartonsPerRow    int  `json:"cartons_per_row" mapstructure:"cartons_per_row"`
	RowsPerLevel     int  `json:"rows_per_level" mapstructure:"rows_per_level"`
	NumberOfPallets  int  `json:"number_of_pallets" mapstructure:"number_of_pallets"`
	CartonsPerPallet int  `json:"cartons_per_pallet" mapstructure:"cartons_per_pallet"`
	UseAutoCalc      bool `json:"use_auto_calculation,omitempty" mapstructure:"use_auto_calculation"`
}

// PalletSpec is one pallet inside the multi-pallet shape.
type PalletSpec struct {
	CartonsPerRow    int `json:"cartons_per_row" mapstructure:"cartons_per_row"`
	RowsPerLevel     int `json:"rows_per_level" mapstructure:"rows_per_level"`
	CartonsPerPallet int `json:"cartons_per_pallet" mapstructure:"cartons_per_pallet"`
}

// MultiPallet is the newer shape with one spec per pallet.
type MultiPallet struct {
	Pallets      []PalletSpec `json:"pallets" mapstructure:"pallets"`
	UseAutoCalc  bool         `json:"use_auto_calculation" mapstructure:"use_auto_calculation"`
	TotalPallets int          `json:"total_pallets" mapstructure:"total_pallets"`
}

func (p *PalletConfig) MarshalJSON() ([]byte, error) {
	switch {
	case p == nil:
		return []byte("null"), nil
	case p.Multi != nil:
		return json.Marshal(p.Multi)
	case p.Single != nil:
		return json.Marshal(p.Single)
	default:
		return []byte("null"), nil
	}
}

func (p *PalletConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pallet_config: %w", err)
	}
	if raw == nil {
		*p = PalletConfig{}
		return nil
	}
	if _, ok := raw["pallets"]; ok {
		var multi MultiPallet
		if err := decodePallet(raw, &multi); err != nil {
			return err
		}
		*p = PalletConfig{Multi: &multi}
		return nil
	}
	var single SinglePallet
	if err := decodePallet(raw, &single); err != nil {
		return err
	}
	*p = PalletConfig{Single: &single}
	return nil
}

// decodePallet decodes a raw pallet_config map. WeaklyTypedInput tolerates
// old records that stored counts as strings (form inputs saved unparsed).
func decodePallet(raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("pallet_config: %w", err)
	}
	return nil
}

// Normalize fills the derived cartons_per_pallet fields from the row/level
// counts where both are set, and total_pallets from the pallet list.
func (p *PalletConfig) Normalize() {
	if p == nil {
		return
	}
	if s := p.Single; s != nil && s.CartonsPerRow > 0 && s.RowsPerLevel > 0 {
		s.CartonsPerPallet = s.CartonsPerRow * s.RowsPerLevel
	}
	if m := p.Multi; m != nil {
		for i := range m.Pallets {
			spec := &m.Pallets[i]
			if spec.CartonsPerRow > 0 && spec.RowsPerLevel > 0 {
				spec.CartonsPerPallet = spec.CartonsPerRow * spec.RowsPerLevel
			}
		}
		if m.TotalPallets == 0 {
			m.TotalPallets = len(m.Pallets)
		}
	}
}

// Configured reports whether at least one pallet has usable counts.
func (p *PalletConfig) Configured() bool {
	if p == nil {
		return false
	}
	if s := p.Single; s != nil {
		return (s.CartonsPerRow > 0 && s.RowsPerLevel > 0) || s.CartonsPerPallet > 0
	}
	if m := p.Multi; m != nil {
		for _, spec := range m.Pallets {
			if (spec.CartonsPerRow > 0 && spec.RowsPerLevel > 0) || spec.CartonsPerPallet > 0 {
				return true
			}
		}
	}
	return false
}
