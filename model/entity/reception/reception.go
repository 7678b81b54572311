package reception

import "time"

// Status snapshot values. The stored status is a snapshot taken at creation
// time; read surfaces compute a separate display status from the live clock
// (see service/reception), and the statusrefresh cron job rewrites stale
// snapshots.
const (
	StatusOK          = "ok"
	StatusPassedThird = "passedThird"
	StatusExpired     = "expired"
)

// Statuses lists all valid status values.
var Statuses = []string{StatusOK, StatusPassedThird, StatusExpired}

// Reception is one recorded delivery of a product. JSON field names are the
// storage layout and must not change: stored data depends on them.
type Reception struct {
	ID              string        `json:"id"`
	ProductName     string        `json:"product_name"`
	Cartons         int           `json:"cartons"`
	UnitsPerCarton  int           `json:"units_per_carton"`
	TotalUnits      int           `json:"total_units"`
	Barcode         string        `json:"barcode"`
	ProductionDate  Date          `json:"production_date"`
	ExpirationDate  Date          `json:"expiration_date"`
	ShelfLifeMonths int           `json:"shelf_life_months"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	PalletConfig    *PalletConfig `json:"pallet_config,omitempty"`
}
