package reception

import (
	"strconv"
	"strings"
	"time"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// Derived-field calculator. Every function is pure and takes the clock as an
// explicit argument where the result depends on it.

// TotalUnits returns cartons × unitsPerCarton, or 0 when either count is not
// positive.
func TotalUnits(cartons, unitsPerCarton int) int {
	if cartons <= 0 || unitsPerCarton <= 0 {
		return 0
	}
	return cartons * unitsPerCarton
}

// TotalUnitsRaw is TotalUnits over form-style string inputs. Missing or
// unparseable values count as zero.
func TotalUnitsRaw(cartons, unitsPerCarton string) int {
	return TotalUnits(parseIntOrZero(cartons), parseIntOrZero(unitsPerCarton))
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// MonthsBetween returns the whole-month calendar difference from one date to
// another, truncated toward zero. Either date absent yields 0.
func MonthsBetween(from, to receptionEntity.Date) int {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	sign := 1
	a, b := from.Time, to.Time
	if b.Before(a) {
		a, b = b, a
		sign = -1
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return sign * months
}

// ShelfLifeMonths is the whole-month interval between production and
// expiration dates.
func ShelfLifeMonths(production, expiration receptionEntity.Date) int {
	return MonthsBetween(production, expiration)
}

// Status derives the freshness state at the given instant. The one-third
// threshold is evaluated in whole months: a shelf life under 3 months has a
// threshold of 0 and turns passedThird immediately after production.
func Status(production, expiration receptionEntity.Date, now time.Time) string {
	if production.IsZero() || expiration.IsZero() {
		return receptionEntity.StatusOK
	}
	if !now.Before(expiration.Time) {
		return receptionEntity.StatusExpired
	}
	shelfLife := ShelfLifeMonths(production, expiration)
	if MonthsBetween(production, receptionEntity.DateOf(now)) >= shelfLife/3 {
		return receptionEntity.StatusPassedThird
	}
	return receptionEntity.StatusOK
}

// DisplayStatus is the read-time status of a record, as opposed to the
// snapshot stored in rec.Status.
func DisplayStatus(rec receptionEntity.Reception, now time.Time) string {
	return Status(rec.ProductionDate, rec.ExpirationDate, now)
}

// CartonsPerPallet returns cartonsPerRow × rowsPerLevel, or 0 when either is
// absent or non-positive.
func CartonsPerPallet(cartonsPerRow, rowsPerLevel int) int {
	if cartonsPerRow <= 0 || rowsPerLevel <= 0 {
		return 0
	}
	return cartonsPerRow * rowsPerLevel
}

// TotalCartons computes the carton count a pallet configuration accounts for.
// Single shape: cartons per pallet × number of pallets (absent count = 1).
// Multi shape: sum of per-pallet carton counts. Returns 0 when nothing is
// fully configured. Stored cartons_per_pallet values are used when the
// row/level counts are missing (older records).
func TotalCartons(cfg *receptionEntity.PalletConfig) int {
	if cfg == nil {
		return 0
	}
	if s := cfg.Single; s != nil {
		perPallet := CartonsPerPallet(s.CartonsPerRow, s.RowsPerLevel)
		if perPallet == 0 {
			perPallet = s.CartonsPerPallet
		}
		if perPallet <= 0 {
			return 0
		}
		n := s.NumberOfPallets
		if n <= 0 {
			n = 1
		}
		return perPallet * n
	}
	if m := cfg.Multi; m != nil {
		total := 0
		for _, spec := range m.Pallets {
			perPallet := CartonsPerPallet(spec.CartonsPerRow, spec.RowsPerLevel)
			if perPallet == 0 {
				perPallet = spec.CartonsPerPallet
			}
			if perPallet > 0 {
				total += perPallet
			}
		}
		return total
	}
	return 0
}

// PalletMatches reports whether the configured pallet total agrees with the
// record's carton count. Records without a usable configuration count as
// matching; there is nothing to disagree with.
func PalletMatches(rec receptionEntity.Reception) bool {
	total := TotalCartons(rec.PalletConfig)
	if total == 0 {
		return true
	}
	return total == rec.Cartons
}

// SumTotalUnits is the aggregate the report generator consumes.
func SumTotalUnits(list []receptionEntity.Reception) int {
	total := 0
	for _, rec := range list {
		total += rec.TotalUnits
	}
	return total
}
