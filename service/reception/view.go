package reception

import (
	"sort"
	"strconv"
	"strings"
	"time"

	receptionEntity "warehouse.GO/model/entity/reception"
)

// Read-side list pipeline shared by the API, HTML table and PDF report.

// ListQuery carries the filter/sort parameters of a list view.
type ListQuery struct {
	Search    string
	Status    string // "", "all" or one of the status values
	SortField string
	SortDir   string // "asc" or "desc"
}

// Filter returns the records matching the query: a case-insensitive
// substring search across the visible fields, then an exact status filter.
func Filter(list []receptionEntity.Reception, q ListQuery) []receptionEntity.Reception {
	out := make([]receptionEntity.Reception, 0, len(list))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, rec := range list {
		if term != "" && !matches(rec, term) {
			continue
		}
		if q.Status != "" && q.Status != "all" && rec.Status != q.Status {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matches(rec receptionEntity.Reception, term string) bool {
	fields := []string{
		rec.ProductName,
		rec.Barcode,
		rec.Status,
		rec.ProductionDate.String(),
		rec.ExpirationDate.String(),
		strconv.Itoa(rec.Cartons),
		strconv.Itoa(rec.UnitsPerCarton),
		strconv.Itoa(rec.TotalUnits),
		strconv.Itoa(rec.ShelfLifeMonths),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// SortBy returns a copy of the list ordered by the given field. Unknown
// fields leave the order untouched. Direction defaults to ascending.
func SortBy(list []receptionEntity.Reception, field, dir string) []receptionEntity.Reception {
	out := make([]receptionEntity.Reception, len(list))
	copy(out, list)
	cmp := comparator(field)
	if cmp == nil {
		return out
	}
	desc := dir == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparator(field string) func(a, b receptionEntity.Reception) int {
	switch field {
	case "product_name":
		return func(a, b receptionEntity.Reception) int { return strings.Compare(a.ProductName, b.ProductName) }
	case "cartons":
		return func(a, b receptionEntity.Reception) int { return a.Cartons - b.Cartons }
	case "units_per_carton":
		return func(a, b receptionEntity.Reception) int { return a.UnitsPerCarton - b.UnitsPerCarton }
	case "total_units":
		return func(a, b receptionEntity.Reception) int { return a.TotalUnits - b.TotalUnits }
	case "barcode":
		return func(a, b receptionEntity.Reception) int { return strings.Compare(a.Barcode, b.Barcode) }
	case "production_date":
		return func(a, b receptionEntity.Reception) int { return compareTimes(a.ProductionDate.Time, b.ProductionDate.Time) }
	case "expiration_date":
		return func(a, b receptionEntity.Reception) int { return compareTimes(a.ExpirationDate.Time, b.ExpirationDate.Time) }
	case "shelf_life_months":
		return func(a, b receptionEntity.Reception) int { return a.ShelfLifeMonths - b.ShelfLifeMonths }
	case "status":
		return func(a, b receptionEntity.Reception) int { return strings.Compare(a.Status, b.Status) }
	case "created_at":
		return func(a, b receptionEntity.Reception) int { return compareTimes(a.CreatedAt, b.CreatedAt) }
	default:
		return nil
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
