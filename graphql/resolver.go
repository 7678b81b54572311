package graphql

import (
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"

	receptionEntity "warehouse.GO/model/entity/reception"
	receptionRepo "warehouse.GO/model/repository/reception"
	receptionService "warehouse.GO/service/reception"
)

// Resolver is the query root. The clock is injectable so displayStatus is
// deterministic in tests.
type Resolver struct {
	repo *receptionRepo.Repository
	now  func() time.Time
}

func NewResolver(repo *receptionRepo.Repository) *Resolver {
	return &Resolver{repo: repo, now: time.Now}
}

// NewResolverWithClock builds a resolver with a fixed clock (tests).
func NewResolverWithClock(repo *receptionRepo.Repository, now func() time.Time) *Resolver {
	return &Resolver{repo: repo, now: now}
}

type receptionsArgs struct {
	Search *string
	Status *string
	Sort   *string
	Dir    *string
}

func (r *Resolver) Receptions(args receptionsArgs) []*ReceptionResolver {
	list := r.filtered(args.Search, args.Status)
	if args.Sort != nil {
		dir := ""
		if args.Dir != nil {
			dir = *args.Dir
		}
		list = receptionService.SortBy(list, *args.Sort, dir)
	}
	now := r.now()
	out := make([]*ReceptionResolver, 0, len(list))
	for _, rec := range list {
		out = append(out, &ReceptionResolver{rec: rec, now: now})
	}
	return out
}

func (r *Resolver) Summary(args struct{ Search, Status *string }) *SummaryResolver {
	list := r.filtered(args.Search, args.Status)
	return &SummaryResolver{
		count:      int32(len(list)),
		totalUnits: int32(receptionService.SumTotalUnits(list)),
	}
}

func (r *Resolver) filtered(search, status *string) []receptionEntity.Reception {
	q := receptionService.ListQuery{}
	if search != nil {
		q.Search = *search
	}
	if status != nil {
		q.Status = *status
	}
	return receptionService.Filter(r.repo.List(), q)
}

// ReceptionResolver exposes one record.
type ReceptionResolver struct {
	rec receptionEntity.Reception
	now time.Time
}

func (r *ReceptionResolver) ID() graphqlgo.ID      { return graphqlgo.ID(r.rec.ID) }
func (r *ReceptionResolver) ProductName() string   { return r.rec.ProductName }
func (r *ReceptionResolver) Cartons() int32        { return int32(r.rec.Cartons) }
func (r *ReceptionResolver) UnitsPerCarton() int32 { return int32(r.rec.UnitsPerCarton) }
func (r *ReceptionResolver) TotalUnits() int32     { return int32(r.rec.TotalUnits) }
func (r *ReceptionResolver) Barcode() string       { return r.rec.Barcode }
func (r *ReceptionResolver) ProductionDate() string {
	return r.rec.ProductionDate.String()
}
func (r *ReceptionResolver) ExpirationDate() string {
	return r.rec.ExpirationDate.String()
}
func (r *ReceptionResolver) ShelfLifeMonths() int32 { return int32(r.rec.ShelfLifeMonths) }
func (r *ReceptionResolver) Status() string         { return r.rec.Status }
func (r *ReceptionResolver) DisplayStatus() string {
	return receptionService.DisplayStatus(r.rec, r.now)
}
func (r *ReceptionResolver) CreatedAt() string {
	return r.rec.CreatedAt.Format(time.RFC3339)
}
func (r *ReceptionResolver) PalletCartons() int32 {
	return int32(receptionService.TotalCartons(r.rec.PalletConfig))
}
func (r *ReceptionResolver) PalletMatches() bool {
	return receptionService.PalletMatches(r.rec)
}

// SummaryResolver exposes the aggregate over the filtered list.
type SummaryResolver struct {
	count      int32
	totalUnits int32
}

func (s *SummaryResolver) Count() int32      { return s.count }
func (s *SummaryResolver) TotalUnits() int32 { return s.totalUnits }
