package reception

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	"warehouse.GO/config"
	receptionEntity "warehouse.GO/model/entity/reception"
	receptionRepo "warehouse.GO/model/repository/reception"
	receptionService "warehouse.GO/service/reception"
	"warehouse.GO/service/report"
)

func init() {
	api.RegisterModule(RegisterReceptionRoutes)
}

// row is one list entry: the stored record plus the read-time derived
// values. display_status is computed from the live clock and can disagree
// with the stored snapshot.
type row struct {
	receptionEntity.Reception
	DisplayStatus string `json:"display_status"`
	PalletCartons int    `json:"pallet_cartons,omitempty"`
	PalletMatches *bool  `json:"pallet_matches,omitempty"`
}

func makeRow(rec receptionEntity.Reception, now time.Time) row {
	r := row{
		Reception:     rec,
		DisplayStatus: receptionService.DisplayStatus(rec, now),
	}
	if total := receptionService.TotalCartons(rec.PalletConfig); total > 0 {
		matches := receptionService.PalletMatches(rec)
		r.PalletCartons = total
		r.PalletMatches = &matches
	}
	return r
}

func RegisterReceptionRoutes(apiGroup *echo.Group, repo *receptionRepo.Repository) {
	g := apiGroup.Group("/receptions")

	// GET /api/receptions – list with search/status filter and sorting
	g.GET("", func(c echo.Context) error {
		list := filteredList(repo, c)
		now := time.Now()
		rows := make([]row, 0, len(list))
		for _, rec := range list {
			rows = append(rows, makeRow(rec, now))
		}
		return c.JSON(http.StatusOK, echo.Map{
			"receptions":  rows,
			"count":       len(rows),
			"total_units": receptionService.SumTotalUnits(list),
		})
	})

	// POST /api/receptions – create a record
	g.POST("", func(c echo.Context) error {
		var in receptionRepo.CreateInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		rec, err := repo.Create(in)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, makeRow(*rec, time.Now()))
	})

	// PUT /api/receptions/:id – partial update
	g.PUT("/:id", func(c echo.Context) error {
		var in receptionRepo.UpdateInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		rec, err := repo.Update(c.Param("id"), in)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, makeRow(*rec, time.Now()))
	})

	// DELETE /api/receptions/:id – idempotent delete
	g.DELETE("/:id", func(c echo.Context) error {
		if err := repo.Delete(c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	// GET /api/receptions/summary – aggregate over the filtered list
	g.GET("/summary", func(c echo.Context) error {
		list := filteredList(repo, c)
		byStatus := map[string]int{}
		for _, rec := range list {
			byStatus[rec.Status]++
		}
		return c.JSON(http.StatusOK, echo.Map{
			"count":       len(list),
			"total_units": receptionService.SumTotalUnits(list),
			"by_status":   byStatus,
		})
	})

	// GET /api/receptions/report – PDF of the filtered/sorted list
	g.GET("/report", func(c echo.Context) error {
		list := filteredList(repo, c)
		lang := c.QueryParam("lang")
		if lang == "" && config.AppConfig != nil {
			lang = config.AppConfig.Language
		}
		now := time.Now()
		pdf, err := report.ReceptionsPDF(list, lang, now)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+report.Filename(now)+`"`)
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	})
}

// filteredList applies the shared list pipeline: ordered by created_at desc,
// then the query's search/status filter, then an optional explicit sort.
func filteredList(repo *receptionRepo.Repository, c echo.Context) []receptionEntity.Reception {
	list := repo.List()
	list = receptionService.Filter(list, receptionService.ListQuery{
		Search: c.QueryParam("q"),
		Status: c.QueryParam("status"),
	})
	if field := c.QueryParam("sort"); field != "" {
		list = receptionService.SortBy(list, field, c.QueryParam("dir"))
	}
	return list
}

func writeError(c echo.Context, err error) error {
	var vErr *receptionRepo.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, receptionRepo.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
