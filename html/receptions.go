package html

import (
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	"warehouse.GO/config"
	"warehouse.GO/core/i18n"
	receptionRepo "warehouse.GO/model/repository/reception"
	receptionService "warehouse.GO/service/reception"
)

//go:embed receptions.html
var receptionsPage string

var receptionsTmpl = template.Must(template.New("receptions").Parse(receptionsPage))

func init() {
	api.RegisterHTMLModule(RegisterReceptionHTMLRoutes)
}

type tableRow struct {
	ProductName     string
	Cartons         int
	UnitsPerCarton  int
	TotalUnits      int
	Barcode         string
	ProductionDate  string
	ExpirationDate  string
	ShelfLifeMonths int
	DisplayStatus   string
	StatusLabel     string
	PalletDiffers   bool
}

type columnLabels struct {
	Product, Cartons, UnitsPerCarton, TotalUnits, Barcode string
	Production, Expiration, ShelfLife, Status             string
}

type pageData struct {
	Lang, Title, Subtitle, Footer          string
	TotalLabel, TotalUnitsLabel            string
	GeneralTotalLabel, NoDataLabel         string
	Count, TotalUnits                      int
	Columns                                columnLabels
	Rows                                   []tableRow
}

// RegisterReceptionHTMLRoutes serves the reception table at /. The status
// column shows the read-time display status, not the stored snapshot.
func RegisterReceptionHTMLRoutes(e *echo.Echo, repo *receptionRepo.Repository) {
	e.GET("/", func(c echo.Context) error {
		lang := c.QueryParam("lang")
		if lang == "" && config.AppConfig != nil {
			lang = config.AppConfig.Language
		}
		translate := i18n.Translator(lang)

		list := receptionService.Filter(repo.List(), receptionService.ListQuery{
			Search: c.QueryParam("q"),
			Status: c.QueryParam("status"),
		})
		if field := c.QueryParam("sort"); field != "" {
			list = receptionService.SortBy(list, field, c.QueryParam("dir"))
		}

		now := time.Now()
		rows := make([]tableRow, 0, len(list))
		for _, rec := range list {
			display := receptionService.DisplayStatus(rec, now)
			rows = append(rows, tableRow{
				ProductName:     rec.ProductName,
				Cartons:         rec.Cartons,
				UnitsPerCarton:  rec.UnitsPerCarton,
				TotalUnits:      rec.TotalUnits,
				Barcode:         rec.Barcode,
				ProductionDate:  rec.ProductionDate.String(),
				ExpirationDate:  rec.ExpirationDate.String(),
				ShelfLifeMonths: rec.ShelfLifeMonths,
				DisplayStatus:   display,
				StatusLabel:     translate("status." + display),
				PalletDiffers:   !receptionService.PalletMatches(rec),
			})
		}

		data := pageData{
			Lang:              lang,
			Title:             translate("table.title"),
			Subtitle:          translate("app.subtitle"),
			Footer:            translate("app.footer"),
			TotalLabel:        translate("table.totalReceptions"),
			TotalUnitsLabel:   translate("table.totalUnits"),
			GeneralTotalLabel: translate("table.generalTotal"),
			NoDataLabel:       translate("table.noData"),
			Count:             len(list),
			TotalUnits:        receptionService.SumTotalUnits(list),
			Columns: columnLabels{
				Product:        translate("table.columns.product"),
				Cartons:        translate("table.columns.cartons"),
				UnitsPerCarton: translate("table.columns.unitsPerCarton"),
				TotalUnits:     translate("table.columns.totalUnits"),
				Barcode:        translate("table.columns.barcode"),
				Production:     translate("table.columns.production"),
				Expiration:     translate("table.columns.expiration"),
				ShelfLife:      translate("table.columns.shelfLife"),
				Status:         translate("table.columns.status"),
			},
			Rows: rows,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)
		return receptionsTmpl.Execute(c.Response(), data)
	})
}
