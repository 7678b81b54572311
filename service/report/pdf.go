package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"warehouse.GO/core/i18n"
	receptionEntity "warehouse.GO/model/entity/reception"
	receptionService "warehouse.GO/service/reception"
)

// ReceptionsPDF renders the receptions report: header lines, a grid table of
// the visible record fields and a general-total footer. The caller passes an
// already filtered/sorted sequence; no reordering happens here.
//
// Labels come from the locale tables. The built-in PDF fonts are latin-1
// only, so non-latin label sets degrade, same limitation the original
// report had.
func ReceptionsPDF(list []receptionEntity.Reception, lang string, now time.Time) ([]byte, error) {
	translate := i18n.Translator(lang)
	totalUnits := receptionService.SumTotalUnits(list)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetY(10)
	pdf.CellFormat(0, 8, tr(translate("pdf.title")), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s %s", translate("pdf.generatedOn"), now.Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetY(32)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %d", translate("pdf.receptionsCount"), len(list))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %d", translate("pdf.totalUnits"), totalUnits)), "", 1, "L", false, 0, "")

	headers := []string{
		translate("table.columns.product"),
		translate("table.columns.cartons"),
		translate("table.columns.unitsPerCarton"),
		translate("table.columns.totalUnits"),
		translate("table.columns.barcode"),
		translate("table.columns.production"),
		translate("table.columns.expiration"),
		translate("table.columns.status"),
	}
	widths := []float64{50, 15, 22, 22, 18, 22, 22, 18}

	pdf.SetY(48)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, rec := range list {
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(245, 245, 245)
		}
		cells := []string{
			rec.ProductName,
			strconv.Itoa(rec.Cartons),
			strconv.Itoa(rec.UnitsPerCarton),
			strconv.Itoa(rec.TotalUnits),
			rec.Barcode,
			formatReportDate(rec.ProductionDate),
			formatReportDate(rec.ExpirationDate),
			translate("status." + rec.Status),
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 6, tr(cell), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(41, 128, 185)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s: %d", translate("pdf.generalTotal"), totalUnits)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name of a report generated at the given
// instant.
func Filename(now time.Time) string {
	return "rapport-receptions-" + now.Format("02-01-2006-1504") + ".pdf"
}

func formatReportDate(d receptionEntity.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}
