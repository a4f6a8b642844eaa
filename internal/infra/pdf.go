package infra

// pdf.go — daily sales report generation using go-pdf/fpdf.
// Produces an A7-size thermal-receipt-style summary of a session's ledger:
// store name header, timestamp, one row per committed line item, daily total
// and the trending item line.

import (
	"fmt"
	"time"

	"shakepos/internal/model"

	"github.com/go-pdf/fpdf"
)

// ReportGenerator renders a session ledger snapshot as a PDF document.
type ReportGenerator struct {
	StoreName      string
	CurrencyPrefix string
}

// GenerateSalesReport writes the PDF to w-compatible byte slice via fpdf's
// in-memory output. nameOf resolves item ids to display names; trendText is
// empty when the ledger holds no entries.
func (g *ReportGenerator) GenerateSalesReport(snap model.LedgerSnapshot, nameOf func(string) string, trendText string) (*fpdf.Fpdf, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, g.StoreName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Sales Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, time.Now().Format("02/01/2006  15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	if len(snap.Entries) == 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentW, 5, "No sales yet.", "", 1, "C", false, 0, "")
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("pdf: %w", err)
		}
		return pdf, nil
	}

	// ── Entry rows ────────────────────────────────────────────────────────────
	col1 := contentW * 0.20 // time
	col2 := contentW * 0.50 // item + quantities
	col3 := contentW * 0.30 // total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Time", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, e := range snap.Entries {
		label := fmt.Sprintf("%s x%d", nameOf(e.ItemID), e.Quantity)
		if e.AddOnQty > 0 {
			label += fmt.Sprintf(" + Add-On x%d", e.AddOnQty)
		}
		if len(label) > 26 {
			label = label[:25] + "…"
		}
		pdf.CellFormat(col1, 5, e.Time.Local().Format("15:04:05"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, g.CurrencyPrefix+e.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "Daily Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, g.CurrencyPrefix+snap.TotalSales.StringFixed(2), "", 1, "R", false, 0, "")

	if trendText != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.MultiCell(contentW, 4, trendText, "", "C", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return pdf, nil
}
