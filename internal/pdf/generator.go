package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

const fontName = "Helvetica"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the applications received on a tender as a single-page
// (or overflowing) landscape A4 document.
func (g *Generator) Generate(report model.ApplicationReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, "Tender applications", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Tender: %s", report.Tender.Title), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Posted by: %s", report.Owner.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s    Budget: %s    Deadline: %s",
		report.Tender.Status,
		formatMoney(report.Tender.Budget),
		formatDate(report.Tender.Deadline),
	), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at: %s", report.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Applications received: %d", len(report.Applications)), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)

	headers := []string{"Company", "Proposal", "Quoted price", "Status", "Submitted"}
	colWidths := []float64{55, 120, 30, 30, 32}
	drawTableRow(pdf, headers, colWidths, true)

	for _, application := range report.Applications {
		row := []string{
			application.CompanyName,
			application.Proposal,
			formatMoney(application.QuotedPrice),
			string(application.Status),
			application.CreatedAt.Format("2006-01-02 15:04"),
		}
		drawTableRow(pdf, row, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, truncate(pdf, cell, widths[i]), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// truncate cuts a cell value to its column width so the table stays aligned.
func truncate(pdf *gofpdf.Fpdf, value string, width float64) string {
	lines := pdf.SplitText(value, width-2)
	if len(lines) <= 1 {
		return value
	}
	return lines[0] + "..."
}

func formatMoney(value *float64) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *value)
}

func formatDate(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return value.Format("2006-01-02")
}
