package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the applications received on a tender as a workbook with
// a summary block followed by one row per application.
func (g *Generator) Generate(report model.ApplicationReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Applications"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Tender")
	set("B1", report.Tender.Title)
	set("A2", "Posted by")
	set("B2", report.Owner.Name)
	set("A3", "Status")
	set("B3", string(report.Tender.Status))
	set("A4", "Budget")
	set("B4", formatMoney(report.Tender.Budget))
	set("A5", "Deadline")
	set("B5", formatDate(report.Tender.Deadline))
	set("A6", "Applications")
	set("B6", len(report.Applications))
	set("A7", "Generated at")
	set("B7", report.GeneratedAt.Format("2006-01-02 15:04"))

	tableRow := 9
	set(fmt.Sprintf("A%d", tableRow), "Company")
	set(fmt.Sprintf("B%d", tableRow), "Proposal")
	set(fmt.Sprintf("C%d", tableRow), "Quoted price")
	set(fmt.Sprintf("D%d", tableRow), "Status")
	set(fmt.Sprintf("E%d", tableRow), "Submitted")

	for i, application := range report.Applications {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), application.CompanyName)
		set(fmt.Sprintf("B%d", row), application.Proposal)
		set(fmt.Sprintf("C%d", row), formatMoney(application.QuotedPrice))
		set(fmt.Sprintf("D%d", row), string(application.Status))
		set(fmt.Sprintf("E%d", row), application.CreatedAt.Format("2006-01-02 15:04"))
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 60)
	_ = file.SetColWidth(sheet, "C", "E", 16)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
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
