package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/username/leave-calendar/internal/engine"
)

// MonthPDF renders a month grid to a PDF file, one bordered cell per day
// with the day number, holiday name and the first names of everyone on
// leave. Blank alignment cells are drawn empty.
func MonthPDF(filePath, title string, cells []engine.Cell, firstDay time.Weekday) error {
	const (
		colWidth  = 39.0
		rowHeight = 26.0
	)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(firstDay) + i) % 7)
		pdf.CellFormat(colWidth, 8, day.String()[:3], "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for i, cell := range cells {
		pdf.CellFormat(colWidth, rowHeight, dayLabel(cell), "1", 0, "L", false, 0, "")
		if (i+1)%7 == 0 {
			pdf.Ln(-1)
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func dayLabel(cell engine.Cell) string {
	if cell.Blank {
		return ""
	}

	parts := []string{fmt.Sprintf("%d", cell.Date.Day)}
	if cell.Holiday != nil {
		parts = append(parts, cell.Holiday.Name)
	}
	for _, l := range cell.Leaves {
		parts = append(parts, strings.SplitN(l.Employee, " ", 2)[0])
	}
	return strings.Join(parts, "  ")
}
