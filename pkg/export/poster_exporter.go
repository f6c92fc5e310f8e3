package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ScheduleCell is one course placed on the weekly grid.
type ScheduleCell struct {
	Code  string
	Name  string
	CRN   string
	Day   string
	Start string
	End   string
}

// Schedule is the weekly timetable handed to the poster renderer.
type Schedule struct {
	Title      string
	Subtitle   string
	Days       []string
	StartTimes []string
	Cells      []ScheduleCell
}

// PosterExporter renders a weekly schedule grid into a landscape PDF.
type PosterExporter struct{}

// NewPosterExporter constructs a poster exporter.
func NewPosterExporter() *PosterExporter {
	return &PosterExporter{}
}

// Render draws the grid: one row per start slot, one column per day
// pair, each occupied cell carrying course code, title and CRN.
func (e *PosterExporter) Render(schedule Schedule) ([]byte, error) {
	if len(schedule.Days) == 0 || len(schedule.StartTimes) == 0 {
		return nil, fmt.Errorf("poster requires day columns and time slots")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	if schedule.Title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, schedule.Title, "", 1, "C", false, 0, "")
	}
	if schedule.Subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, schedule.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	const timeColWidth = 28.0
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	dayColWidth := (pageWidth - left - right - timeColWidth) / float64(len(schedule.Days))
	rowHeight := 18.0

	// Header row.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 238, 245)
	pdf.CellFormat(timeColWidth, 10, "Time", "1", 0, "C", true, 0, "")
	for _, day := range schedule.Days {
		pdf.CellFormat(dayColWidth, 10, day, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	placed := placeCells(schedule.Cells)

	for _, slot := range schedule.StartTimes {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(timeColWidth, rowHeight, fmt.Sprintf("%s - %s", slot, deriveSlotEnd(slot)), "1", 0, "C", false, 0, "")
		for _, day := range schedule.Days {
			cells := placed[slot+"|"+day]
			if len(cells) == 0 {
				pdf.CellFormat(dayColWidth, rowHeight, "", "1", 0, "C", false, 0, "")
				continue
			}
			x, y := pdf.GetXY()
			pdf.Rect(x, y, dayColWidth, rowHeight, "D")
			if len(cells) == 1 {
				cell := cells[0]
				pdf.SetXY(x, y+2)
				pdf.SetFont("Arial", "B", 9)
				pdf.CellFormat(dayColWidth, 4, cell.Code, "", 2, "C", false, 0, "")
				pdf.SetFont("Arial", "", 8)
				pdf.CellFormat(dayColWidth, 4, truncate(cell.Name, 42), "", 2, "C", false, 0, "")
				pdf.CellFormat(dayColWidth, 4, "CRN "+crnLabel(cell.CRN), "", 2, "C", false, 0, "")
			} else {
				// Overlapping courses share the cell; conflicts are
				// advisory and every staged course must appear.
				blockHeight := rowHeight / float64(len(cells))
				for i, cell := range cells {
					pdf.SetXY(x, y+blockHeight*float64(i)+1)
					pdf.SetFont("Arial", "B", 7)
					pdf.CellFormat(dayColWidth, 3, cell.Code+"  CRN "+crnLabel(cell.CRN), "", 2, "C", false, 0, "")
					pdf.SetFont("Arial", "", 6)
					pdf.CellFormat(dayColWidth, 3, truncate(cell.Name, 48), "", 2, "C", false, 0, "")
				}
			}
			pdf.SetXY(x+dayColWidth, y)
		}
		pdf.Ln(rowHeight)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render poster: %w", err)
	}
	return buf.Bytes(), nil
}

// placeCells groups cells by slot and day, keeping declaration order
// so co-scheduled courses all land in the shared cell.
func placeCells(cells []ScheduleCell) map[string][]ScheduleCell {
	placed := make(map[string][]ScheduleCell, len(cells))
	for _, cell := range cells {
		key := cell.Start + "|" + cell.Day
		placed[key] = append(placed[key], cell)
	}
	return placed
}

func crnLabel(crn string) string {
	if crn == "" {
		return "-"
	}
	return crn
}

// deriveSlotEnd mirrors the :50 session length used across the grid.
func deriveSlotEnd(start string) string {
	for i := 0; i < len(start); i++ {
		if start[i] == ':' {
			return start[:i] + ":50"
		}
	}
	return start
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
