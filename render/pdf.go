// Package render writes timetables to printable PDF files, one landscape A4
// table per direction. It knows nothing about GTFS; it consumes the row grid
// the timetable package exposes.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/transitprint/corredor/timetable"
)

const (
	headerRowHeight = 10.0
	tripRowHeight   = 5.0
)

// OutputPath returns the file name used for one direction's PDF inside dir.
func OutputPath(dir string, tt *timetable.Timetable, d timetable.Direction) string {
	date := strings.ReplaceAll(tt.Date, "/", "-")
	return filepath.Join(dir, fmt.Sprintf("timetable_%s_%s.pdf", d, date))
}

// WritePDF renders one direction of a timetable to path. Rendering failures
// are independent of the parsing pipeline: the timetable stays valid and the
// other direction can still be written.
func WritePDF(tt *timetable.Timetable, d timetable.Direction, path string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	// Station names carry accents; core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("%s %s", tt.Label(d), tt.Date)), false)
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(tt.Line))
	bottom := pageH - top

	header := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s - %s", tt.Label(d), tt.Date)), "", 1, "C", false, 0, "")
		pdf.SetFillColor(230, 230, 230)
		pdf.SetFont("Helvetica", "B", 5)
		y := pdf.GetY()
		for i, st := range tt.Line {
			x := left + float64(i)*colW
			pdf.Rect(x, y, colW, headerRowHeight, "FD")
			// Clip so long station names stay inside their column.
			pdf.ClipRect(x, y, colW, headerRowHeight, false)
			pdf.SetXY(x, y+1)
			pdf.MultiCell(colW, headerRowHeight/3, tr(st.Name), "", "C", false)
			pdf.ClipEnd()
		}
		pdf.SetXY(left, y+headerRowHeight)
		pdf.SetFont("Helvetica", "", 6)
	}

	header()
	for _, row := range tt.Rows(d) {
		if pdf.GetY()+tripRowHeight > bottom {
			header()
		}
		for _, cell := range row {
			pdf.CellFormat(colW, tripRowHeight, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
