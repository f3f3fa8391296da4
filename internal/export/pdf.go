package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sant0-9/diary/internal/diary"
)

// A4 portrait, millimetres
const (
	pdfMargin = 20.0
	pdfWidth  = 170.0
	pdfLine   = 5.0
)

var (
	pdfAccent = [3]int{79, 70, 229}
	pdfInk    = [3]int{30, 41, 59}
)

// PDF renders the download layout as a single A4 document: the title over
// an accent rule, then one section per field.
func PDF(o diary.Output) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.SetTitle(o.Title, true)
	doc.AddPage()

	// core fonts are cp1252
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
	doc.MultiCell(pdfWidth, 7, tr(o.Title), "", "L", false)
	doc.Ln(3)

	y := doc.GetY()
	doc.SetDrawColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
	doc.SetLineWidth(1)
	doc.Line(pdfMargin, y, pdfMargin+pdfWidth, y)
	doc.Ln(10)

	section := func(title, content string) {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetTextColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
		doc.CellFormat(pdfWidth, 6, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
		doc.MultiCell(pdfWidth, pdfLine, tr(content), "", "L", false)
		doc.Ln(8)
	}

	section("Work Summary", o.WorkSummary)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
	doc.CellFormat(35, 6, "HOURS WORKED", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
	doc.CellFormat(pdfWidth-35, 6, tr(": "+o.HoursWorked+" Hours"), "", 1, "L", false, 0, "")
	doc.Ln(8)

	section("Learnings / Outcomes", o.Learnings)
	section("Blockers / Risks", o.Blockers)
	section("Skills Used", strings.Join(o.SkillsUsed, ", "))
	section("Reference Links", o.ReferenceLink)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
