package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders the summary as a one-page A4 PDF.
func WritePDF(s Summary, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Cable Selection Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, StandardLabel, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Parameters and outcome
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range s.rows() {
		if row[0] == "Selected Size" || row[0] == "Result" {
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.CellFormat(0, 8, fmt.Sprintf("%s: %s", row[0], row[1]), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}

	// Footer
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", s.generatedAt().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Standard: %s", StandardLabel), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
