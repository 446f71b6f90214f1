package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Cable Sizing"

// WriteXLSX renders the summary as a two-column workbook.
func WriteXLSX(s Summary, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	if err := f.SetCellValue(sheetName, "A1", "Cable Selection Report"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "A2", StandardLabel); err != nil {
		return err
	}

	line := 4
	for _, row := range s.rows() {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), row[1]); err != nil {
			return err
		}
		line++
	}

	line++
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), "Generated"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), s.generatedAt().Format("2006-01-02 15:04")); err != nil {
		return err
	}

	return f.Write(w)
}
