package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/is7098"
)

func sampleSummary(t *testing.T) Summary {
	t.Helper()

	req := cable.Request{
		Current:        63,
		Conductor:      is7098.Copper,
		Installation:   is7098.Ground,
		Length:         50,
		DeratingFactor: 1.0,
		MaxDropPercent: 3.0,
		Voltage:        415,
	}
	res, err := cable.Select(req)
	require.NoError(t, err)
	require.True(t, res.Found)

	return Summary{
		LoadValue:   40,
		LoadUnit:    cable.KW,
		PowerFactor: 0.9,
		Current:     63,
		Request:     req,
		Result:      res,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(sampleSummary(t), &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(sampleSummary(t), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Cable Selection Report", title)

	standard, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, StandardLabel, standard)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	byLabel := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			byLabel[row[0]] = row[1]
		}
	}
	assert.Equal(t, "63.00 A", byLabel["Calculated Current"])
	assert.Equal(t, "16 sq.mm", byLabel["Selected Size"])
	assert.Equal(t, "2.09 %", byLabel["Voltage Drop"])
	assert.Equal(t, "Cu", byLabel["Conductor Material"])
}

func TestWriteXLSXNotFound(t *testing.T) {
	s := sampleSummary(t)
	s.Result = cable.Result{Found: false, MaxDropPercent: 3.0, Reason: "no suitable cable found"}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(s, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Result" {
			assert.Contains(t, row[1], "no suitable cable")
			found = true
		}
	}
	assert.True(t, found, "failure outcome must appear in the report")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	err := Export(sampleSummary(t), "report.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
