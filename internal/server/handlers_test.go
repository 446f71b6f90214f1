package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func postJSON(t *testing.T, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleCurrent(t *testing.T) {
	rec := postJSON(t, "/api/tools/current/calc",
		`{"value": 10, "unit": "kW", "voltage": 230, "power_factor": 1.0}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var out currentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.InDelta(t, 43.48, out.Amps, 0.005)
}

func TestHandleCurrentInvalidParam(t *testing.T) {
	rec := postJSON(t, "/api/tools/current/calc",
		`{"value": 10, "unit": "kW", "voltage": 110, "power_factor": 1.0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var out errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "voltage", out.Param)
}

func TestHandleSelect(t *testing.T) {
	rec := postJSON(t, "/api/tools/cable/select", `{
		"current": 63,
		"conductor": "Cu",
		"installation_method": "ground",
		"length_m": 50,
		"derating_factor": 1.0,
		"max_voltage_drop_percent": 3.0,
		"voltage": 415
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var out selectResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.True(t, out.Found)
	assert.Equal(t, 16.0, out.Size)
	assert.Equal(t, 85.0, out.DeratedCapacity)
	assert.Equal(t, 2.09, out.DropPercent)
}

func TestHandleSelectNotFound(t *testing.T) {
	rec := postJSON(t, "/api/tools/cable/select", `{
		"current": 1000,
		"conductor": "Cu",
		"installation_method": "ground",
		"length_m": 50,
		"derating_factor": 1.0,
		"max_voltage_drop_percent": 3.0,
		"voltage": 415
	}`)

	require.Equal(t, http.StatusOK, rec.Code, "exhaustion is an outcome, not an error")

	var out selectResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.False(t, out.Found)
	assert.NotEmpty(t, out.Reason)
	assert.Len(t, out.Remedies, 4)
}

func TestHandleReport(t *testing.T) {
	rec := postJSON(t, "/api/tools/report/pdf", `{
		"load": {"value": 40, "unit": "kW", "power_factor": 0.9},
		"select": {
			"conductor": "Cu",
			"installation_method": "ground",
			"length_m": 50,
			"derating_factor": 1.0,
			"max_voltage_drop_percent": 3.0,
			"voltage": 415
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleBatch(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []string{"conductor", "installation_method", "current", "length_m", "derating_factor", "max_voltage_drop_percent", "voltage"}
	for col, v := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	data := [][]string{
		{"Cu", "ground", "63", "50", "1.0", "3.0", "415"},
		{"Al", "free_air", "100", "30", "0.8", "3.0", "415"},
		{"Cu", "ground", "not-a-number", "50", "1.0", "3.0", "415"}, // skipped
	}
	for r, row := range data {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var workbook bytes.Buffer
	require.NoError(t, f.Write(&workbook))
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "batch.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/cable/batch", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out batchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Results, 2)
	assert.Equal(t, 16.0, out.Results[0].Size)
	assert.True(t, out.Results[1].Found)
}

func TestRateLimiter(t *testing.T) {
	handler := New().Handler()

	limited := false
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/tools/cable/select",
			strings.NewReader(fmt.Sprintf(`{"current": %d, "conductor": "Cu", "installation_method": "ground", "length_m": 10, "derating_factor": 1.0, "max_voltage_drop_percent": 3.0, "voltage": 415}`, i+1)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "burst beyond the bucket must be rejected")
}
