package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/is7098"
	"github.com/alexiusacademia/gocable/internal/report"
)

type loadRequest struct {
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Voltage     float64 `json:"voltage"`
	PowerFactor float64 `json:"power_factor"`
}

type currentResponse struct {
	Amps float64 `json:"amps"`
}

type selectRequest struct {
	Current        float64 `json:"current"`
	Conductor      string  `json:"conductor"`
	Installation   string  `json:"installation_method"`
	LengthM        float64 `json:"length_m"`
	DeratingFactor float64 `json:"derating_factor"`
	MaxDropPercent float64 `json:"max_voltage_drop_percent"`
	Voltage        float64 `json:"voltage"`
}

type selectResponse struct {
	Found           bool     `json:"found"`
	Size            float64  `json:"size_mm2,omitempty"`
	DeratedCapacity float64  `json:"derated_capacity_a,omitempty"`
	DropPercent     float64  `json:"voltage_drop_percent,omitempty"`
	DropPerMetre    float64  `json:"voltage_drop_mv_per_m,omitempty"`
	MaxDropPercent  float64  `json:"max_voltage_drop_percent"`
	Reason          string   `json:"reason,omitempty"`
	Remedies        []string `json:"remedies,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Param string `json:"param,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps engine validation failures to 400 with the offending
// field named; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var ipe *cable.InvalidParameterError
	if errors.As(err, &ipe) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ipe.Error(), Param: ipe.Param})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	var in loadRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}

	unit, err := cable.ParseLoadUnit(in.Unit)
	if err != nil {
		writeError(w, err)
		return
	}

	amps, err := cable.FullLoadCurrent(cable.Load{
		Value:       in.Value,
		Unit:        unit,
		Voltage:     in.Voltage,
		PowerFactor: in.PowerFactor,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, currentResponse{Amps: amps})
}

func (in selectRequest) toEngine() (cable.Request, error) {
	conductor, err := is7098.ParseConductor(in.Conductor)
	if err != nil {
		return cable.Request{}, &cable.InvalidParameterError{Param: "conductor material", Reason: err.Error()}
	}
	method, err := is7098.ParseInstallation(in.Installation)
	if err != nil {
		return cable.Request{}, &cable.InvalidParameterError{Param: "installation method", Reason: err.Error()}
	}
	return cable.Request{
		Current:        in.Current,
		Conductor:      conductor,
		Installation:   method,
		Length:         in.LengthM,
		DeratingFactor: in.DeratingFactor,
		MaxDropPercent: in.MaxDropPercent,
		Voltage:        in.Voltage,
	}, nil
}

func toResponse(res cable.Result) selectResponse {
	out := selectResponse{
		Found:          res.Found,
		MaxDropPercent: res.MaxDropPercent,
	}
	if res.Found {
		out.Size = res.Size
		out.DeratedCapacity = res.DeratedCapacity
		out.DropPercent = res.DropPercent
		out.DropPerMetre = res.DropPerMetre
	} else {
		out.Reason = res.Reason
		out.Remedies = res.Remedies()
	}
	return out
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var in selectRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}

	req, err := in.toEngine()
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := cable.Select(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(res))
}

type reportRequest struct {
	Load   loadRequest   `json:"load"`
	Select selectRequest `json:"select"`
}

// handleReport recomputes the sizing server-side and streams the PDF,
// so the document always matches the engine's answer.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var in reportRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}

	current := in.Select.Current
	powerFactor := in.Load.PowerFactor
	if current <= 0 {
		unit, err := cable.ParseLoadUnit(in.Load.Unit)
		if err != nil {
			writeError(w, err)
			return
		}
		current, err = cable.FullLoadCurrent(cable.Load{
			Value:       in.Load.Value,
			Unit:        unit,
			Voltage:     in.Select.Voltage,
			PowerFactor: in.Load.PowerFactor,
		})
		if err != nil {
			writeError(w, err)
			return
		}
	}
	if powerFactor == 0 {
		powerFactor = 1
	}

	in.Select.Current = current
	req, err := in.Select.toEngine()
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := cable.Select(req)
	if err != nil {
		writeError(w, err)
		return
	}

	summary := report.Summary{
		LoadValue:   in.Load.Value,
		LoadUnit:    cable.LoadUnit(in.Load.Unit),
		PowerFactor: powerFactor,
		Current:     current,
		Request:     req,
		Result:      res,
		GeneratedAt: time.Now(),
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cable_sizing_report.pdf\"")
	if err := report.WritePDF(summary, w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

type batchResponse struct {
	Count   int              `json:"count"`
	Results []selectResponse `json:"results"`
}

// handleBatch sizes one cable per spreadsheet row. Expected columns:
// conductor, installation_method, current, length_m, derating_factor,
// max_voltage_drop_percent, voltage. Rows that fail to parse or
// validate are skipped.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []selectResponse
	for i := 1; i < len(rows); i++ {
		in, err := parseBatchRow(rows[i])
		if err != nil {
			continue
		}
		req, err := in.toEngine()
		if err != nil {
			continue
		}
		res, err := cable.Select(req)
		if err != nil {
			continue
		}
		results = append(results, toResponse(res))
	}

	writeJSON(w, http.StatusOK, batchResponse{Count: len(results), Results: results})
}

func parseBatchRow(row []string) (selectRequest, error) {
	if len(row) < 7 {
		return selectRequest{}, errors.New("short row")
	}

	var in selectRequest
	in.Conductor = row[0]
	in.Installation = row[1]

	var err error
	if in.Current, err = strconv.ParseFloat(row[2], 64); err != nil {
		return selectRequest{}, err
	}
	if in.LengthM, err = strconv.ParseFloat(row[3], 64); err != nil {
		return selectRequest{}, err
	}
	if in.DeratingFactor, err = strconv.ParseFloat(row[4], 64); err != nil {
		return selectRequest{}, err
	}
	if in.MaxDropPercent, err = strconv.ParseFloat(row[5], 64); err != nil {
		return selectRequest{}, err
	}
	if in.Voltage, err = strconv.ParseFloat(row[6], 64); err != nil {
		return selectRequest{}, err
	}
	return in, nil
}
