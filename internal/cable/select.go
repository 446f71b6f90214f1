package cable

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/is7098"
)

// Request carries everything the selection scan needs.
type Request struct {
	Current        float64             // full-load current (A)
	Conductor      is7098.Conductor    // Cu or Al
	Installation   is7098.Installation // ground, free_air or pipe_duct
	Length         float64             // route length (m)
	DeratingFactor float64             // combined derating, (0, 1]
	MaxDropPercent float64             // allowed voltage drop (%)
	Voltage        float64             // 230 or 415
}

// Result is the outcome of a selection scan. Found distinguishes a
// successful selection from catalog exhaustion; the latter is a normal
// business outcome, not an error, and still carries MaxDropPercent so
// the caller can present remedies against the attempted limit.
type Result struct {
	Found bool

	// Set when Found.
	Size            float64 // selected cross-section (mm²)
	DeratedCapacity float64 // capacity after derating (A)
	DropPercent     float64 // voltage drop (% of supply)
	DropPerMetre    float64 // voltage drop (mV/m)

	// Always set.
	MaxDropPercent float64

	// Set when not Found.
	Reason string
}

// Select finds the smallest cataloged cross-section whose derated
// capacity covers the load current and whose voltage drop over the
// route stays within the allowed percentage.
//
// The scan walks sizes in ascending order and returns on the first size
// passing both checks. A size that passes capacity but fails voltage
// drop just advances the scan; with the IS 7098 tables (capacity rising
// and drop factor falling with size) that still yields the smallest
// conforming size.
func Select(req Request) (Result, error) {
	ratings, err := is7098.Ratings(req.Conductor)
	if err != nil {
		return Result{}, invalidParam("conductor material", "%q is not one of Cu, Al", string(req.Conductor))
	}
	drops, _ := is7098.DropFactors(req.Conductor)

	switch req.Installation {
	case is7098.Ground, is7098.FreeAir, is7098.PipeDuct:
	default:
		return Result{}, invalidParam("installation method",
			"%q is not one of ground, free_air, pipe_duct", string(req.Installation))
	}
	if req.Current <= 0 {
		return Result{}, invalidParam("current", "%.2f A must be positive", req.Current)
	}
	if req.Length <= 0 {
		return Result{}, invalidParam("length", "%.2f m must be positive", req.Length)
	}
	if req.DeratingFactor <= 0 || req.DeratingFactor > 1 {
		return Result{}, invalidParam("derating factor", "%.2f is outside (0, 1]", req.DeratingFactor)
	}
	if req.MaxDropPercent <= 0 {
		return Result{}, invalidParam("max voltage drop", "%.2f%% must be positive", req.MaxDropPercent)
	}
	if req.Voltage != is7098.SinglePhaseVoltage && req.Voltage != is7098.ThreePhaseVoltage {
		return Result{}, invalidParam("voltage", "%.0f V is not a supported supply voltage (230 or 415)", req.Voltage)
	}

	// Rounding below is cosmetic, applied only to the returned record;
	// the scan itself compares unrounded values.
	for _, size := range is7098.Sizes {
		deratedCapacity := ratings[size].For(req.Installation) * req.DeratingFactor
		if deratedCapacity < req.Current {
			continue
		}

		dropMV := drops[size] * req.Current * req.Length
		dropPercent := dropMV / (req.Voltage * 1000) * 100
		if dropPercent > req.MaxDropPercent {
			continue
		}

		return Result{
			Found:           true,
			Size:            size,
			DeratedCapacity: round2(deratedCapacity),
			DropPercent:     round2(dropPercent),
			DropPerMetre:    round3(dropMV / req.Length),
			MaxDropPercent:  req.MaxDropPercent,
		}, nil
	}

	return Result{
		Found:          false,
		MaxDropPercent: req.MaxDropPercent,
		Reason: fmt.Sprintf("no suitable cable found: no cataloged size meets the load within the %.1f%% voltage-drop limit",
			req.MaxDropPercent),
	}, nil
}

// Remedies lists the actionable changes that can turn a not-found
// outcome into a selection.
func (r Result) Remedies() []string {
	return []string{
		"Reduce the load",
		"Reduce the cable length",
		"Increase the maximum voltage drop limit",
		"Reduce the derating factors",
	}
}
