// Package chart renders the voltage-drop profile of a selection
// request across the whole size catalog, either as a terminal graph or
// as an exported image. The profile shows why small sizes were rejected
// and how much headroom the selected size has against the limit.
package chart

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/is7098"
)

// DropProfile computes the voltage drop, as a percentage of supply,
// for every cataloged size at the request's current and route length.
// The slice is parallel to is7098.Sizes.
func DropProfile(req cable.Request) ([]float64, error) {
	drops, err := is7098.DropFactors(req.Conductor)
	if err != nil {
		return nil, err
	}

	profile := make([]float64, len(is7098.Sizes))
	for i, size := range is7098.Sizes {
		dropMV := drops[size] * req.Current * req.Length
		profile[i] = dropMV / (req.Voltage * 1000) * 100
	}
	return profile, nil
}

// DrawDropProfile renders the profile as an ASCII graph with the
// allowed limit drawn as a flat second series.
func DrawDropProfile(req cable.Request) (string, error) {
	profile, err := DropProfile(req)
	if err != nil {
		return "", err
	}

	limit := make([]float64, len(profile))
	for i := range limit {
		limit[i] = req.MaxDropPercent
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("VOLTAGE DROP PROFILE:\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	sb.WriteString(asciigraph.PlotMany(
		[][]float64{profile, limit},
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("Voltage drop %% by cross-section (%.2f A over %.0f m, limit %.1f%%)",
			req.Current, req.Length, req.MaxDropPercent)),
	))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Sizes left to right: %s mm²\n", sizeAxis()))
	return sb.String(), nil
}

func sizeAxis() string {
	labels := make([]string, len(is7098.Sizes))
	for i, size := range is7098.Sizes {
		labels[i] = fmt.Sprintf("%g", size)
	}
	return strings.Join(labels, ", ")
}
