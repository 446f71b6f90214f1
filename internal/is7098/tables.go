// Package is7098 carries the reference data of IS 7098 (Part 1) for
// XLPE insulated, armoured power cables: current-carrying capacities
// per installation method and voltage-drop factors, for copper and
// aluminium conductors. All values are at standard reference
// conditions, before derating.
package is7098

import (
	"fmt"
	"strings"
)

// Supply voltages recognized by IS 7098 based sizing. The voltage
// doubles as the phase selector: 230 V is single-phase, 415 V is
// three-phase.
const (
	SinglePhaseVoltage = 230.0
	ThreePhaseVoltage  = 415.0
)

// HPToKW converts mechanical horsepower to kilowatts.
const HPToKW = 0.746

// Conductor identifies the cable conductor material.
type Conductor string

const (
	Copper    Conductor = "Cu"
	Aluminium Conductor = "Al"
)

// Installation identifies the physical routing of the cable, which
// governs heat dissipation and therefore the applicable rating column.
type Installation string

const (
	Ground   Installation = "ground"
	FreeAir  Installation = "free_air"
	PipeDuct Installation = "pipe_duct"
)

// ParseConductor maps common spellings ("cu", "copper", "Al", ...) to a
// Conductor tag.
func ParseConductor(s string) (Conductor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cu", "copper":
		return Copper, nil
	case "al", "aluminium", "aluminum":
		return Aluminium, nil
	}
	return "", fmt.Errorf("unknown conductor material %q (use Cu or Al)", s)
}

// ParseInstallation maps common spellings to an Installation tag.
func ParseInstallation(s string) (Installation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground", "buried":
		return Ground, nil
	case "free_air", "free-air", "air":
		return FreeAir, nil
	case "pipe_duct", "pipe-duct", "pipe", "duct":
		return PipeDuct, nil
	}
	return "", fmt.Errorf("unknown installation method %q (use ground, free_air or pipe_duct)", s)
}

// Rating holds the current-carrying capacity in amperes of one
// cross-section for each installation method.
type Rating struct {
	Ground   float64
	FreeAir  float64
	PipeDuct float64
}

// For returns the capacity column matching the installation method.
func (r Rating) For(m Installation) float64 {
	switch m {
	case Ground:
		return r.Ground
	case FreeAir:
		return r.FreeAir
	case PipeDuct:
		return r.PipeDuct
	}
	return 0
}

// Sizes is the catalog of standard conductor cross-sections in mm²,
// in ascending order. The ordering is load-bearing: the selection scan
// walks it front to back and the first qualifying entry wins.
var Sizes = []float64{
	1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300, 400,
}

// Current ratings (A) for copper conductors, IS 7098 Part 1.
var CopperRatings = map[float64]Rating{
	1.5: {Ground: 17, FreeAir: 24, PipeDuct: 15},
	2.5: {Ground: 27, FreeAir: 38, PipeDuct: 24},
	4:   {Ground: 36, FreeAir: 51, PipeDuct: 32},
	6:   {Ground: 46, FreeAir: 65, PipeDuct: 41},
	10:  {Ground: 63, FreeAir: 89, PipeDuct: 56},
	16:  {Ground: 85, FreeAir: 119, PipeDuct: 76},
	25:  {Ground: 111, FreeAir: 155, PipeDuct: 100},
	35:  {Ground: 135, FreeAir: 188, PipeDuct: 122},
	50:  {Ground: 163, FreeAir: 227, PipeDuct: 148},
	70:  {Ground: 203, FreeAir: 284, PipeDuct: 184},
	95:  {Ground: 244, FreeAir: 340, PipeDuct: 221},
	120: {Ground: 280, FreeAir: 390, PipeDuct: 254},
	150: {Ground: 315, FreeAir: 438, PipeDuct: 286},
	185: {Ground: 353, FreeAir: 492, PipeDuct: 320},
	240: {Ground: 406, FreeAir: 565, PipeDuct: 368},
	300: {Ground: 456, FreeAir: 635, PipeDuct: 414},
	400: {Ground: 545, FreeAir: 760, PipeDuct: 496},
}

// Current ratings (A) for aluminium conductors, IS 7098 Part 1.
var AluminiumRatings = map[float64]Rating{
	1.5: {Ground: 13, FreeAir: 18, PipeDuct: 11},
	2.5: {Ground: 20, FreeAir: 28, PipeDuct: 18},
	4:   {Ground: 27, FreeAir: 38, PipeDuct: 24},
	6:   {Ground: 34, FreeAir: 48, PipeDuct: 30},
	10:  {Ground: 46, FreeAir: 65, PipeDuct: 41},
	16:  {Ground: 63, FreeAir: 88, PipeDuct: 57},
	25:  {Ground: 82, FreeAir: 114, PipeDuct: 73},
	35:  {Ground: 100, FreeAir: 139, PipeDuct: 90},
	50:  {Ground: 121, FreeAir: 169, PipeDuct: 109},
	70:  {Ground: 151, FreeAir: 211, PipeDuct: 136},
	95:  {Ground: 182, FreeAir: 254, PipeDuct: 163},
	120: {Ground: 209, FreeAir: 292, PipeDuct: 188},
	150: {Ground: 234, FreeAir: 327, PipeDuct: 210},
	185: {Ground: 263, FreeAir: 368, PipeDuct: 236},
	240: {Ground: 303, FreeAir: 424, PipeDuct: 272},
	300: {Ground: 340, FreeAir: 475, PipeDuct: 305},
	400: {Ground: 408, FreeAir: 570, PipeDuct: 366},
}

// Voltage-drop factors (mV/A/m) for copper conductors.
var CopperDropFactors = map[float64]float64{
	1.5: 29.50,
	2.5: 17.80,
	4:   11.00,
	6:   7.41,
	10:  4.40,
	16:  2.75,
	25:  1.75,
	35:  1.25,
	50:  0.89,
	70:  0.63,
	95:  0.47,
	120: 0.37,
	150: 0.30,
	185: 0.24,
	240: 0.18,
	300: 0.15,
	400: 0.11,
}

// Voltage-drop factors (mV/A/m) for aluminium conductors.
var AluminiumDropFactors = map[float64]float64{
	1.5: 47.20,
	2.5: 28.50,
	4:   17.60,
	6:   11.80,
	10:  7.04,
	16:  4.40,
	25:  2.80,
	35:  2.00,
	50:  1.42,
	70:  1.00,
	95:  0.75,
	120: 0.59,
	150: 0.47,
	185: 0.38,
	240: 0.29,
	300: 0.24,
	400: 0.18,
}

// Ratings returns the capacity table for a conductor material.
func Ratings(c Conductor) (map[float64]Rating, error) {
	switch c {
	case Copper:
		return CopperRatings, nil
	case Aluminium:
		return AluminiumRatings, nil
	}
	return nil, fmt.Errorf("unknown conductor material %q", string(c))
}

// DropFactors returns the voltage-drop factor table for a conductor
// material.
func DropFactors(c Conductor) (map[float64]float64, error) {
	switch c {
	case Copper:
		return CopperDropFactors, nil
	case Aluminium:
		return AluminiumDropFactors, nil
	}
	return nil, fmt.Errorf("unknown conductor material %q", string(c))
}

// VerifyTables checks that, for each material, the capacity table and
// the voltage-drop table are keyed by exactly the size catalog. Run at
// startup (or from tests) to catch data-entry drift between the tables.
func VerifyTables() error {
	for _, c := range []Conductor{Copper, Aluminium} {
		ratings, _ := Ratings(c)
		drops, _ := DropFactors(c)
		if len(ratings) != len(Sizes) || len(drops) != len(Sizes) {
			return fmt.Errorf("%s tables out of step with size catalog: %d ratings, %d drop factors, %d sizes",
				string(c), len(ratings), len(drops), len(Sizes))
		}
		for _, size := range Sizes {
			if _, ok := ratings[size]; !ok {
				return fmt.Errorf("%s capacity table missing %.1f mm²", string(c), size)
			}
			if _, ok := drops[size]; !ok {
				return fmt.Errorf("%s voltage-drop table missing %.1f mm²", string(c), size)
			}
		}
	}
	return nil
}
