// Package cable implements the IS 7098 cable sizing engine: full-load
// current computation and the smallest-conforming-size selection over
// the standard's rating tables.
package cable

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/is7098"
)

// LoadUnit is the unit the load value is expressed in.
type LoadUnit string

const (
	KW   LoadUnit = "kW"
	HP   LoadUnit = "HP"
	Amps LoadUnit = "Amps"
)

// ParseLoadUnit maps common spellings to a LoadUnit tag.
func ParseLoadUnit(s string) (LoadUnit, error) {
	switch s {
	case "kW", "kw", "KW":
		return KW, nil
	case "HP", "hp", "Hp":
		return HP, nil
	case "Amps", "amps", "A", "a":
		return Amps, nil
	}
	return "", invalidParam("unit", "%q is not one of kW, HP, Amps", s)
}

// Load describes an electrical load for full-load-current computation.
type Load struct {
	Value       float64  // in Unit
	Unit        LoadUnit // kW, HP or Amps
	Voltage     float64  // 230 (single-phase) or 415 (three-phase)
	PowerFactor float64  // (0, 1]
}

// FullLoadCurrent computes the steady-state current in amperes drawn by
// the load. Loads given in amps pass through unchanged; power loads are
// converted with the single-phase or three-phase formula selected by
// the supply voltage. The result is rounded to 2 decimal places.
func FullLoadCurrent(l Load) (float64, error) {
	switch l.Unit {
	case KW, HP, Amps:
	default:
		return 0, invalidParam("unit", "%q is not one of kW, HP, Amps", string(l.Unit))
	}
	if l.Voltage != is7098.SinglePhaseVoltage && l.Voltage != is7098.ThreePhaseVoltage {
		return 0, invalidParam("voltage", "%.0f V is not a supported supply voltage (230 or 415)", l.Voltage)
	}
	if l.PowerFactor <= 0 || l.PowerFactor > 1 {
		return 0, invalidParam("power factor", "%.2f is outside (0, 1]", l.PowerFactor)
	}
	if l.Value <= 0 {
		return 0, invalidParam("load value", "%.2f must be positive", l.Value)
	}

	if l.Unit == Amps {
		return l.Value, nil
	}

	kw := l.Value
	if l.Unit == HP {
		kw = l.Value * is7098.HPToKW
	}

	var current float64
	if l.Voltage == is7098.SinglePhaseVoltage {
		// Single-phase: I = P / (V × PF)
		current = (kw * 1000) / (l.Voltage * l.PowerFactor)
	} else {
		// Three-phase: I = P / (√3 × V × PF)
		current = (kw * 1000) / (math.Sqrt(3) * l.Voltage * l.PowerFactor)
	}

	return round2(current), nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
