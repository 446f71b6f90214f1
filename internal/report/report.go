// Package report produces the downloadable summary document of a
// sizing run. The document carries every field needed to trace the
// engineering decision: the input load and voltage, the computed
// current, conductor material and installation method, the selected
// size (or the failure message) and the voltage-drop percentage, all
// labeled with the governing standard.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// StandardLabel identifies the standard the embedded tables come from.
const StandardLabel = "IS 7098 Part 1 (XLPE)"

// Summary gathers the inputs and outcome of one sizing run.
type Summary struct {
	// Load inputs. LoadValue is zero when the caller supplied the
	// current directly.
	LoadValue   float64
	LoadUnit    cable.LoadUnit
	PowerFactor float64

	// Computed full-load current (A).
	Current float64

	// Selection inputs and outcome.
	Request cable.Request
	Result  cable.Result

	GeneratedAt time.Time
}

// LoadLabel formats the load input for display.
func (s Summary) LoadLabel() string {
	if s.LoadValue <= 0 {
		return fmt.Sprintf("%.2f Amps", s.Current)
	}
	return fmt.Sprintf("%g %s", s.LoadValue, string(s.LoadUnit))
}

// SafetyMargin is the headroom between derated capacity and load
// current, in amps. Only meaningful for a found result.
func (s Summary) SafetyMargin() float64 {
	return s.Result.DeratedCapacity - s.Current
}

// Export writes the summary to a file, choosing the format from the
// extension (.pdf or .xlsx).
func Export(s Summary, filename string) error {
	var write func(Summary, io.Writer) error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		write = WritePDF
	case ".xlsx":
		write = WriteXLSX
	default:
		return fmt.Errorf("unsupported report format %q (use .pdf or .xlsx)", filepath.Ext(filename))
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return write(s, f)
}

// rows flattens the summary into label/value pairs shared by both
// output formats.
func (s Summary) rows() [][2]string {
	req := s.Request
	rows := [][2]string{
		{"Load", s.LoadLabel()},
		{"Supply Voltage", fmt.Sprintf("%.0f V", req.Voltage)},
		{"Power Factor", fmt.Sprintf("%.2f", s.PowerFactor)},
		{"Calculated Current", fmt.Sprintf("%.2f A", s.Current)},
		{"Conductor Material", string(req.Conductor)},
		{"Installation Method", string(req.Installation)},
		{"Cable Length", fmt.Sprintf("%.0f m", req.Length)},
		{"Derating Factor", fmt.Sprintf("%.2f", req.DeratingFactor)},
		{"Max Voltage Drop", fmt.Sprintf("%.1f %%", req.MaxDropPercent)},
	}

	if s.Result.Found {
		rows = append(rows,
			[2]string{"Selected Size", fmt.Sprintf("%g sq.mm", s.Result.Size)},
			[2]string{"Derated Capacity", fmt.Sprintf("%.2f A", s.Result.DeratedCapacity)},
			[2]string{"Safety Margin", fmt.Sprintf("%.2f A", s.SafetyMargin())},
			[2]string{"Voltage Drop", fmt.Sprintf("%.2f %%", s.Result.DropPercent)},
			[2]string{"Voltage Drop (mV/m)", fmt.Sprintf("%.3f", s.Result.DropPerMetre)},
		)
	} else {
		rows = append(rows, [2]string{"Result", s.Result.Reason})
	}
	return rows
}

// generatedAt defaults to now when the caller left it unset.
func (s Summary) generatedAt() time.Time {
	if s.GeneratedAt.IsZero() {
		return time.Now()
	}
	return s.GeneratedAt
}
