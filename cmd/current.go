package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/spf13/cobra"
)

var (
	currentLoad    float64
	currentUnit    string
	currentVoltage float64
	currentPF      float64
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Calculate the full-load current of an electrical load",
	Long: `Calculate the full-load current (FLC) in amperes for a load
given in kW, HP or Amps.

The supply voltage selects the formula:
  230 V - single-phase: I = P / (V × PF)
  415 V - three-phase:  I = P / (√3 × V × PF)

HP loads are converted at 1 HP = 0.746 kW. Loads already in Amps
pass through unchanged.

Examples:
  # 10 kW three-phase motor at 0.9 power factor
  gocable current --load 10 --unit kW --voltage 415 --pf 0.9

  # 5 HP single-phase load
  gocable current -l 5 -u HP -v 230`,
	Run: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)

	currentCmd.Flags().Float64VarP(&currentLoad, "load", "l", 0, "Load value [required]")
	currentCmd.Flags().StringVarP(&currentUnit, "unit", "u", "kW", "Load unit (kW, HP, Amps)")
	currentCmd.Flags().Float64VarP(&currentVoltage, "voltage", "v", 415, "Supply voltage (230 or 415)")
	currentCmd.Flags().Float64VarP(&currentPF, "pf", "p", 0.9, "Power factor (0 to 1)")

	currentCmd.MarkFlagRequired("load")
}

func runCurrent(cmd *cobra.Command, args []string) {
	unit, err := cable.ParseLoadUnit(currentUnit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	flc, err := cable.FullLoadCurrent(cable.Load{
		Value:       currentLoad,
		Unit:        unit,
		Voltage:     currentVoltage,
		PowerFactor: currentPF,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FULL-LOAD CURRENT - IS 7098 CABLE SIZER")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	phase := "Three-phase"
	if currentVoltage == 230 {
		phase = "Single-phase"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load:\t%g %s\n", currentLoad, unit)
	fmt.Fprintf(w, "  Supply Voltage:\t%.0f V (%s)\n", currentVoltage, phase)
	fmt.Fprintf(w, "  Power Factor:\t%.2f\n", currentPF)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  FULL-LOAD CURRENT = %.2f A          \n", flc)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
