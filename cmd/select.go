package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/chart"
	"github.com/alexiusacademia/gocable/internal/is7098"
	"github.com/alexiusacademia/gocable/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Load inputs (ignored when --current is given)
	selLoad float64
	selUnit string
	selPF   float64

	// Direct current input
	selCurrent float64

	// Cable and route inputs
	selConductor   string
	selMethod      string
	selLength      float64
	selTempFactor  float64
	selGroupFactor float64
	selMaxDrop     float64
	selVoltage     float64

	// Output options
	selShowDiagram bool
	selChartFile   string
	selReportFile  string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the smallest conforming cable cross-section",
	Long: `Select the smallest IS 7098 cable cross-section whose derated
current-carrying capacity covers the load and whose voltage drop over
the route stays within the allowed percentage.

The load can be given as kW/HP with a power factor (the full-load
current is computed first) or directly in amperes with --current.
Derating is the product of the temperature and grouping factors.

Examples:
  # 40 kW three-phase load, 50 m buried copper run
  gocable select --load 40 --unit kW --pf 0.9 --conductor Cu --method ground --length 50

  # Known 63 A load, aluminium in free air, with derating
  gocable select --current 63 --conductor Al --method free_air --length 80 \
    --temp-factor 0.8 --group-factor 0.9

  # Export the sizing report and a voltage-drop chart
  gocable select --current 63 --length 50 --report sizing.pdf --chart drop.png`,
	Run: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)

	// Load flags
	selectCmd.Flags().Float64VarP(&selLoad, "load", "l", 0, "Load value (with --unit)")
	selectCmd.Flags().StringVarP(&selUnit, "unit", "u", "kW", "Load unit (kW, HP, Amps)")
	selectCmd.Flags().Float64VarP(&selPF, "pf", "p", 0.9, "Power factor (0 to 1)")
	selectCmd.Flags().Float64VarP(&selCurrent, "current", "i", 0, "Full-load current in A (skips the load calculation)")

	// Cable flags
	selectCmd.Flags().StringVarP(&selConductor, "conductor", "c", "Cu", "Conductor material (Cu or Al)")
	selectCmd.Flags().StringVarP(&selMethod, "method", "m", "ground", "Installation method (ground, free_air, pipe_duct)")
	selectCmd.Flags().Float64VarP(&selLength, "length", "L", 0, "Cable route length in metres [required]")
	selectCmd.Flags().Float64Var(&selTempFactor, "temp-factor", 1.0, "Temperature derating factor (0 to 1)")
	selectCmd.Flags().Float64Var(&selGroupFactor, "group-factor", 1.0, "Grouping derating factor (0 to 1)")
	selectCmd.Flags().Float64Var(&selMaxDrop, "max-drop", 3.0, "Maximum voltage drop (%)")
	selectCmd.Flags().Float64VarP(&selVoltage, "voltage", "v", 415, "Supply voltage (230 or 415)")

	selectCmd.MarkFlagRequired("length")

	// Output options
	selectCmd.Flags().BoolVar(&selShowDiagram, "diagram", false, "Show ASCII voltage-drop profile")
	selectCmd.Flags().StringVar(&selChartFile, "chart", "", "Export voltage-drop chart to file (png, svg, pdf)")
	selectCmd.Flags().StringVarP(&selReportFile, "report", "o", "", "Export sizing report to file (pdf, xlsx)")
}

func runSelect(cmd *cobra.Command, args []string) {
	conductor, err := is7098.ParseConductor(selConductor)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	method, err := is7098.ParseInstallation(selMethod)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	unit, err := cable.ParseLoadUnit(selUnit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Resolve the full-load current
	flc := selCurrent
	if flc <= 0 {
		if selLoad <= 0 {
			fmt.Println("Error: provide either --current or --load.")
			fmt.Println("Use 'gocable select --help' for usage information.")
			return
		}
		flc, err = cable.FullLoadCurrent(cable.Load{
			Value:       selLoad,
			Unit:        unit,
			Voltage:     selVoltage,
			PowerFactor: selPF,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	derating := selTempFactor * selGroupFactor

	req := cable.Request{
		Current:        flc,
		Conductor:      conductor,
		Installation:   method,
		Length:         selLength,
		DeratingFactor: derating,
		MaxDropPercent: selMaxDrop,
		Voltage:        selVoltage,
	}

	result, err := cable.Select(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printSelection(req, result)

	if selShowDiagram {
		graph, err := chart.DrawDropProfile(req)
		if err != nil {
			fmt.Printf("Error drawing profile: %v\n", err)
		} else {
			fmt.Println(graph)
		}
	}

	if selChartFile != "" {
		if err := chart.ExportDropProfile(req, selChartFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", selChartFile)
		}
	}

	if selReportFile != "" {
		summary := report.Summary{
			LoadValue:   selLoad,
			LoadUnit:    unit,
			PowerFactor: selPF,
			Current:     flc,
			Request:     req,
			Result:      result,
			GeneratedAt: time.Now(),
		}
		if err := report.Export(summary, selReportFile); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", selReportFile)
		}
	}
}

func printSelection(req cable.Request, result cable.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CABLE SELECTION - IS 7098 PART 1 (XLPE)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Full-Load Current:\t%.2f A\n", req.Current)
	fmt.Fprintf(w, "  Conductor Material:\t%s\n", conductorName(req.Conductor))
	fmt.Fprintf(w, "  Installation Method:\t%s\n", methodName(req.Installation))
	fmt.Fprintf(w, "  Cable Length:\t%.0f m\n", req.Length)
	fmt.Fprintf(w, "  Supply Voltage:\t%.0f V\n", req.Voltage)
	fmt.Fprintf(w, "  Max Voltage Drop:\t%.1f %%\n", req.MaxDropPercent)
	w.Flush()
	fmt.Println()

	// Derating
	fmt.Println("DERATING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Temperature Factor:\t%.2f\n", selTempFactor)
	fmt.Fprintf(w, "  Grouping Factor:\t%.2f\n", selGroupFactor)
	fmt.Fprintf(w, "  Combined Factor:\t%.2f\n", req.DeratingFactor)
	w.Flush()
	fmt.Println()

	// Result
	fmt.Println("SELECTION RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	if result.Found {
		fmt.Printf("  ╔═════════════════════════════════════════╗\n")
		fmt.Printf("  ║  SELECTED SIZE = %g mm²              \n", result.Size)
		fmt.Printf("  ╚═════════════════════════════════════════╝\n")
		fmt.Println()

		margin := result.DeratedCapacity - req.Current
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Derated Capacity:\t%.2f A\n", result.DeratedCapacity)
		fmt.Fprintf(w, "  Load Current:\t%.2f A\n", req.Current)
		fmt.Fprintf(w, "  Safety Margin:\t%.2f A (%.1f%%)\n", margin, margin/req.Current*100)
		fmt.Fprintf(w, "  Voltage Drop:\t%.2f %%\n", result.DropPercent)
		fmt.Fprintf(w, "  Voltage Drop (mV/m):\t%.3f\n", result.DropPerMetre)
		w.Flush()
		fmt.Println()
		fmt.Printf("  Voltage drop %.2f%% ≤ limit %.1f%% ✓\n", result.DropPercent, result.MaxDropPercent)
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  NO SUITABLE CABLE FOUND                ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  %s\n", result.Reason)
		fmt.Println()
		fmt.Println("  Try one of the following:")
		for _, remedy := range result.Remedies() {
			fmt.Printf("    • %s\n", remedy)
		}
	}
	fmt.Println()
}

func conductorName(c is7098.Conductor) string {
	switch c {
	case is7098.Copper:
		return "Copper (Cu)"
	case is7098.Aluminium:
		return "Aluminium (Al)"
	}
	return string(c)
}

func methodName(m is7098.Installation) string {
	switch m {
	case is7098.Ground:
		return "Ground (buried)"
	case is7098.FreeAir:
		return "Free Air"
	case is7098.PipeDuct:
		return "Pipe/Duct"
	}
	return string(m)
}
