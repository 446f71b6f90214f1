package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/is7098"
	"github.com/spf13/cobra"
)

var tablesConductor string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the IS 7098 rating and voltage-drop tables",
	Long: `Print the embedded IS 7098 Part 1 reference tables for a
conductor material: current-carrying capacity per installation method
and voltage-drop factor, for every standard cross-section.

Examples:
  gocable tables --conductor Cu
  gocable tables -c Al`,
	Run: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringVarP(&tablesConductor, "conductor", "c", "Cu", "Conductor material (Cu or Al)")
}

func runTables(cmd *cobra.Command, args []string) {
	conductor, err := is7098.ParseConductor(tablesConductor)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	ratings, err := is7098.Ratings(conductor)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	drops, err := is7098.DropFactors(conductor)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     IS 7098 PART 1 REFERENCE DATA - %s\n", conductorName(conductor))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CURRENT RATINGS (A):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Size (mm²)\tGround\tFree Air\tPipe/Duct\n")
	fmt.Fprintf(w, "  ──────────\t──────\t────────\t─────────\n")
	for _, size := range is7098.Sizes {
		r := ratings[size]
		fmt.Fprintf(w, "  %g\t%.0f\t%.0f\t%.0f\n", size, r.Ground, r.FreeAir, r.PipeDuct)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("VOLTAGE-DROP FACTORS (mV/A/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Size (mm²)\tFactor\n")
	fmt.Fprintf(w, "  ──────────\t──────\n")
	for _, size := range is7098.Sizes {
		fmt.Fprintf(w, "  %g\t%.2f\n", size, drops[size])
	}
	w.Flush()
	fmt.Println()
}
