package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocable",
	Short: "Electrical Cable Sizing Tool",
	Long: `gocable - Go Cable Sizer

A CLI tool for sizing electrical power cables based on
IS 7098 Part 1 (XLPE insulated, armoured cables).

This tool helps electrical engineers perform:
  - Full-load current calculation (kW, HP or Amps loads)
  - Cable cross-section selection with derating
  - Voltage-drop verification over the cable route
  - Report generation (PDF, Excel)

All ratings and voltage-drop factors follow IS 7098 Part 1.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocable v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Cable Sizer                                          ║")
		fmt.Println("  ║   IS 7098 Part 1 (XLPE Armoured Cables)                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing electrical power cables based on")
		fmt.Println("  IS 7098 Part 1 current ratings and voltage-drop factors.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Full-load current from kW, HP or Amps loads")
		fmt.Println("    • Smallest conforming cross-section selection")
		fmt.Println("    • Temperature and grouping derating")
		fmt.Println("    • Voltage-drop check and profile charts")
		fmt.Println("    • PDF / Excel report export and an HTTP JSON API")
		fmt.Println()
		fmt.Println("  Use 'gocable --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
