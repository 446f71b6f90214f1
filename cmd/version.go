package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocable v%s\n", version.Version)
		fmt.Println("Electrical Cable Sizing Tool")
		fmt.Println("Based on IS 7098 Part 1 (XLPE Armoured Cables)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
