// Command cadimport runs one file through the import pipeline and prints
// a summary, or the full result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/pipeline"
)

var (
	jsonOutput       bool
	verbose          bool
	wallHeight       float64
	disableJoinWalls bool
	includeFrozen    bool
)

var rootCmd = &cobra.Command{
	Use:   "cadimport <input.dxf|input.dwg>",
	Short: "Import a CAD floor plan into a host-agnostic BIM element set",
	Long: `cadimport parses a DXF or DWG file, classifies its layers against the
AIA layer-mapping table, converts its geometry into walls, floors, doors,
and other BIM elements, and prints the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full ImportResult as JSON instead of a summary")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a progress line per pipeline stage")
	rootCmd.Flags().Float64Var(&wallHeight, "wall-height", config.DefaultImportOptions().DefaultWallHeight, "unconnected wall height assigned to walls without an explicit one")
	rootCmd.Flags().BoolVar(&disableJoinWalls, "no-join-walls", false, "do not merge collinear wall segments")
	rootCmd.Flags().BoolVar(&includeFrozen, "include-frozen-layers", false, "import entities on frozen/off layers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts := config.DefaultImportOptions()
	opts.DefaultWallHeight = wallHeight
	opts.JoinWalls = !disableJoinWalls
	opts.ImportInvisibleLayers = includeFrozen

	settings := config.DefaultImportSettings()

	var onProgress pipeline.ProgressFunc
	if verbose {
		onProgress = func(percent int, message string) {
			fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, message)
		}
	}

	result := pipeline.Import(context.Background(), path, opts, settings, onProgress)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		printSummary(result)
	}

	if !result.Success {
		return fmt.Errorf("import failed: %v", result.Errors)
	}
	return nil
}

func printSummary(result *pipeline.ImportResult) {
	fmt.Printf("%s (%s)\n", result.SourceFile, result.FileType)
	fmt.Printf("  run:       %s\n", result.RunID)
	fmt.Printf("  success:   %t\n", result.Success)
	fmt.Printf("  entities:  %d\n", result.Statistics.TotalEntities)
	fmt.Printf("  elements:  %d\n", result.Statistics.ConvertedElements)
	fmt.Printf("  joined:    %d walls\n", result.Statistics.WallsJoined)

	byCategory := map[string]int{}
	for _, el := range result.ConvertedElements {
		byCategory[el.Category]++
	}
	for category, count := range byCategory {
		fmt.Printf("    %-10s %d\n", category, count)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
}
