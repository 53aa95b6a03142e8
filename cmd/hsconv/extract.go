package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hstrade/hsconv/pkg/hsconv"
	"github.com/hstrade/hsconv/pkg/hsconv/output"
	"github.com/spf13/cobra"
)

var (
	extractSheet    string
	extractOutDir   string
	extractStartRow int
)

var extractCmd = &cobra.Command{
	Use:   "extract [input.xlsx]",
	Short: "Extract hierarchical HS codes from a tariff workbook",
	Long: `extract reads a tariff Excel workbook, reconstructs the full ancestor
description for every HS code row, and writes hs-codes.json plus
hs-code-complete.json (list with metadata header) to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractSheet, "sheet", "", "Worksheet name (default: first sheet)")
	extractCmd.Flags().StringVarP(&extractOutDir, "out-dir", "o", "public/data", "Output directory")
	extractCmd.Flags().IntVar(&extractStartRow, "start-row", 0, "1-based data start row (default: 20)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := hsconv.DefaultOptions()
	opts.Sheet = extractSheet
	opts.StartRow = extractStartRow

	set, err := hsconv.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	codesPath := filepath.Join(extractOutDir, "hs-codes.json")
	if err := output.WriteJSON(codesPath, set.Codes, true); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	completePath := filepath.Join(extractOutDir, "hs-code-complete.json")
	if err := output.WriteJSON(completePath, set, true); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Extracted %d HS codes from sheet %q\n", set.Metadata.TotalCodes, set.Metadata.Sheet)
	fmt.Printf("Output: %s\n", codesPath)
	fmt.Printf("Output: %s\n", completePath)
	return nil
}
