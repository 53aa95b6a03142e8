package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hstrade/hsconv/pkg/hsconv/translate"
	"github.com/spf13/cobra"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage [input.csv]",
	Short: "Report translation dictionary coverage for a CSV file",
	Long: `coverage checks every description in the CSV against the built-in
EN/VI dictionary and reports exact, partial, and missing matches, plus the
most common missing categories.`,
	Args: cobra.ExactArgs(1),
	RunE: runCoverage,
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	descriptions, err := readDescriptions(args[0])
	if err != nil {
		return err
	}

	report := translate.AnalyzeCoverage(descriptions)

	fmt.Printf("Dictionary entries: %d\n", len(translate.Dictionary))
	fmt.Printf("Descriptions analyzed: %d\n\n", report.Total())
	fmt.Printf("Coverage results:\n")
	fmt.Printf("  Exact matches:   %d (%d%%)\n", len(report.Exact), report.Percent(len(report.Exact)))
	fmt.Printf("  Partial matches: %d (%d%%)\n", len(report.Partial), report.Percent(len(report.Partial)))
	fmt.Printf("  No matches:      %d (%d%%)\n", len(report.Missing), report.Percent(len(report.Missing)))
	fmt.Printf("  Total coverage:  %d%%\n", report.Percent(len(report.Exact)+len(report.Partial)))

	if len(report.Missing) > 0 {
		fmt.Printf("\nMost common missing categories:\n")
		for _, cat := range report.MissingCategories(5) {
			fmt.Printf("  - %s (%d items)\n", cat.Name, cat.Count)
		}
		fmt.Printf("\nTo improve coverage, extend the dictionary, add manual entries to\n")
		fmt.Printf("the translation cache, or run bilingual with an AI provider.\n")
	}
	return nil
}

// readDescriptions pulls the non-empty description column out of a CSV
// file.
func readDescriptions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv has no header: %w", err)
	}
	descIdx := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "description") {
			descIdx = i
			break
		}
	}
	if descIdx < 0 {
		return nil, fmt.Errorf("csv has no description column")
	}

	var descriptions []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parse error: %w", err)
		}
		if descIdx < len(record) {
			if desc := strings.TrimSpace(record[descIdx]); desc != "" {
				descriptions = append(descriptions, desc)
			}
		}
	}
	return descriptions, nil
}
