package main

import (
	"fmt"
	"os"

	"github.com/hstrade/hsconv/pkg/hsconv/csvconv"
	"github.com/hstrade/hsconv/pkg/hsconv/models"
	"github.com/hstrade/hsconv/pkg/hsconv/output"
	"github.com/spf13/cobra"
)

var (
	convertFormat string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.csv]",
	Short: "Convert an HS code CSV file to JSON",
	Long: `convert reads an HS code CSV file in basic, extended, or bilingual
format and writes the records as a JSON artifact with a metadata header.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFormat, "format", "basic", "CSV format: basic, extended, bilingual")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "public/data/hs-codes-converted.json", "Output JSON file path")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	format, err := csvconv.ParseFormat(convertFormat)
	if err != nil {
		return err
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	conv := csvconv.NewConverter(format)
	codes, err := conv.Convert(f)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if len(codes) == 0 {
		return fmt.Errorf("no valid HS codes found in %s", csvPath)
	}

	set := models.ConvertedSet{
		HSCodes: codes,
		Metadata: models.ConvertMetadata{
			TotalCodes:  len(codes),
			Format:      string(format),
			CreatedFrom: csvPath,
		},
	}
	if err := output.WriteJSON(convertOutput, set, true); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Converted %d HS codes (%d rows skipped)\n", len(codes), conv.Skipped)
	fmt.Printf("Output: %s\n", convertOutput)
	return nil
}
