package main

import (
	"fmt"
	"os"

	"github.com/hstrade/hsconv/pkg/hsconv/output"
	"github.com/hstrade/hsconv/pkg/hsconv/translate"
	"github.com/spf13/cobra"
)

var (
	bilingualProvider  string
	bilingualModel     string
	bilingualLimit     int
	bilingualCacheFile string
)

var bilingualCmd = &cobra.Command{
	Use:   "bilingual [input.csv] [output.csv]",
	Short: "Convert a harmonized-system CSV to bilingual EN/VI format",
	Long: `bilingual reads a harmonized-system CSV (section, hscode, description,
parent, level) and writes a bilingual CSV with Vietnamese translations and
per-language keywords. Translations come from the built-in dictionary; an
AI provider can fill the misses.`,
	Args: cobra.ExactArgs(2),
	RunE: runBilingual,
}

func init() {
	bilingualCmd.Flags().StringVar(&bilingualProvider, "provider", "dict", "Translation provider: dict, openai, cohere")
	bilingualCmd.Flags().StringVar(&bilingualModel, "model", "", "Provider model name (provider default when empty)")
	bilingualCmd.Flags().IntVar(&bilingualLimit, "limit", 0, "Process at most N rows (0 = all)")
	bilingualCmd.Flags().StringVar(&bilingualCacheFile, "cache", "translation-cache.json", "Persistent translation cache file")
	rootCmd.AddCommand(bilingualCmd)
}

func runBilingual(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	translator := translate.NewTranslator()
	translator.LoadCache(bilingualCacheFile)

	switch bilingualProvider {
	case "dict":
	case "openai":
		model, err := translate.NewOpenAIModel(os.Getenv("OPENAI_API_KEY"), bilingualModel)
		if err != nil {
			return err
		}
		translator.WithModel(model)
	case "cohere":
		model, err := translate.NewCohereModel(os.Getenv("COHERE_API_KEY"), bilingualModel)
		if err != nil {
			return err
		}
		translator.WithModel(model)
	default:
		return fmt.Errorf("invalid provider %q (must be dict, openai, or cohere)", bilingualProvider)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	conv := translate.NewBilingualConverter(translator)
	conv.Limit = bilingualLimit
	rows, err := conv.Convert(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := output.WriteBilingualCSV(outputPath, rows); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	translator.SaveCache(bilingualCacheFile)

	stats := conv.Stats
	fmt.Printf("Converted %d rows to %s\n", stats.Total, outputPath)
	if stats.Total > 0 {
		fmt.Printf("  Translated: %d (%d%%)\n", stats.Translated, stats.Translated*100/stats.Total)
		fmt.Printf("  Missing:    %d (%d%%)\n", stats.Missing, stats.Missing*100/stats.Total)
	}
	ts := translator.Stats
	fmt.Printf("  Cache hits: %d, dictionary hits: %d, API calls: %d, API errors: %d\n",
		ts.CacheHits, ts.DictHits, ts.APICalls, ts.APIErrors)
	return nil
}
