package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hstrade/hsconv/pkg/hsconv/embed"
	"github.com/hstrade/hsconv/pkg/hsconv/models"
	"github.com/hstrade/hsconv/pkg/hsconv/output"
	"github.com/spf13/cobra"
)

var (
	embedProvider string
	embedModel    string
	embedOutput   string
)

var embedCmd = &cobra.Command{
	Use:   "embed [input.json]",
	Short: "Generate embeddings for an HS code JSON file",
	Long: `embed reads an HS code JSON artifact (hs_codes list) and attaches
vector embeddings from the chosen provider. API keys come from the
OPENAI_API_KEY, COHERE_API_KEY, and HF_TOKEN environment variables.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmbed,
}

func init() {
	embedCmd.Flags().StringVar(&embedProvider, "provider", "", "Embedding provider: openai, cohere, huggingface, sample (required)")
	embedCmd.Flags().StringVar(&embedModel, "model", "", "Embedding model (provider default when empty)")
	embedCmd.Flags().StringVarP(&embedOutput, "output", "o", "", "Output JSON file path (derived from provider/model when empty)")
	embedCmd.MarkFlagRequired("provider")
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	codes, err := loadHSCodes(inputPath)
	if err != nil {
		return err
	}

	embedder, err := embed.New(embedProvider, embedModel, providerKey(embedProvider))
	if err != nil {
		return err
	}
	gen := embed.NewGenerator(embedder)
	set, err := gen.Generate(cmd.Context(), codes)
	if err != nil {
		return fmt.Errorf("embedding generation failed: %w", err)
	}

	outPath := embedOutput
	if outPath == "" {
		modelKey := strings.NewReplacer("/", "-", ".", "-").Replace(set.Metadata.Model)
		outPath = fmt.Sprintf("public/data/%s-embeddings/%s.json", set.Metadata.Provider, modelKey)
	}
	if err := output.WriteJSON(outPath, set, true); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Saved %d embeddings to %s\n", set.Metadata.TotalCodes, outPath)
	fmt.Printf("  Provider: %s, model: %s, dimension: %d\n",
		set.Metadata.Provider, set.Metadata.Model, set.Metadata.EmbeddingDim)
	return nil
}

// loadHSCodes reads the hs_codes list out of a conversion artifact.
func loadHSCodes(path string) ([]models.HSCode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read json: %w", err)
	}
	var set models.ConvertedSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid json file %s: %w", path, err)
	}
	if len(set.HSCodes) == 0 {
		return nil, fmt.Errorf("no hs_codes found in %s", path)
	}
	return set.HSCodes, nil
}

// providerKey returns the API key env var value for a provider.
func providerKey(provider string) string {
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "cohere":
		return os.Getenv("COHERE_API_KEY")
	case "huggingface":
		return os.Getenv("HF_TOKEN")
	}
	return ""
}
