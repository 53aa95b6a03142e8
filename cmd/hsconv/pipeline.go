package main

import (
	"fmt"

	"github.com/hstrade/hsconv/pkg/hsconv"
	"github.com/hstrade/hsconv/pkg/hsconv/csvconv"
	"github.com/hstrade/hsconv/pkg/hsconv/embed"
	"github.com/spf13/cobra"
)

var (
	pipelineFormat   string
	pipelineProvider string
	pipelineModel    string
	pipelineOutput   string
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline [input.csv]",
	Short: "Run the CSV → JSON → embeddings pipeline end to end",
	Args:  cobra.ExactArgs(1),
	RunE:  runPipeline,
}

func init() {
	pipelineCmd.Flags().StringVar(&pipelineFormat, "format", "basic", "CSV format: basic, extended, bilingual")
	pipelineCmd.Flags().StringVar(&pipelineProvider, "provider", "", "Embedding provider: openai, cohere, huggingface, sample (required)")
	pipelineCmd.Flags().StringVar(&pipelineModel, "model", "", "Embedding model (provider default when empty)")
	pipelineCmd.Flags().StringVarP(&pipelineOutput, "output", "o", "", "Output embeddings JSON path (derived from provider when empty)")
	pipelineCmd.MarkFlagRequired("provider")
	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	format, err := csvconv.ParseFormat(pipelineFormat)
	if err != nil {
		return err
	}
	embedder, err := embed.New(pipelineProvider, pipelineModel, providerKey(pipelineProvider))
	if err != nil {
		return err
	}

	p := &hsconv.Pipeline{
		CSVFile:    args[0],
		Format:     format,
		Embedder:   embedder,
		OutputJSON: pipelineOutput,
	}
	report, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Pipeline complete in %.1fs\n", report.Elapsed.Seconds())
	fmt.Printf("  HS codes:  %d (%d rows skipped)\n", report.TotalCodes, report.SkippedRows)
	fmt.Printf("  Dimension: %d\n", report.EmbeddingDim)
	fmt.Printf("  Output:    %s\n", report.OutputJSON)
	return nil
}
