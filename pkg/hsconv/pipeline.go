package hsconv

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hstrade/hsconv/pkg/hsconv/csvconv"
	"github.com/hstrade/hsconv/pkg/hsconv/embed"
	"github.com/hstrade/hsconv/pkg/hsconv/models"
	"github.com/hstrade/hsconv/pkg/hsconv/output"
)

// Pipeline runs the CSV → JSON → embeddings workflow end to end in one
// process.
type Pipeline struct {
	CSVFile string
	Format  csvconv.Format
	// Embedder produces the vectors. The caller picks the provider.
	Embedder embed.Embedder
	// OutputJSON is the embeddings artifact path. Empty means a path
	// derived from the provider name.
	OutputJSON string
	// InterimJSON keeps the intermediate conversion artifact when set;
	// otherwise a temp path is used and removed afterwards.
	InterimJSON string
}

// Report summarizes a completed pipeline run.
type Report struct {
	TotalCodes   int
	SkippedRows  int
	EmbeddingDim int
	OutputJSON   string
	Elapsed      time.Duration
}

// Run executes the pipeline and returns a summary report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	outPath := p.OutputJSON
	if outPath == "" {
		outPath = fmt.Sprintf("public/data/hs-codes-%s-embeddings.json", p.Embedder.Provider())
	}

	// Step 1: CSV → HS code records.
	f, err := os.Open(p.CSVFile)
	if err != nil {
		return nil, &ConvertError{Stage: "convert", Path: p.CSVFile, Err: err}
	}
	conv := csvconv.NewConverter(p.Format)
	codes, err := conv.Convert(f)
	f.Close()
	if err != nil {
		return nil, &ConvertError{Stage: "convert", Path: p.CSVFile, Err: err}
	}
	if len(codes) == 0 {
		return nil, &ConvertError{Stage: "convert", Path: p.CSVFile, Err: ErrNoCodes}
	}
	log.Printf("converted %d hs codes from %s (%d rows skipped)", len(codes), p.CSVFile, conv.Skipped)

	interim := p.InterimJSON
	cleanup := false
	if interim == "" {
		interim = fmt.Sprintf("hs-codes-interim-%d.json", time.Now().Unix())
		cleanup = true
	}
	converted := models.ConvertedSet{
		HSCodes: codes,
		Metadata: models.ConvertMetadata{
			TotalCodes:  len(codes),
			Format:      string(p.Format),
			CreatedFrom: p.CSVFile,
		},
	}
	if err := output.WriteJSON(interim, converted, true); err != nil {
		return nil, &ConvertError{Stage: "write", Path: interim, Err: err}
	}
	if cleanup {
		defer func() {
			if err := os.Remove(interim); err != nil {
				log.Printf("could not delete interim file %s: %v", interim, err)
			}
		}()
	}

	// Step 2: embeddings.
	gen := embed.NewGenerator(p.Embedder)
	set, err := gen.Generate(ctx, codes)
	if err != nil {
		return nil, &ConvertError{Stage: "embed", Path: p.CSVFile, Err: err}
	}

	// Step 3: final artifact.
	if err := output.WriteJSON(outPath, set, true); err != nil {
		return nil, &ConvertError{Stage: "write", Path: outPath, Err: err}
	}

	return &Report{
		TotalCodes:   set.Metadata.TotalCodes,
		SkippedRows:  conv.Skipped,
		EmbeddingDim: set.Metadata.EmbeddingDim,
		OutputJSON:   outPath,
		Elapsed:      time.Since(start),
	}, nil
}
