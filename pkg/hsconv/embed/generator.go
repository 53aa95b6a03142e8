package embed

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hstrade/hsconv/pkg/hsconv/models"
)

// Generator default tuning. Batches run strictly sequentially with a fixed
// pause between them; rate-limited batches are retried a fixed number of
// times at a constant interval.
const (
	DefaultBatchSize    = 100
	DefaultPacing       = 500 * time.Millisecond
	DefaultRetryWait    = 30 * time.Second
	DefaultMaxRetries   = 5
	embeddingSetVersion = "1.0"

	// huggingFaceBatchSize caps inference API batches; the hosted endpoint
	// rejects the larger batches the embedding providers accept.
	huggingFaceBatchSize = 32
)

// Generator attaches embeddings to HS code records in sequential batches.
type Generator struct {
	Embedder   Embedder
	BatchSize  int
	Pacing     time.Duration
	RetryWait  time.Duration
	MaxRetries uint64
}

// NewGenerator returns a generator with default batching and retry tuning
// for the embedder's provider.
func NewGenerator(e Embedder) *Generator {
	batchSize := DefaultBatchSize
	if e.Provider() == "huggingface" {
		batchSize = huggingFaceBatchSize
	}
	return &Generator{
		Embedder:   e,
		BatchSize:  batchSize,
		Pacing:     DefaultPacing,
		RetryWait:  DefaultRetryWait,
		MaxRetries: DefaultMaxRetries,
	}
}

// EmbeddingText builds the text sent to the provider for one record:
// description, keywords, and the Vietnamese counterparts when present,
// joined with " | ". Records with no text at all embed as "N/A".
func EmbeddingText(hs models.HSCode) string {
	var parts []string
	if hs.Description != "" {
		parts = append(parts, hs.Description)
	}
	if len(hs.Keywords) > 0 {
		parts = append(parts, strings.Join(hs.Keywords, " "))
	}
	if hs.DescriptionVI != "" {
		parts = append(parts, hs.DescriptionVI)
	}
	if len(hs.KeywordsVI) > 0 {
		parts = append(parts, strings.Join(hs.KeywordsVI, " "))
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, " | ")
}

// Generate embeds every record and returns the result as an EmbeddingSet.
// Batches fail the whole run on non-rate-limit errors; rate limits are
// retried with a constant backoff up to MaxRetries times.
func (g *Generator) Generate(ctx context.Context, codes []models.HSCode) (*models.EmbeddingSet, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyInput
	}

	batchSize := g.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	totalBatches := (len(codes) + batchSize - 1) / batchSize
	log.Printf("generating embeddings for %d hs codes (provider=%s model=%s batches=%d)",
		len(codes), g.Embedder.Provider(), g.Embedder.Model(), totalBatches)

	out := make([]models.HSCode, 0, len(codes))
	for batchNum := 0; batchNum < totalBatches; batchNum++ {
		start := batchNum * batchSize
		end := start + batchSize
		if end > len(codes) {
			end = len(codes)
		}
		batch := codes[start:end]

		texts := make([]string, len(batch))
		for i, hs := range batch {
			texts[i] = EmbeddingText(hs)
		}

		vectors, err := g.embedWithRetry(ctx, texts)
		if err != nil {
			return nil, err
		}

		for i, hs := range batch {
			hs.Embedding = vectors[i]
			hs.Provider = g.Embedder.Provider()
			hs.Model = g.Embedder.Model()
			hs.EmbeddingText = texts[i]
			out = append(out, hs)
		}
		log.Printf("batch %d/%d done (%d total)", batchNum+1, totalBatches, len(out))

		if g.Pacing > 0 && batchNum < totalBatches-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.Pacing):
			}
		}
	}

	dim := 0
	if len(out) > 0 {
		dim = len(out[0].Embedding)
	}
	return &models.EmbeddingSet{
		HSCodes: out,
		Metadata: models.EmbeddingMetadata{
			Provider:     g.Embedder.Provider(),
			Model:        g.Embedder.Model(),
			TotalCodes:   len(out),
			EmbeddingDim: dim,
			CreatedAt:    time.Now().Format("2006-01-02 15:04:05"),
			Version:      embeddingSetVersion,
		},
	}, nil
}

// embedWithRetry calls the embedder, retrying rate-limit failures at a
// constant interval. Any other error aborts immediately.
func (g *Generator) embedWithRetry(ctx context.Context, texts []string) ([][]float64, error) {
	wait := g.RetryWait
	if wait <= 0 {
		wait = DefaultRetryWait
	}
	var vectors [][]float64
	op := func() error {
		var err error
		vectors, err = g.Embedder.EmbedBatch(ctx, texts)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrRateLimited) {
			log.Printf("rate limit reached, waiting %s", wait)
			return err
		}
		return backoff.Permanent(err)
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(wait), g.MaxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return vectors, nil
}
