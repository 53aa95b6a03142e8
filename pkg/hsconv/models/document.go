package models

// CodeSet is the serialized artifact of an Excel extraction run: the full
// entry list plus a metadata header.
type CodeSet struct {
	Metadata CodeSetMetadata `json:"metadata"`
	Codes    []Entry         `json:"codes"`
}

// CodeSetMetadata describes where a CodeSet came from.
type CodeSetMetadata struct {
	TotalCodes int    `json:"totalCodes"`
	Source     string `json:"source"`
	Sheet      string `json:"sheet,omitempty"`
}

// ConvertedSet is the serialized artifact of a CSV conversion run.
type ConvertedSet struct {
	HSCodes  []HSCode        `json:"hs_codes"`
	Metadata ConvertMetadata `json:"metadata"`
}

// ConvertMetadata describes a CSV conversion.
type ConvertMetadata struct {
	TotalCodes  int    `json:"total_codes"`
	Format      string `json:"format"`
	CreatedFrom string `json:"created_from"`
}

// EmbeddingSet is the serialized artifact of an embeddings run.
type EmbeddingSet struct {
	HSCodes  []HSCode          `json:"hs_codes"`
	Metadata EmbeddingMetadata `json:"metadata"`
}

// EmbeddingMetadata describes the provider and geometry of an embeddings run.
type EmbeddingMetadata struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	TotalCodes   int    `json:"total_codes"`
	EmbeddingDim int    `json:"embedding_dim"`
	CreatedAt    string `json:"created_at"`
	Version      string `json:"version"`
}
