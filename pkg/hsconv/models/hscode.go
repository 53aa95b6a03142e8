package models

// HSCode is the flat record used by the CSV converter and the embeddings
// generator. The embedding fields are empty until a generator fills them.
type HSCode struct {
	Code        string   `json:"code"`
	Menu        string   `json:"menu"`
	Description string   `json:"description"`
	Chapter     string   `json:"chapter"`
	Section     string   `json:"section"`
	Keywords    []string `json:"keywords"`

	// Vietnamese translations, present for bilingual sources only.
	MenuVI        string   `json:"menu_vi,omitempty"`
	DescriptionVI string   `json:"description_vi,omitempty"`
	KeywordsVI    []string `json:"keywords_vi,omitempty"`

	// Embedding output fields.
	Embedding     []float64 `json:"embedding,omitempty"`
	Provider      string    `json:"provider,omitempty"`
	Model         string    `json:"model,omitempty"`
	EmbeddingText string    `json:"embedding_text,omitempty"`
}
