package embedding

// Schema classes owned by genai.text.embedding.

// TextEmbeddingParameters configures an embedding request.
type TextEmbeddingParameters struct {
	TruncateInputTokens bool `json:"truncate_input_tokens,omitempty"`
}

// TextEmbeddingLimit reports the account's embedding concurrency budget.
type TextEmbeddingLimit struct {
	Concurrency struct {
		Limit     int `json:"limit"`
		Remaining int `json:"remaining"`
	} `json:"concurrency"`
}

// TextEmbeddingCreateResponse is returned by the embedding endpoint, one
// vector per input.
type TextEmbeddingCreateResponse struct {
	ModelID string      `json:"model_id"`
	Results [][]float64 `json:"results"`
}
