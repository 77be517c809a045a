package tokenization

// Schema classes owned by genai.text.tokenization.

// TextTokenizationReturnOptions selects the detail included per result.
type TextTokenizationReturnOptions struct {
	Tokens    bool `json:"tokens,omitempty"`
	InputText bool `json:"input_text,omitempty"`
}

// TextTokenizationParameters configures a tokenization request.
type TextTokenizationParameters struct {
	ReturnOptions *TextTokenizationReturnOptions `json:"return_options,omitempty"`
}

// TextTokenizationCreateResults is the tokenization of one input.
type TextTokenizationCreateResults struct {
	TokenCount int      `json:"token_count"`
	Tokens     []string `json:"tokens,omitempty"`
	InputText  string   `json:"input_text,omitempty"`
}

// TextTokenizationCreateResponse is returned by the tokenization endpoint.
type TextTokenizationCreateResponse struct {
	ModelID string                          `json:"model_id"`
	Results []TextTokenizationCreateResults `json:"results"`
}
