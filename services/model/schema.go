package model

// Schema classes owned by genai.model.

// ModelTokenLimits describes the token budget of a model.
type ModelTokenLimits struct {
	BeamWidth      int `json:"beam_width,omitempty"`
	TokenLimit     int `json:"token_limit"`
	MaxOutputCount int `json:"max_output_count,omitempty"`
}

// ModelResult is a model as returned by the listing endpoint.
type ModelResult struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Size        string             `json:"size"`
	TokenLimits []ModelTokenLimits `json:"token_limits,omitempty"`
}

// ModelIdRetrieveResult is the detailed view of a single model.
type ModelIdRetrieveResult struct {
	ModelResult
	Description   string `json:"description,omitempty"`
	Disabled      bool   `json:"disabled"`
	Preferred     bool   `json:"preferred"`
	SourceModelID string `json:"source_model_id,omitempty"`
}

// ModelRetrieveResponse is returned by the listing endpoint.
type ModelRetrieveResponse struct {
	Results    []ModelResult `json:"results"`
	TotalCount int           `json:"total_count"`
}

// ModelIdRetrieveResponse is returned when retrieving a single model.
type ModelIdRetrieveResponse struct {
	Result ModelIdRetrieveResult `json:"result"`
}
