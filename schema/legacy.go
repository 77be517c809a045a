package schema

// Legacy classes retained only as soft-removal stubs. They are not exported
// and not part of the discovery graph; the compatibility table serves their
// reflect types until the names are hard-deleted in the next major version.

type legacyTuningType string

type legacyPromptTemplate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type legacyImplicitHateOptions struct {
	Input     bool    `json:"input,omitempty"`
	Output    bool    `json:"output,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

type legacyStigmaOptions struct {
	Input     bool    `json:"input,omitempty"`
	Output    bool    `json:"output,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}
