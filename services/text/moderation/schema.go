package moderation

// Schema classes owned by genai.text.moderation.

// HAPOptions configures hate/abuse/profanity detection on a generation
// request.
type HAPOptions struct {
	Input      bool    `json:"input,omitempty"`
	Output     bool    `json:"output,omitempty"`
	Threshold  float64 `json:"threshold,omitempty"`
	SendTokens bool    `json:"send_tokens,omitempty"`
}

// ModerationHAP enables HAP scoring with an optional threshold.
type ModerationHAP struct {
	Input     bool    `json:"input,omitempty"`
	Output    bool    `json:"output,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

// ModerationImplicitHate enables implicit-hate scoring.
type ModerationImplicitHate struct {
	Input     bool    `json:"input,omitempty"`
	Output    bool    `json:"output,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

// ModerationStigma enables stigma scoring.
type ModerationStigma struct {
	Input     bool    `json:"input,omitempty"`
	Output    bool    `json:"output,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

// ModerationParameters bundles the moderations applied to a request.
type ModerationParameters struct {
	HAP          *ModerationHAP          `json:"hap,omitempty"`
	ImplicitHate *ModerationImplicitHate `json:"implicit_hate,omitempty"`
	Stigma       *ModerationStigma       `json:"stigma,omitempty"`
}

// ModerationPosition locates a flagged span in the scored text.
type ModerationPosition struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ModerationTokens is one scored token of a flagged span.
type ModerationTokens struct {
	Index int     `json:"index"`
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// TextModeration is one moderation verdict.
type TextModeration struct {
	Score    float64             `json:"score"`
	Flagged  bool                `json:"flagged"`
	Success  bool                `json:"success"`
	Position *ModerationPosition `json:"position,omitempty"`
	Tokens   []ModerationTokens  `json:"tokens,omitempty"`
}

// TextModerationCreateResponse is returned by the standalone moderation
// endpoint.
type TextModerationCreateResponse struct {
	Results []struct {
		HAP          []TextModeration `json:"hap,omitempty"`
		ImplicitHate []TextModeration `json:"implicit_hate,omitempty"`
		Stigma       []TextModeration `json:"stigma,omitempty"`
	} `json:"results"`
}
