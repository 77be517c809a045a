package generation

import "time"

// Schema classes owned by genai.text.generation, including the feedback and
// limit subresources. DecodingMethod, LengthPenalty, StopReason and
// TextGenerationParameters are the most widely shared classes in the SDK;
// every other service module used to re-export them and keeps redirect shims.

// DecodingMethod selects the token sampling strategy.
type DecodingMethod string

const (
	DecodingMethodGreedy DecodingMethod = "greedy"
	DecodingMethodSample DecodingMethod = "sample"
)

// LengthPenalty discourages long outputs once StartIndex is reached.
type LengthPenalty struct {
	DecayFactor float64 `json:"decay_factor,omitempty"`
	StartIndex  int     `json:"start_index,omitempty"`
}

// StopReason states why generation ended.
type StopReason string

const (
	StopReasonNotFinished  StopReason = "not_finished"
	StopReasonMaxTokens    StopReason = "max_tokens"
	StopReasonEosToken     StopReason = "eos_token"
	StopReasonCancelled    StopReason = "cancelled"
	StopReasonTimeLimit    StopReason = "time_limit"
	StopReasonStopSequence StopReason = "stop_sequence"
	StopReasonTokenLimit   StopReason = "token_limit"
	StopReasonError        StopReason = "error"
)

// TrimMethod selects which side of an over-long input to trim.
type TrimMethod string

const (
	TrimMethodLeft  TrimMethod = "left"
	TrimMethodRight TrimMethod = "right"
)

// TextGenerationReturnOptions selects the extra detail included in results.
type TextGenerationReturnOptions struct {
	GeneratedTokens bool `json:"generated_tokens,omitempty"`
	InputText       bool `json:"input_text,omitempty"`
	InputTokens     bool `json:"input_tokens,omitempty"`
	TokenLogprobs   bool `json:"token_logprobs,omitempty"`
	TokenRanks      bool `json:"token_ranks,omitempty"`
	TopNTokens      int  `json:"top_n_tokens,omitempty"`
}

// TextGenerationParameters configures a generation request.
type TextGenerationParameters struct {
	DecodingMethod      DecodingMethod               `json:"decoding_method,omitempty"`
	LengthPenalty       *LengthPenalty               `json:"length_penalty,omitempty"`
	MaxNewTokens        int                          `json:"max_new_tokens,omitempty"`
	MinNewTokens        int                          `json:"min_new_tokens,omitempty"`
	RandomSeed          int                          `json:"random_seed,omitempty"`
	RepetitionPenalty   float64                      `json:"repetition_penalty,omitempty"`
	StopSequences       []string                     `json:"stop_sequences,omitempty"`
	Temperature         float64                      `json:"temperature,omitempty"`
	TimeLimit           int                          `json:"time_limit,omitempty"`
	TopK                int                          `json:"top_k,omitempty"`
	TopP                float64                      `json:"top_p,omitempty"`
	TypicalP            float64                      `json:"typical_p,omitempty"`
	TruncateInputTokens int                          `json:"truncate_input_tokens,omitempty"`
	ReturnOptions       *TextGenerationReturnOptions `json:"return_options,omitempty"`
}

// TextGenerationResult is one generated completion.
type TextGenerationResult struct {
	GeneratedText       string     `json:"generated_text"`
	GeneratedTokenCount int        `json:"generated_token_count"`
	InputTokenCount     int        `json:"input_token_count"`
	StopReason          StopReason `json:"stop_reason"`
	Seed                int        `json:"seed,omitempty"`
}

// TextGenerationCreateResponse is returned by the generation endpoint.
type TextGenerationCreateResponse struct {
	ID        string                 `json:"id"`
	ModelID   string                 `json:"model_id"`
	CreatedAt time.Time              `json:"created_at"`
	Results   []TextGenerationResult `json:"results"`
}

// TextGenerationStreamCreateResponse is one chunk of a streamed generation.
type TextGenerationStreamCreateResponse struct {
	ID      string                 `json:"id"`
	ModelID string                 `json:"model_id"`
	Results []TextGenerationResult `json:"results"`
}

// TextGenerationComparisonParameters sweeps one parameter across values.
type TextGenerationComparisonParameters struct {
	Temperature []float64 `json:"temperature,omitempty"`
	TopK        []int     `json:"top_k,omitempty"`
	TopP        []float64 `json:"top_p,omitempty"`
}

// TextGenerationComparisonCreateRequestRequest is the inner request of a
// comparison run.
type TextGenerationComparisonCreateRequestRequest struct {
	Input      string                    `json:"input"`
	ModelID    string                    `json:"model_id"`
	Parameters *TextGenerationParameters `json:"parameters,omitempty"`
}

// TextGenerationComparisonCreateResponse holds one result per swept value.
type TextGenerationComparisonCreateResponse struct {
	Results []struct {
		Parameters *TextGenerationParameters     `json:"parameters,omitempty"`
		Result     *TextGenerationCreateResponse `json:"result,omitempty"`
	} `json:"results"`
}

// TextGenerationLimitRetrieveResponse reports the account's concurrency
// budget for generation requests.
type TextGenerationLimitRetrieveResponse struct {
	Result struct {
		Concurrency struct {
			Limit     int `json:"limit"`
			Remaining int `json:"remaining"`
		} `json:"concurrency"`
	} `json:"result"`
}

// TextGenerationFeedbackCategory classifies feedback on a generation.
type TextGenerationFeedbackCategory string

const (
	TextGenerationFeedbackCategoryInaccurateContent TextGenerationFeedbackCategory = "inaccurate_content"
	TextGenerationFeedbackCategoryOffensiveLanguage TextGenerationFeedbackCategory = "offensive_language"
	TextGenerationFeedbackCategoryRepetitiveContent TextGenerationFeedbackCategory = "repetitive_content"
	TextGenerationFeedbackCategoryIncompleteContent TextGenerationFeedbackCategory = "incomplete_content"
)

// TextGenerationFeedbackResult is one stored feedback record.
type TextGenerationFeedbackResult struct {
	ID         string                           `json:"id"`
	Comment    string                           `json:"comment,omitempty"`
	Categories []TextGenerationFeedbackCategory `json:"categories,omitempty"`
	CreatedAt  time.Time                        `json:"created_at"`
}

// TextGenerationIdFeedbackCreateResponse is returned when feedback is filed.
type TextGenerationIdFeedbackCreateResponse struct {
	Result TextGenerationFeedbackResult `json:"result"`
}

// TextGenerationIdFeedbackRetrieveResponse returns stored feedback.
type TextGenerationIdFeedbackRetrieveResponse struct {
	Result TextGenerationFeedbackResult `json:"result"`
}

// TextGenerationIdFeedbackUpdateResponse is returned after editing feedback.
type TextGenerationIdFeedbackUpdateResponse struct {
	Result TextGenerationFeedbackResult `json:"result"`
}
