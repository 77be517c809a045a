package prompt

import "time"

// Schema classes owned by genai.prompt.

// PromptType distinguishes plain prompts from chat-structured ones.
type PromptType string

const (
	PromptTypePrivate   PromptType = "private"
	PromptTypePublic    PromptType = "public"
	PromptTypeCommunity PromptType = "community"
	PromptTypeExample   PromptType = "example"
)

// PromptListSource filters prompt listings by origin.
// Formerly PromptRetrieveRequestParamsSource; the old name resolves through
// the compatibility table.
type PromptListSource string

const (
	PromptListSourceUser    PromptListSource = "user"
	PromptListSourceExample PromptListSource = "example"
)

// PromptTemplateData carries the variables substituted into a template.
type PromptTemplateData struct {
	ID   string            `json:"id,omitempty"`
	Data map[string]string `json:"data,omitempty"`
}

// PromptResult is one stored prompt. Earlier versions exposed this class as
// UserPromptResult and PromptsResponseResult; both old names resolve here.
type PromptResult struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        PromptType          `json:"type"`
	Input       string              `json:"input,omitempty"`
	ModelID     string              `json:"model_id"`
	Data        *PromptTemplateData `json:"data,omitempty"`
	Description string              `json:"description,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// PromptCreateResponse is returned by the create endpoint.
type PromptCreateResponse struct {
	Result PromptResult `json:"result"`
}

// PromptRetrieveResponse is returned by the listing endpoint.
type PromptRetrieveResponse struct {
	Results    []PromptResult `json:"results"`
	TotalCount int            `json:"total_count"`
}

// PromptIdRetrieveResponse is returned when retrieving a single prompt.
type PromptIdRetrieveResponse struct {
	Result PromptResult `json:"result"`
}

// PromptIdUpdateResponse is returned after updating a prompt.
type PromptIdUpdateResponse struct {
	Result PromptResult `json:"result"`
}
