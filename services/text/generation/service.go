// Package generation implements the genai.text.generation service module and
// its feedback and limit subservices.
package generation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.text.generation"

// TextGenerationService drives single-shot text generation.
type TextGenerationService struct {
	services.BaseService

	// Feedback and Limit expose the subresources of the generation endpoint.
	Feedback *TextGenerationFeedbackService
	Limit    *TextGenerationLimitService
}

// NewService creates a generation service bound to the given transport.
func NewService(c services.Caller) *TextGenerationService {
	return &TextGenerationService{
		BaseService: services.NewBaseService(Module, c),
		Feedback:    &TextGenerationFeedbackService{BaseService: services.NewBaseService(Module, c)},
		Limit:       &TextGenerationLimitService{BaseService: services.NewBaseService(Module, c)},
	}
}

// Create generates completions for the given input.
func (s *TextGenerationService) Create(ctx context.Context, modelID, input string, params *TextGenerationParameters) (*TextGenerationCreateResponse, error) {
	body := struct {
		ModelID    string                    `json:"model_id"`
		Input      string                    `json:"input"`
		Parameters *TextGenerationParameters `json:"parameters,omitempty"`
	}{ModelID: modelID, Input: input, Parameters: params}

	var out TextGenerationCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/text/generation", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ComparisonCreate runs the same input across a parameter sweep.
func (s *TextGenerationService) ComparisonCreate(ctx context.Context, req TextGenerationComparisonCreateRequestRequest, compare *TextGenerationComparisonParameters) (*TextGenerationComparisonCreateResponse, error) {
	body := struct {
		Request           TextGenerationComparisonCreateRequestRequest `json:"request"`
		CompareParameters *TextGenerationComparisonParameters          `json:"compare_parameters,omitempty"`
	}{Request: req, CompareParameters: compare}

	var out TextGenerationComparisonCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/text/generation/comparison", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextGenerationFeedbackService files feedback against generated outputs.
type TextGenerationFeedbackService struct {
	services.BaseService
}

// Create files feedback for a generation by request ID.
func (s *TextGenerationFeedbackService) Create(ctx context.Context, generationID, comment string, categories []TextGenerationFeedbackCategory) (*TextGenerationIdFeedbackCreateResponse, error) {
	body := struct {
		Comment    string                           `json:"comment,omitempty"`
		Categories []TextGenerationFeedbackCategory `json:"categories,omitempty"`
	}{Comment: comment, Categories: categories}

	var out TextGenerationIdFeedbackCreateResponse
	if err := s.Call(ctx, http.MethodPost, fmt.Sprintf("/v2/text/generation/%s/feedback", generationID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retrieve returns the stored feedback of a generation.
func (s *TextGenerationFeedbackService) Retrieve(ctx context.Context, generationID string) (*TextGenerationIdFeedbackRetrieveResponse, error) {
	var out TextGenerationIdFeedbackRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, fmt.Sprintf("/v2/text/generation/%s/feedback", generationID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits previously filed feedback.
func (s *TextGenerationFeedbackService) Update(ctx context.Context, generationID, comment string) (*TextGenerationIdFeedbackUpdateResponse, error) {
	body := struct {
		Comment string `json:"comment,omitempty"`
	}{Comment: comment}

	var out TextGenerationIdFeedbackUpdateResponse
	if err := s.Call(ctx, http.MethodPut, fmt.Sprintf("/v2/text/generation/%s/feedback", generationID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextGenerationLimitService reads the account's generation budget.
type TextGenerationLimitService struct {
	services.BaseService
}

// Retrieve returns the current concurrency limit.
func (s *TextGenerationLimitService) Retrieve(ctx context.Context) (*TextGenerationLimitRetrieveResponse, error) {
	var out TextGenerationLimitRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/text/generation/limits", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
