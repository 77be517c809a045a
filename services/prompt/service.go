// Package prompt implements the genai.prompt service module.
package prompt

import (
	"context"
	"fmt"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.prompt"

// PromptService manages stored prompts and prompt templates.
type PromptService struct {
	services.BaseService
}

// NewService creates a prompt service bound to the given transport.
func NewService(c services.Caller) *PromptService {
	return &PromptService{BaseService: services.NewBaseService(Module, c)}
}

// Create stores a new prompt.
func (s *PromptService) Create(ctx context.Context, name, modelID, input string, data *PromptTemplateData) (*PromptCreateResponse, error) {
	body := struct {
		Name    string              `json:"name"`
		ModelID string              `json:"model_id"`
		Input   string              `json:"input,omitempty"`
		Data    *PromptTemplateData `json:"data,omitempty"`
	}{Name: name, ModelID: modelID, Input: input, Data: data}

	var out PromptCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/prompts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retrieve lists stored prompts, optionally filtered by source.
func (s *PromptService) Retrieve(ctx context.Context, source PromptListSource) (*PromptRetrieveResponse, error) {
	body := struct {
		Source PromptListSource `json:"source,omitempty"`
	}{Source: source}

	var out PromptRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/prompts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IDRetrieve fetches a single prompt by ID.
func (s *PromptService) IDRetrieve(ctx context.Context, id string) (*PromptIdRetrieveResponse, error) {
	var out PromptIdRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, fmt.Sprintf("/v2/prompts/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IDUpdate replaces a stored prompt.
func (s *PromptService) IDUpdate(ctx context.Context, id, name, input string) (*PromptIdUpdateResponse, error) {
	body := struct {
		Name  string `json:"name"`
		Input string `json:"input,omitempty"`
	}{Name: name, Input: input}

	var out PromptIdUpdateResponse
	if err := s.Call(ctx, http.MethodPut, fmt.Sprintf("/v2/prompts/%s", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a stored prompt.
func (s *PromptService) Delete(ctx context.Context, id string) error {
	return s.Call(ctx, http.MethodDelete, fmt.Sprintf("/v2/prompts/%s", id), nil, nil)
}
