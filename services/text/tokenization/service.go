// Package tokenization implements the genai.text.tokenization service module.
package tokenization

import (
	"context"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.text.tokenization"

// TextTokenizationService counts and returns model tokens without
// generating.
type TextTokenizationService struct {
	services.BaseService
}

// NewService creates a tokenization service bound to the given transport.
func NewService(c services.Caller) *TextTokenizationService {
	return &TextTokenizationService{BaseService: services.NewBaseService(Module, c)}
}

// Create tokenizes the given inputs.
func (s *TextTokenizationService) Create(ctx context.Context, modelID string, inputs []string, params *TextTokenizationParameters) (*TextTokenizationCreateResponse, error) {
	body := struct {
		ModelID    string                      `json:"model_id"`
		Inputs     []string                    `json:"inputs"`
		Parameters *TextTokenizationParameters `json:"parameters,omitempty"`
	}{ModelID: modelID, Inputs: inputs, Parameters: params}

	var out TextTokenizationCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/text/tokenization", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
