// Package embedding implements the genai.text.embedding service module and
// its limits subservice.
package embedding

import (
	"context"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.text.embedding"

// TextEmbeddingService embeds text into vectors.
type TextEmbeddingService struct {
	services.BaseService

	Limit *TextEmbeddingLimitService
}

// NewService creates an embedding service bound to the given transport.
func NewService(c services.Caller) *TextEmbeddingService {
	return &TextEmbeddingService{
		BaseService: services.NewBaseService(Module, c),
		Limit:       &TextEmbeddingLimitService{BaseService: services.NewBaseService(Module, c)},
	}
}

// Create embeds the given inputs.
func (s *TextEmbeddingService) Create(ctx context.Context, modelID string, inputs []string, params *TextEmbeddingParameters) (*TextEmbeddingCreateResponse, error) {
	body := struct {
		ModelID    string                   `json:"model_id"`
		Inputs     []string                 `json:"inputs"`
		Parameters *TextEmbeddingParameters `json:"parameters,omitempty"`
	}{ModelID: modelID, Inputs: inputs, Parameters: params}

	var out TextEmbeddingCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/text/embeddings", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextEmbeddingLimitService reads the account's embedding budget.
type TextEmbeddingLimitService struct {
	services.BaseService
}

// Retrieve returns the current concurrency limit.
func (s *TextEmbeddingLimitService) Retrieve(ctx context.Context) (*TextEmbeddingLimit, error) {
	var out struct {
		Result TextEmbeddingLimit `json:"result"`
	}
	if err := s.Call(ctx, http.MethodGet, "/v2/text/embeddings/limits", nil, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}
