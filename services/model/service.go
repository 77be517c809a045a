// Package model implements the genai.model service module.
package model

import (
	"context"
	"fmt"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.model"

// ModelService lists the models available for generation and tuning.
type ModelService struct {
	services.BaseService
}

// NewService creates a model service bound to the given transport.
func NewService(c services.Caller) *ModelService {
	return &ModelService{BaseService: services.NewBaseService(Module, c)}
}

// Retrieve lists available models.
func (s *ModelService) Retrieve(ctx context.Context) (*ModelRetrieveResponse, error) {
	var out ModelRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/models", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IDRetrieve fetches a single model by ID.
func (s *ModelService) IDRetrieve(ctx context.Context, id string) (*ModelIdRetrieveResponse, error) {
	var out ModelIdRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, fmt.Sprintf("/v2/models/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
