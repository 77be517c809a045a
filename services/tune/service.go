// Package tune implements the genai.tune service module.
package tune

import (
	"context"
	"fmt"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.tune"

// TuneService manages model tuning jobs.
type TuneService struct {
	services.BaseService
}

// NewService creates a tune service bound to the given transport.
func NewService(c services.Caller) *TuneService {
	return &TuneService{BaseService: services.NewBaseService(Module, c)}
}

// Create submits a tuning job.
func (s *TuneService) Create(ctx context.Context, name, modelID, tuningType string, params *TuneParameters) (*TuneCreateResponse, error) {
	body := struct {
		Name       string          `json:"name"`
		ModelID    string          `json:"model_id"`
		TuningType string          `json:"tuning_type"`
		Parameters *TuneParameters `json:"parameters,omitempty"`
	}{Name: name, ModelID: modelID, TuningType: tuningType, Parameters: params}

	var out TuneCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/tunes", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retrieve lists tuning jobs.
func (s *TuneService) Retrieve(ctx context.Context, status TuneStatus) (*TuneRetrieveResponse, error) {
	body := struct {
		Status TuneStatus `json:"status,omitempty"`
	}{Status: status}

	var out TuneRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/tunes", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IDRetrieve fetches a single tuning job by ID.
func (s *TuneService) IDRetrieve(ctx context.Context, id string) (*TuneIdRetrieveResponse, error) {
	var out TuneIdRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, fmt.Sprintf("/v2/tunes/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Types lists the tuning methods available per model.
func (s *TuneService) Types(ctx context.Context) (*TuningTypeRetrieveResponse, error) {
	var out TuningTypeRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/tuning_types", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a tuning job.
func (s *TuneService) Delete(ctx context.Context, id string) error {
	return s.Call(ctx, http.MethodDelete, fmt.Sprintf("/v2/tunes/%s", id), nil, nil)
}
