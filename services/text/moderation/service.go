// Package moderation implements the genai.text.moderation service module.
package moderation

import (
	"context"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.text.moderation"

// TextModerationService scores text without generating anything.
type TextModerationService struct {
	services.BaseService
}

// NewService creates a moderation service bound to the given transport.
func NewService(c services.Caller) *TextModerationService {
	return &TextModerationService{BaseService: services.NewBaseService(Module, c)}
}

// Create scores the given inputs with the configured moderations.
func (s *TextModerationService) Create(ctx context.Context, inputs []string, params *ModerationParameters) (*TextModerationCreateResponse, error) {
	body := struct {
		Inputs      []string              `json:"inputs"`
		Moderations *ModerationParameters `json:"moderations,omitempty"`
	}{Inputs: inputs, Moderations: params}

	var out TextModerationCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/text/moderations", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
