// Package user implements the genai.user service module.
package user

import (
	"context"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.user"

// UserService manages the calling account.
type UserService struct {
	services.BaseService
}

// NewService creates a user service bound to the given transport.
func NewService(c services.Caller) *UserService {
	return &UserService{BaseService: services.NewBaseService(Module, c)}
}

// Retrieve fetches the account record.
func (s *UserService) Retrieve(ctx context.Context) (*UserRetrieveResponse, error) {
	var out UserRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch updates account fields.
func (s *UserService) Patch(ctx context.Context, dataUsageConsent *bool) (*UserPatchResponse, error) {
	body := struct {
		DataUsageConsent *bool `json:"data_usage_consent,omitempty"`
	}{DataUsageConsent: dataUsageConsent}

	var out UserPatchResponse
	if err := s.Call(ctx, http.MethodPatch, "/v2/user", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the account.
func (s *UserService) Delete(ctx context.Context) error {
	return s.Call(ctx, http.MethodDelete, "/v2/user", nil, nil)
}
