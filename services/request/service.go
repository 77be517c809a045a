// Package request implements the genai.request service module, the request
// history endpoint.
package request

import (
	"context"
	"fmt"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.request"

// RequestService reads and prunes the account's request history.
type RequestService struct {
	services.BaseService
}

// NewService creates a request service bound to the given transport.
func NewService(c services.Caller) *RequestService {
	return &RequestService{BaseService: services.NewBaseService(Module, c)}
}

// Retrieve lists recorded requests.
func (s *RequestService) Retrieve(ctx context.Context, status RequestStatus, direction SortDirection) (*RequestRetrieveResponse, error) {
	body := struct {
		Status    RequestStatus `json:"status,omitempty"`
		Direction SortDirection `json:"direction,omitempty"`
	}{Status: status, Direction: direction}

	var out RequestRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/requests", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatConversationIDRetrieve returns the requests of one chat conversation.
func (s *RequestService) ChatConversationIDRetrieve(ctx context.Context, conversationID string) (*RequestChatConversationIdRetrieveResponse, error) {
	var out RequestChatConversationIdRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, fmt.Sprintf("/v2/requests/chat/%s", conversationID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one recorded request.
func (s *RequestService) Delete(ctx context.Context, id string) error {
	return s.Call(ctx, http.MethodDelete, fmt.Sprintf("/v2/requests/%s", id), nil, nil)
}
