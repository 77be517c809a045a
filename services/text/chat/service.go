// Package chat implements the genai.text.chat service module.
package chat

import (
	"context"
	"net/http"

	"github.com/petal-labs/genai/services"
	"github.com/petal-labs/genai/services/text/generation"
)

// Module is the logical module name this package registers under.
const Module = "genai.text.chat"

// TextChatService drives multi-turn conversations.
type TextChatService struct {
	services.BaseService
}

// NewService creates a chat service bound to the given transport.
func NewService(c services.Caller) *TextChatService {
	return &TextChatService{BaseService: services.NewBaseService(Module, c)}
}

// Create sends a conversation turn. An empty conversationID starts a new
// conversation.
func (s *TextChatService) Create(ctx context.Context, modelID, conversationID string, messages []BaseMessage, params *generation.TextGenerationParameters) (*TextChatCreateResponse, error) {
	body := struct {
		ModelID        string                               `json:"model_id"`
		ConversationID string                               `json:"conversation_id,omitempty"`
		Messages       []BaseMessage                        `json:"messages"`
		Parameters     *generation.TextGenerationParameters `json:"parameters,omitempty"`
	}{ModelID: modelID, ConversationID: conversationID, Messages: messages, Parameters: params}

	var out TextChatCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/text/chat", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
