// Package text implements the genai.text service module, the umbrella over
// the chat, embedding, generation, moderation and tokenization subservices.
package text

import (
	"github.com/petal-labs/genai/services"
	"github.com/petal-labs/genai/services/text/chat"
	"github.com/petal-labs/genai/services/text/embedding"
	"github.com/petal-labs/genai/services/text/generation"
	"github.com/petal-labs/genai/services/text/moderation"
	"github.com/petal-labs/genai/services/text/tokenization"
)

// Module is the logical module name this package registers under.
const Module = "genai.text"

// TextService bundles the text subservices behind one handle.
type TextService struct {
	services.BaseService

	Chat         *chat.TextChatService
	Embedding    *embedding.TextEmbeddingService
	Generation   *generation.TextGenerationService
	Moderation   *moderation.TextModerationService
	Tokenization *tokenization.TextTokenizationService
}

// NewService creates the text service and all its subservices bound to the
// given transport.
func NewService(c services.Caller) *TextService {
	return &TextService{
		BaseService:  services.NewBaseService(Module, c),
		Chat:         chat.NewService(c),
		Embedding:    embedding.NewService(c),
		Generation:   generation.NewService(c),
		Moderation:   moderation.NewService(c),
		Tokenization: tokenization.NewService(c),
	}
}
