package chat

import "time"

// Schema classes owned by genai.text.chat.
//
// The message classes form a small hierarchy under BaseMessage; discovery
// registers them with their real parent so subclass walks see the full tree.

// ChatRole identifies the author of a message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleSystem    ChatRole = "system"
	ChatRoleAssistant ChatRole = "assistant"
)

// BaseMessage is the common shape of every conversation message.
type BaseMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// AIMessage is a message authored by the model.
type AIMessage struct {
	BaseMessage
}

// HumanMessage is a message authored by the end user.
type HumanMessage struct {
	BaseMessage
}

// SystemMessage carries conversation-level instructions.
type SystemMessage struct {
	BaseMessage
}

// Human builds a user message.
func Human(content string) BaseMessage {
	return BaseMessage{Role: ChatRoleUser, Content: content}
}

// System builds a system message.
func System(content string) BaseMessage {
	return BaseMessage{Role: ChatRoleSystem, Content: content}
}

// AI builds an assistant message.
func AI(content string) BaseMessage {
	return BaseMessage{Role: ChatRoleAssistant, Content: content}
}

// TextChatCreateResponse is returned by the chat endpoint.
type TextChatCreateResponse struct {
	ID             string    `json:"id"`
	ModelID        string    `json:"model_id"`
	ConversationID string    `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
	Results        []struct {
		GeneratedText       string `json:"generated_text"`
		GeneratedTokenCount int    `json:"generated_token_count"`
		InputTokenCount     int    `json:"input_token_count"`
	} `json:"results"`
}

// TextChatStreamCreateResponse is one chunk of a streamed chat response.
type TextChatStreamCreateResponse struct {
	ID             string `json:"id"`
	ModelID        string `json:"model_id"`
	ConversationID string `json:"conversation_id"`
	Results        []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}
