package chat

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "text.chat",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "TextChatService", Type: reflect.TypeOf(TextChatService{}), Base: "TextService"},
		},
		Schemas: []services.Class{
			{Name: "ChatRole", Type: reflect.TypeOf(ChatRole(""))},
			{Name: "BaseMessage", Type: reflect.TypeOf(BaseMessage{})},
			{Name: "AIMessage", Type: reflect.TypeOf(AIMessage{}), Base: "BaseMessage"},
			{Name: "HumanMessage", Type: reflect.TypeOf(HumanMessage{}), Base: "BaseMessage"},
			{Name: "SystemMessage", Type: reflect.TypeOf(SystemMessage{}), Base: "BaseMessage"},
			{Name: "TextChatCreateResponse", Type: reflect.TypeOf(TextChatCreateResponse{})},
			{Name: "TextChatStreamCreateResponse", Type: reflect.TypeOf(TextChatStreamCreateResponse{})},
		},
	})
}
