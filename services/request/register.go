package request

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "request",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "RequestService", Type: reflect.TypeOf(RequestService{})},
		},
		Schemas: []services.Class{
			{Name: "RequestApiVersion", Type: reflect.TypeOf(RequestApiVersion(""))},
			{Name: "RequestEndpoint", Type: reflect.TypeOf(RequestEndpoint(""))},
			{Name: "RequestOrigin", Type: reflect.TypeOf(RequestOrigin(""))},
			{Name: "RequestStatus", Type: reflect.TypeOf(RequestStatus(""))},
			{Name: "SortDirection", Type: reflect.TypeOf(SortDirection(""))},
			{Name: "RequestResult", Type: reflect.TypeOf(RequestResult{})},
			{Name: "RequestRetrieveResponse", Type: reflect.TypeOf(RequestRetrieveResponse{})},
			{Name: "RequestChatConversationIdRetrieveResponse", Type: reflect.TypeOf(RequestChatConversationIdRetrieveResponse{})},
		},
	})
}
