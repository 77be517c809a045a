package embedding

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "text.embedding",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "TextEmbeddingService", Type: reflect.TypeOf(TextEmbeddingService{}), Base: "TextService"},
			{Name: "TextEmbeddingLimitService", Type: reflect.TypeOf(TextEmbeddingLimitService{}), Base: "TextEmbeddingService"},
		},
		Schemas: []services.Class{
			{Name: "TextEmbeddingParameters", Type: reflect.TypeOf(TextEmbeddingParameters{})},
			{Name: "TextEmbeddingLimit", Type: reflect.TypeOf(TextEmbeddingLimit{})},
			{Name: "TextEmbeddingCreateResponse", Type: reflect.TypeOf(TextEmbeddingCreateResponse{})},
		},
	})
}
