package tokenization

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "text.tokenization",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "TextTokenizationService", Type: reflect.TypeOf(TextTokenizationService{}), Base: "TextService"},
		},
		Schemas: []services.Class{
			{Name: "TextTokenizationReturnOptions", Type: reflect.TypeOf(TextTokenizationReturnOptions{})},
			{Name: "TextTokenizationParameters", Type: reflect.TypeOf(TextTokenizationParameters{})},
			{Name: "TextTokenizationCreateResults", Type: reflect.TypeOf(TextTokenizationCreateResults{})},
			{Name: "TextTokenizationCreateResponse", Type: reflect.TypeOf(TextTokenizationCreateResponse{})},
		},
	})
}
