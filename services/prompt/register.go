package prompt

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "prompt",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "PromptService", Type: reflect.TypeOf(PromptService{})},
		},
		Schemas: []services.Class{
			{Name: "PromptType", Type: reflect.TypeOf(PromptType(""))},
			{Name: "PromptListSource", Type: reflect.TypeOf(PromptListSource(""))},
			{Name: "PromptTemplateData", Type: reflect.TypeOf(PromptTemplateData{})},
			{Name: "PromptResult", Type: reflect.TypeOf(PromptResult{})},
			{Name: "PromptCreateResponse", Type: reflect.TypeOf(PromptCreateResponse{})},
			{Name: "PromptRetrieveResponse", Type: reflect.TypeOf(PromptRetrieveResponse{})},
			{Name: "PromptIdRetrieveResponse", Type: reflect.TypeOf(PromptIdRetrieveResponse{})},
			{Name: "PromptIdUpdateResponse", Type: reflect.TypeOf(PromptIdUpdateResponse{})},
		},
	})
}
