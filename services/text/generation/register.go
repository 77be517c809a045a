package generation

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "text.generation",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "TextGenerationService", Type: reflect.TypeOf(TextGenerationService{}), Base: "TextService"},
			{Name: "TextGenerationFeedbackService", Type: reflect.TypeOf(TextGenerationFeedbackService{}), Base: "TextGenerationService"},
			{Name: "TextGenerationLimitService", Type: reflect.TypeOf(TextGenerationLimitService{}), Base: "TextGenerationService"},
		},
		Schemas: []services.Class{
			{Name: "DecodingMethod", Type: reflect.TypeOf(DecodingMethod(""))},
			{Name: "LengthPenalty", Type: reflect.TypeOf(LengthPenalty{})},
			{Name: "StopReason", Type: reflect.TypeOf(StopReason(""))},
			{Name: "TrimMethod", Type: reflect.TypeOf(TrimMethod(""))},
			{Name: "TextGenerationReturnOptions", Type: reflect.TypeOf(TextGenerationReturnOptions{})},
			{Name: "TextGenerationParameters", Type: reflect.TypeOf(TextGenerationParameters{})},
			{Name: "TextGenerationResult", Type: reflect.TypeOf(TextGenerationResult{})},
			{Name: "TextGenerationCreateResponse", Type: reflect.TypeOf(TextGenerationCreateResponse{})},
			{Name: "TextGenerationStreamCreateResponse", Type: reflect.TypeOf(TextGenerationStreamCreateResponse{})},
			{Name: "TextGenerationComparisonParameters", Type: reflect.TypeOf(TextGenerationComparisonParameters{})},
			{Name: "TextGenerationComparisonCreateRequestRequest", Type: reflect.TypeOf(TextGenerationComparisonCreateRequestRequest{})},
			{Name: "TextGenerationComparisonCreateResponse", Type: reflect.TypeOf(TextGenerationComparisonCreateResponse{})},
			{Name: "TextGenerationLimitRetrieveResponse", Type: reflect.TypeOf(TextGenerationLimitRetrieveResponse{})},
			{Name: "TextGenerationFeedbackCategory", Type: reflect.TypeOf(TextGenerationFeedbackCategory(""))},
			{Name: "TextGenerationFeedbackResult", Type: reflect.TypeOf(TextGenerationFeedbackResult{})},
			{Name: "TextGenerationIdFeedbackCreateResponse", Type: reflect.TypeOf(TextGenerationIdFeedbackCreateResponse{})},
			{Name: "TextGenerationIdFeedbackRetrieveResponse", Type: reflect.TypeOf(TextGenerationIdFeedbackRetrieveResponse{})},
			{Name: "TextGenerationIdFeedbackUpdateResponse", Type: reflect.TypeOf(TextGenerationIdFeedbackUpdateResponse{})},
		},
	})
}
