package moderation

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "text.moderation",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "TextModerationService", Type: reflect.TypeOf(TextModerationService{}), Base: "TextService"},
		},
		Schemas: []services.Class{
			{Name: "HAPOptions", Type: reflect.TypeOf(HAPOptions{})},
			{Name: "ModerationHAP", Type: reflect.TypeOf(ModerationHAP{})},
			{Name: "ModerationImplicitHate", Type: reflect.TypeOf(ModerationImplicitHate{})},
			{Name: "ModerationStigma", Type: reflect.TypeOf(ModerationStigma{})},
			{Name: "ModerationParameters", Type: reflect.TypeOf(ModerationParameters{})},
			{Name: "ModerationPosition", Type: reflect.TypeOf(ModerationPosition{})},
			{Name: "ModerationTokens", Type: reflect.TypeOf(ModerationTokens{})},
			{Name: "TextModeration", Type: reflect.TypeOf(TextModeration{})},
			{Name: "TextModerationCreateResponse", Type: reflect.TypeOf(TextModerationCreateResponse{})},
		},
	})
}
