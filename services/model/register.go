package model

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "model",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "ModelService", Type: reflect.TypeOf(ModelService{})},
		},
		Schemas: []services.Class{
			{Name: "ModelTokenLimits", Type: reflect.TypeOf(ModelTokenLimits{})},
			{Name: "ModelResult", Type: reflect.TypeOf(ModelResult{})},
			{Name: "ModelIdRetrieveResult", Type: reflect.TypeOf(ModelIdRetrieveResult{})},
			{Name: "ModelRetrieveResponse", Type: reflect.TypeOf(ModelRetrieveResponse{})},
			{Name: "ModelIdRetrieveResponse", Type: reflect.TypeOf(ModelIdRetrieveResponse{})},
		},
	})
}
