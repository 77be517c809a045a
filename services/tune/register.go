package tune

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "tune",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "TuneService", Type: reflect.TypeOf(TuneService{})},
		},
		Schemas: []services.Class{
			{Name: "TuneAssetType", Type: reflect.TypeOf(TuneAssetType(""))},
			{Name: "TuneStatus", Type: reflect.TypeOf(TuneStatus(""))},
			{Name: "TuneParameters", Type: reflect.TypeOf(TuneParameters{})},
			{Name: "TuneResult", Type: reflect.TypeOf(TuneResult{})},
			{Name: "TuneCreateResponse", Type: reflect.TypeOf(TuneCreateResponse{})},
			{Name: "TuneRetrieveResponse", Type: reflect.TypeOf(TuneRetrieveResponse{})},
			{Name: "TuneIdRetrieveResponse", Type: reflect.TypeOf(TuneIdRetrieveResponse{})},
			{Name: "TuningTypeRetrieveResponse", Type: reflect.TypeOf(TuningTypeRetrieveResponse{})},
		},
	})
}
