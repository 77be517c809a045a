package user

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "user",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "UserService", Type: reflect.TypeOf(UserService{})},
		},
		Schemas: []services.Class{
			{Name: "UserApiKey", Type: reflect.TypeOf(UserApiKey{})},
			{Name: "UserResult", Type: reflect.TypeOf(UserResult{})},
			{Name: "UserCreateResponse", Type: reflect.TypeOf(UserCreateResponse{})},
			{Name: "UserRetrieveResponse", Type: reflect.TypeOf(UserRetrieveResponse{})},
			{Name: "UserPatchResponse", Type: reflect.TypeOf(UserPatchResponse{})},
		},
	})
}
