package file

import (
	"reflect"

	"github.com/petal-labs/genai/services"
)

func init() {
	services.RegisterServiceModule(services.ModuleSpec{
		Module: Module,
		Name:   "file",
		Factory: func(c services.Caller) services.Service {
			return NewService(c)
		},
		Services: []services.Class{
			{Name: "FileService", Type: reflect.TypeOf(FileService{})},
		},
		Schemas: []services.Class{
			{Name: "FilePurpose", Type: reflect.TypeOf(FilePurpose(""))},
			{Name: "FileListSortBy", Type: reflect.TypeOf(FileListSortBy(""))},
			{Name: "FileResult", Type: reflect.TypeOf(FileResult{})},
			{Name: "FileCreateResponse", Type: reflect.TypeOf(FileCreateResponse{})},
			{Name: "FileRetrieveResponse", Type: reflect.TypeOf(FileRetrieveResponse{})},
			{Name: "FileIdRetrieveResponse", Type: reflect.TypeOf(FileIdRetrieveResponse{})},
		},
	})
}
