// Package file implements the genai.file service module.
package file

import (
	"context"
	"fmt"
	"net/http"

	"github.com/petal-labs/genai/services"
)

// Module is the logical module name this package registers under.
const Module = "genai.file"

// FileService manages uploaded files (tuning data, prompt templates).
type FileService struct {
	services.BaseService
}

// NewService creates a file service bound to the given transport.
func NewService(c services.Caller) *FileService {
	return &FileService{BaseService: services.NewBaseService(Module, c)}
}

// Create uploads a file for the given purpose.
func (s *FileService) Create(ctx context.Context, fileName string, purpose FilePurpose) (*FileCreateResponse, error) {
	body := struct {
		FileName string      `json:"file_name"`
		Purpose  FilePurpose `json:"purpose"`
	}{FileName: fileName, Purpose: purpose}

	var out FileCreateResponse
	if err := s.Call(ctx, http.MethodPost, "/v2/files", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retrieve lists stored files.
func (s *FileService) Retrieve(ctx context.Context, sortBy FileListSortBy) (*FileRetrieveResponse, error) {
	body := struct {
		SortBy FileListSortBy `json:"sort_by,omitempty"`
	}{SortBy: sortBy}

	var out FileRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, "/v2/files", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IDRetrieve fetches a single file by ID.
func (s *FileService) IDRetrieve(ctx context.Context, id string) (*FileIdRetrieveResponse, error) {
	var out FileIdRetrieveResponse
	if err := s.Call(ctx, http.MethodGet, fmt.Sprintf("/v2/files/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a stored file.
func (s *FileService) Delete(ctx context.Context, id string) error {
	return s.Call(ctx, http.MethodDelete, fmt.Sprintf("/v2/files/%s", id), nil, nil)
}
