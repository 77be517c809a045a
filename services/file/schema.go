package file

import "time"

// Schema classes owned by genai.file. These mirror the generated API schema;
// all of them are re-exported from the aggregated genai.schema namespace.

// FilePurpose states what an uploaded file is used for.
type FilePurpose string

const (
	FilePurposeTune     FilePurpose = "tune"
	FilePurposeTemplate FilePurpose = "template"
)

// FileListSortBy selects the sort key for file listings.
type FileListSortBy string

const (
	FileListSortByName      FileListSortBy = "name"
	FileListSortByBytes     FileListSortBy = "bytes"
	FileListSortByCreatedAt FileListSortBy = "created_at"
)

// FileResult is one stored file.
type FileResult struct {
	ID        string      `json:"id"`
	FileName  string      `json:"file_name"`
	Purpose   FilePurpose `json:"purpose"`
	Bytes     int         `json:"bytes"`
	CreatedAt time.Time   `json:"created_at"`
}

// FileCreateResponse is returned by the upload endpoint.
type FileCreateResponse struct {
	Result FileResult `json:"result"`
}

// FileRetrieveResponse is returned by the listing endpoint.
type FileRetrieveResponse struct {
	Results    []FileResult `json:"results"`
	TotalCount int          `json:"total_count"`
}

// FileIdRetrieveResponse is returned when retrieving a single file.
type FileIdRetrieveResponse struct {
	Result FileResult `json:"result"`
}
