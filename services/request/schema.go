package request

import "time"

// Schema classes owned by genai.request.

// RequestApiVersion is the API version a request was served under.
type RequestApiVersion string

const (
	RequestApiVersionV0 RequestApiVersion = "v0"
	RequestApiVersionV1 RequestApiVersion = "v1"
	RequestApiVersionV2 RequestApiVersion = "v2"
)

// RequestEndpoint identifies which endpoint served a recorded request.
type RequestEndpoint string

const (
	RequestEndpointGenerate RequestEndpoint = "generate"
	RequestEndpointChat     RequestEndpoint = "chat"
	RequestEndpointTokenize RequestEndpoint = "tokenize"
	RequestEndpointEmbed    RequestEndpoint = "embed"
	RequestEndpointModerate RequestEndpoint = "moderate"
)

// RequestOrigin distinguishes API calls from UI-initiated ones.
type RequestOrigin string

const (
	RequestOriginAPI RequestOrigin = "api"
	RequestOriginUI  RequestOrigin = "ui"
)

// RequestStatus is the lifecycle state of a recorded request.
type RequestStatus string

const (
	RequestStatusQueued     RequestStatus = "queued"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusSuccess    RequestStatus = "success"
	RequestStatusError      RequestStatus = "error"
)

// SortDirection orders listing results. Shared by every listing endpoint.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

// RequestResult is one recorded request.
type RequestResult struct {
	ID        string            `json:"id"`
	Status    RequestStatus     `json:"status"`
	Endpoint  RequestEndpoint   `json:"endpoint,omitempty"`
	Origin    RequestOrigin     `json:"origin,omitempty"`
	Version   RequestApiVersion `json:"version,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// RequestRetrieveResponse is returned by the history listing endpoint.
type RequestRetrieveResponse struct {
	Results    []RequestResult `json:"results"`
	TotalCount int             `json:"total_count"`
}

// RequestChatConversationIdRetrieveResponse returns the recorded requests of
// one chat conversation.
type RequestChatConversationIdRetrieveResponse struct {
	Results []RequestResult `json:"results"`
}
