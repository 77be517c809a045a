package tune

import "time"

// Schema classes owned by genai.tune.

// TuneAssetType selects which artifact of a tuned model to download.
type TuneAssetType string

const (
	TuneAssetTypeLogs    TuneAssetType = "logs"
	TuneAssetTypeVectors TuneAssetType = "vectors"
)

// TuneStatus is the lifecycle state of a tuning job.
type TuneStatus string

const (
	TuneStatusInitializing TuneStatus = "initializing"
	TuneStatusPending      TuneStatus = "pending"
	TuneStatusRunning      TuneStatus = "running"
	TuneStatusCompleted    TuneStatus = "completed"
	TuneStatusFailed       TuneStatus = "failed"
	TuneStatusHalted       TuneStatus = "halted"
	TuneStatusQueued       TuneStatus = "queued"
)

// TuneParameters configures a tuning job.
type TuneParameters struct {
	NumEpochs        int     `json:"num_epochs,omitempty"`
	BatchSize        int     `json:"batch_size,omitempty"`
	LearningRate     float64 `json:"learning_rate,omitempty"`
	AccumulateSteps  int     `json:"accumulate_steps,omitempty"`
	NumVirtualTokens int     `json:"num_virtual_tokens,omitempty"`
}

// TuneResult is one tuning job.
type TuneResult struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ModelID       string          `json:"model_id"`
	Status        TuneStatus      `json:"status"`
	StatusMessage string          `json:"status_message,omitempty"`
	Parameters    *TuneParameters `json:"parameters,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TuneCreateResponse is returned when a tuning job is submitted.
type TuneCreateResponse struct {
	Result TuneResult `json:"result"`
}

// TuneRetrieveResponse is returned by the listing endpoint.
type TuneRetrieveResponse struct {
	Results    []TuneResult `json:"results"`
	TotalCount int          `json:"total_count"`
}

// TuneIdRetrieveResponse is returned when retrieving a single tuning job.
type TuneIdRetrieveResponse struct {
	Result TuneResult `json:"result"`
}

// TuningTypeRetrieveResponse lists the tuning methods available per model.
// This response supersedes the removed TuningType enum; the old name is
// soft-removed in the compatibility table.
type TuningTypeRetrieveResponse struct {
	Results []struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Models []string `json:"models,omitempty"`
	} `json:"results"`
}
