package user

import "time"

// Schema classes owned by genai.user.

// UserApiKey is the account's API key record. Formerly UserCreateResultApiKey.
type UserApiKey struct {
	Value       string    `json:"value,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	GeneratedAt time.Time `json:"generated_at,omitempty"`
}

// UserResult is the account record. Formerly UserResponseResult.
type UserResult struct {
	ID               string      `json:"id"`
	FirstName        string      `json:"first_name,omitempty"`
	LastName         string      `json:"last_name,omitempty"`
	Email            string      `json:"email,omitempty"`
	DataUsageConsent bool        `json:"data_usage_consent"`
	APIKey           *UserApiKey `json:"api_key,omitempty"`
}

// UserCreateResponse is returned when an account is provisioned.
type UserCreateResponse struct {
	Result UserResult `json:"result"`
}

// UserRetrieveResponse is returned by the account endpoint.
type UserRetrieveResponse struct {
	Result UserResult `json:"result"`
}

// UserPatchResponse is returned after a partial account update.
type UserPatchResponse struct {
	Result UserResult `json:"result"`
}
