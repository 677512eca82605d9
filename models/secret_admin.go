package models

// SetSecretRequest is the body of the secret administration endpoint.
type SetSecretRequest struct {
	Value string `json:"value"`
}
