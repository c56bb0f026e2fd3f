package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned by the JSON API.
const (
	CodeBadRequest      = "bad_request"
	CodeModuleNotReady  = "module_not_ready"
	CodeGenerateFailed  = "generate_failed"
	CodeUnknownLanguage = "unknown_language"
	CodeInvalidValue    = "invalid_value"
	CodeStorageFailed   = "storage_failed"
)
