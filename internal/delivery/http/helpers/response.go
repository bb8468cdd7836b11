package helpers

import (
	"encoding/json"
	"net/http"
)

// Messages shared by handlers. Storage details are never echoed to clients.
const (
	MsgInternalError    = "Internal server error"
	MsgValidationFailed = "Validation failed"
	MsgInvalidBody      = "Invalid request body"
	MsgUnauthorized     = "Unauthorized"
	MsgTooManyRequests  = "Too many requests"
)

// APIResponse is the standardized envelope for all API responses.
// swagger:model APIResponse
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess writes statusCode and an envelope with success=true and data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteJSONMessage writes a successful envelope carrying a human readable message.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, data any, message string) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// WriteJSONError writes statusCode and an envelope with success=false and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: false, Message: message})
}

// WriteValidationError writes a 400 envelope listing every validation failure.
func WriteValidationError(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: MsgValidationFailed, Errors: errs})
}

// WriteRaw writes body as JSON without the envelope.
func WriteRaw(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, statusCode, body)
}
