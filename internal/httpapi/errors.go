package httpapi

import (
	"encoding/json"
	"net/http"

	"inferd/internal/engine"
	"inferd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes the error payload shared by all endpoints.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Detail: msg})
}

// errorStatus maps service errors to HTTP status codes. Inference failures of
// any origin collapse to 500; a backend compiled out of the binary is 503.
func errorStatus(err error) int {
	if engine.IsDependencyUnavailable(err) {
		return http.StatusServiceUnavailable
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}
