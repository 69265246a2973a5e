package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorMessage is a single error entry in an API error response.
type ErrorMessage struct {
	// Error message
	// example: Username already taken
	Message string `json:"message"`
}

// ErrorResponse is the error body shape shared by every endpoint:
// {"errors":[{"message":"..."}]}
// swagger:model ErrorResponse
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

// writeErrors writes an ErrorResponse with the given status.
func writeErrors(w http.ResponseWriter, status int, messages ...string) {
	errs := make([]ErrorMessage, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, ErrorMessage{Message: m})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: errs})
}

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// MethodNotAllowed answers requests with an unsupported method on a
// known path. Wired as the router's MethodNotAllowed handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrors(w, http.StatusMethodNotAllowed, "Method not supported, try another method")
}
