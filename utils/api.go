package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/degennews/web/status"
)

// APIFunc is an API handler that reports failures as errors instead of
// writing them itself.
type APIFunc func(w http.ResponseWriter, r *http.Request) error

// MakeAPIHandler adapts an APIFunc to http.HandlerFunc. A status.APIError
// is written as a JSON body with its status code; any other error becomes
// a plain 500.
func MakeAPIHandler(fn APIFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var apiErr status.APIError
		if errors.As(err, &apiErr) {
			WriteJSON(w, apiErr.StatusCode, map[string]string{"error": apiErr.Message})
			return
		}
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
