package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorBody is the {code, message} shape used across error responses.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// envelope is the non-proxy response shape; null keys are omitted.
type envelope struct {
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
	Result any    `json:"result,omitempty"`
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode json response")
	}
}

// writeError writes the {detail:{code,message}} error shape.
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]errorBody{
		"detail": {Code: code, Message: message},
	})
}

// writeEnvelope writes the {status, detail, result} success shape.
func writeEnvelope(w http.ResponseWriter, code int, detail string, result any) {
	writeJSON(w, code, envelope{Status: code, Detail: detail, Result: result})
}
