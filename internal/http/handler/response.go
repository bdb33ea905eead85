package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the uniform error envelope. Only a coarse code and a
// safe message ever leave the service; upstream detail stays in the logs.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// setHeaders applies the fixed header set carried by every response.
func setHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Credentials", "true")
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	setHeaders(w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Message: message,
		Code:    code,
	})
}
