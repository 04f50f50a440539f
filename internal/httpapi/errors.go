package httpapi

import (
	"encoding/json"
	"net/http"

	"naukariwala-site/internal/logger"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
		Fields    any    `json:"fields,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeErrorFields(w, r, status, code, message, nil)
}

func writeErrorFields(w http.ResponseWriter, r *http.Request, status int, code, message string, fields any) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = logger.RequestIDFrom(r.Context())
	e.Error.Fields = fields
	WriteJSON(w, status, e)
}
