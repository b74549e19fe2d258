package httpapi

import (
	"encoding/json"
	"net/http"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Trace     string `json:"trace,omitempty"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeErrorTrace(w, r, status, code, message, "")
}

// writeErrorTrace is the full form; only the panic recovery path attaches a
// stack trace.
func writeErrorTrace(w http.ResponseWriter, r *http.Request, status int, code, message, trace string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.Trace = trace
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
