package service

import (
	"encoding/json"
	"net/http"
)

// WriteHttpSuccess writes the standard success envelope.
func WriteHttpSuccess(w http.ResponseWriter, httpCode int, data any) {
	resp := map[string]interface{}{
		"status": "success",
		"code":   httpCode,
		"data":   data,
	}
	writeJSON(w, httpCode, resp)
}

// WriteHttpError writes a standard JSON error response to the http.ResponseWriter.
func WriteHttpError(w http.ResponseWriter, httpCode int, message string) {
	resp := map[string]interface{}{
		"status":  "error",
		"code":    httpCode,
		"message": message,
	}
	writeJSON(w, httpCode, resp)
}

func writeJSON(w http.ResponseWriter, httpCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_ = json.NewEncoder(w).Encode(v)
}
