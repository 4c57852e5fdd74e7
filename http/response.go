package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-kit/log"

	"loan-fee/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v into a buffer first so a failed encoding does not leave
// a half-written response behind.
func writeJSON(w http.ResponseWriter, logger log.Logger, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Log("msg", "failed to encode response", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log("msg", "failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// writeServiceError maps a fee calculation error onto an HTTP status. Errors the
// caller cannot act on are logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case service.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case service.IsFeeDataError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.Log("msg", "fee calculation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
