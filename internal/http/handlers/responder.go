package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/reyes-code/football-stats-service/internal/http/requestutil"
	"github.com/reyes-code/football-stats-service/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestutil.RequestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeHTML renders into a buffer and only then commits the status, so a
// template failure becomes a plain 500.
func writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(*bytes.Buffer) error, logger *slog.Logger) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.Error(loggerFromRequest(r, logger), "failed to render page", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warn(loggerFromRequest(r, logger), "failed to write page", slog.Any(logging.FieldError, err))
	}
}

func loggerFromRequest(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
