package serializer

import (
	"bytes"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

// ContentTypeJSON is the media type RespondJSON sends.
const ContentTypeJSON = "application/json"

// RespondJSON encodes data as the response body with the given status.
// The body is encoded before any header is sent; an encoding failure yields
// a 500 with no partial body.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err, "status", statusCode)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
