package server

import (
	"net/http"
	"time"

	"github.com/rigcheck/rigcheck/pkg/errors"
	"github.com/rigcheck/rigcheck/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// handleHealth reports liveness; it succeeds as long as the process serves.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	probe(w, r, http.StatusOK, HealthResponse{Status: statusHealthy})
}

// handleReady reports whether the listener is accepting verifications.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		probe(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status: statusNotReady,
			Reason: "listener not started or shutting down",
		})
		return
	}
	probe(w, r, http.StatusOK, HealthResponse{Status: statusReady})
}

func probe(w http.ResponseWriter, r *http.Request, code int, resp HealthResponse) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"method not allowed", false, nil)
		return
	}
	resp.Timestamp = time.Now().UTC()
	serializer.RespondJSON(w, code, resp)
}
