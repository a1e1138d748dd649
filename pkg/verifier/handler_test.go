package verifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigcheck/rigcheck/pkg/server"
)

func serve(t *testing.T, v *Verifier, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	v.HandleVerify(w, req)
	return w
}

func TestHandleVerify_MethodNotAllowed(t *testing.T) {
	v := New(sampleStore(t))
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			w := serve(t, v, httptest.NewRequest(method, "/v1/verify?build=gaming-rig", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
		})
	}
}

func TestHandleVerify(t *testing.T) {
	v := New(sampleStore(t))

	tests := []struct {
		name       string
		target     string
		acceptLang string
		wantStatus int
		wantCode   string
		check      func(t *testing.T, r *Report)
	}{
		{
			name:       "valid build",
			target:     "/v1/verify?build=gaming-rig",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, r *Report) {
				assert.Equal(t, "gaming-rig", r.BuildID)
				assert.True(t, r.Valid())
			},
		},
		{
			name:       "lang parameter",
			target:     "/v1/verify?build=starter-kit&lang=de",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, r *Report) {
				assert.Contains(t, r.CompletenessViolations, "Kein Netzteil ausgewählt")
			},
		},
		{
			name:       "accept-language header",
			target:     "/v1/verify?build=starter-kit",
			acceptLang: "de-DE,de;q=0.9,en;q=0.5",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, r *Report) {
				assert.Contains(t, r.CompletenessViolations, "Kein Netzteil ausgewählt")
			},
		},
		{
			name:       "unsupported language falls back to english",
			target:     "/v1/verify?build=starter-kit&lang=fr",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, r *Report) {
				assert.Contains(t, r.CompletenessViolations, "No power supply selected")
			},
		},
		{
			name:       "missing build parameter",
			target:     "/v1/verify",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "malformed lang",
			target:     "/v1/verify?build=gaming-rig&lang=%21%21",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "unknown build",
			target:     "/v1/verify?build=nope",
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			w := serve(t, v, req)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantCode != "" {
				var resp server.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
				return
			}

			var r Report
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
			assert.Equal(t, Kind, r.Kind)
			tt.check(t, &r)
		})
	}
}

func TestHandleVerify_NotFoundSuggestion(t *testing.T) {
	w := serve(t, New(sampleStore(t)), httptest.NewRequest(http.MethodGet, "/v1/verify?build=workstaton", nil))

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "workstation", resp.Details["suggestion"])
	assert.Equal(t, "buildId", resp.Details["field"])
}
