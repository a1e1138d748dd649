package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigcheck/rigcheck/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{errors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want bool
	}{
		{errors.ErrCodeInvalidRequest, false},
		{errors.ErrCodeNotFound, false},
		{errors.ErrCodeMethodNotAllowed, false},
		{errors.ErrCodeTimeout, true},
		{errors.ErrCodeUnavailable, true},
		{errors.ErrCodeRateLimitExceeded, true},
		{errors.ErrCodeInternal, true},
		{errors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, map[string]any{}))

	a := map[string]any{"a": 1, "shared": "old"}
	b := map[string]any{"b": 2, "shared": "new"}
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "shared": "new"}, mergeDetails(a, b))
	assert.Equal(t, "old", a["shared"], "inputs are not modified")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "bad request", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.Equal(t, "v", resp.Details["k"])
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, errors.ErrCodeNotFound, "gone", false, nil)
	assert.NotEmpty(t, decodeError(t, w).RequestID)
}

func TestWriteErrorFromErr_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	err := errors.NewNotFound("buildId", "gaming-rg").WithContext("suggestion", "gaming-rig")

	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), err, "fallback", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "buildId gaming-rg not found", resp.Message)
	assert.False(t, resp.Retryable)
	assert.Equal(t, map[string]any{"field": "buildId", "value": "gaming-rg", "suggestion": "gaming-rig"}, resp.Details)
}

func TestWriteErrorFromErr_StructuredWithCause(t *testing.T) {
	w := httptest.NewRecorder()
	cause := stderrors.New("disk is gone")
	err := errors.WrapWithContext(errors.ErrCodeUnavailable, "store unavailable", cause, map[string]any{"component": "store"})

	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), err, "fallback", map[string]any{"extra": "yes"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "store unavailable", resp.Message)
	assert.True(t, resp.Retryable)
	assert.Equal(t, "store", resp.Details["component"])
	assert.Equal(t, "yes", resp.Details["extra"])
	assert.Equal(t, "disk is gone", resp.Details["error"])
}

func TestWriteErrorFromErr_PlainErrorIsInternal(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), stderrors.New("boom"), "fallback", map[string]any{"x": "y"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INTERNAL", resp.Code)
	assert.Equal(t, "fallback", resp.Message)
	assert.True(t, resp.Retryable)
	assert.Equal(t, map[string]any{"x": "y", "error": "boom"}, resp.Details)
}
