package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{"no cause", New(ErrCodeInvalidRequest, "bad input"), "[INVALID_REQUEST] bad input"},
		{"with cause", Wrap(ErrCodeInternal, "read failed", stderrors.New("disk gone")), "[INTERNAL] read failed: disk gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("outer: %w", Wrap(ErrCodeTimeout, "slow", cause))

	assert.ErrorIs(t, err, cause)

	var se *StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeTimeout, se.Code)
	assert.Equal(t, ErrCodeTimeout, CodeOf(err))
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("buildId", "gaming-rig")

	assert.Equal(t, ErrCodeNotFound, err.Code)
	assert.Equal(t, "buildId", err.Field())
	assert.Equal(t, "gaming-rig", err.Context["value"])
	assert.True(t, IsNotFound(fmt.Errorf("verify: %w", err)))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}

func TestWithContext_InitializesMap(t *testing.T) {
	err := New(ErrCodeInternal, "x").WithContext("k", "v")
	assert.Equal(t, "v", err.Context["k"])
	assert.Equal(t, "", err.Field())
}

func TestCodeOf_DefaultsToInternal(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
}
