package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigcheck/rigcheck/pkg/errors"
)

type sample struct {
	ID       string `validate:"required"`
	Quantity int    `validate:"min=1"`
	Format   string `validate:"omitempty,oneof=json yaml"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         sample
		wantFields []string
		wantMsg    string
	}{
		{name: "valid", in: sample{ID: "a", Quantity: 1}},
		{name: "missing id", in: sample{Quantity: 1}, wantFields: []string{"sample.ID"}, wantMsg: "sample.ID is required"},
		{name: "zero quantity", in: sample{ID: "a"}, wantFields: []string{"sample.Quantity"}, wantMsg: "at least 1"},
		{name: "bad format", in: sample{ID: "a", Quantity: 2, Format: "xml"}, wantFields: []string{"sample.Format"}, wantMsg: "one of [json yaml]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)

			var se *errors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantFields, se.Context["fields"])
		})
	}
}

func TestValidator_Singleton(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
