package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorFixture struct {
	Name   string   `json:"name" validate:"notblank,max=10"`
	Kind   string   `json:"kind" validate:"required,oneof=a b"`
	Labels []string `json:"labels" validate:"omitempty,dive,notblank"`
	Count  *int     `json:"count" validate:"omitempty,gte=1"`
}

func intPtr(v int) *int { return &v }

func TestValidator_FixtureRules(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		input     validatorFixture
		wantField string
		wantMsg   string
	}{
		{"valid", validatorFixture{Name: "ok", Kind: "a"}, "", ""},
		{"blank name", validatorFixture{Name: "   ", Kind: "a"}, "name", "Must not be blank"},
		{"name too long", validatorFixture{Name: "abcdefghijk", Kind: "a"}, "name", "Must be at most 10"},
		{"missing kind", validatorFixture{Name: "ok"}, "kind", "This field is required"},
		{"unknown kind", validatorFixture{Name: "ok", Kind: "c"}, "kind", "Must be one of: a b"},
		{"blank label", validatorFixture{Name: "ok", Kind: "b", Labels: []string{"x", " "}}, "labels", "Must not be blank"},
		{"zero count", validatorFixture{Name: "ok", Kind: "b", Count: intPtr(0)}, "count", "Must be at least 1"},
		{"nil count allowed", validatorFixture{Name: "ok", Kind: "b", Count: nil}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantField, firstInvalidField(err))

			fields := FormatValidationError(err)
			found := false
			for key, msg := range fields {
				if msg == tt.wantMsg {
					found = true
					assert.Contains(t, key, tt.wantField)
				}
			}
			assert.True(t, found, "expected message %q in %v", tt.wantMsg, fields)
		})
	}
}

func TestValidator_FieldOrder(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(DrawRequest{WinnerCount: intPtr(0)})
	require.Error(t, err)
	assert.Equal(t, "categoryId", firstInvalidField(err))
	assert.Len(t, FormatValidationError(err), 3)
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
	assert.Empty(t, firstInvalidField(assert.AnError))
}
