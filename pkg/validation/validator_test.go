package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=a b"`
	Month  string  `json:"month" validate:"yearmonth"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(sample{Name: "ok", Amount: 1, Kind: "a", Month: "2024-03"}))
	require.NoError(t, v.Validate(sample{Name: "ok", Amount: 1}))

	err := v.Validate(sample{Name: "toolong", Amount: 0, Kind: "c", Month: "2024-13"})
	require.Error(t, err)

	msgs := FormatValidationError(err)
	assert.Equal(t, map[string]string{
		"name":   "Must be at most 5",
		"amount": "Must be greater than 0",
		"kind":   "Must be one of: a b",
		"month":  "Must be formatted YYYY-MM",
	}, msgs)
}

func TestFormatValidationError_Other(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

func TestYearMonth(t *testing.T) {
	v := New()
	for _, m := range []string{"2024-01", "1999-12"} {
		assert.NoError(t, v.Validate(sample{Name: "x", Amount: 1, Month: m}), m)
	}
	for _, m := range []string{"2024-1", "2024/01", "2024-00", "abcd-01"} {
		assert.Error(t, v.Validate(sample{Name: "x", Amount: 1, Month: m}), m)
	}
}
