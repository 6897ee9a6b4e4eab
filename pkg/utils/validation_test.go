package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string    `json:"name" validate:"required,min=3"`
	Start time.Time `json:"startDate" validate:"required"`
	End   time.Time `json:"endDate" validate:"required,gtfield=Start"`
}

func TestFieldErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()
	now := time.Now()

	err := v.Struct(sampleForm{Name: "ab", Start: now, End: now.Add(-time.Hour)})
	require.Error(t, err)

	assert.Equal(t, []FieldError{
		{Field: "name", Rule: "min"},
		{Field: "endDate", Rule: "gtfield"},
	}, FieldErrors(err))
}

func TestFieldErrorsNil(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Equal(t, []FieldError{{Field: "", Rule: "invalid"}}, FieldErrors(errors.New("decode")))
}
