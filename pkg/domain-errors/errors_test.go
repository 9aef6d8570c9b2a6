package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := New(CodeNotFound, "Vehicle with VIN X not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(CodeConflict, "Vehicle with VIN X already exists.")
	wrapped := fmt.Errorf("create: %w", inner)
	assert.True(t, HasCode(wrapped, CodeConflict))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to save vehicle")

	assert.True(t, HasCode(err, CodeInternal))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save vehicle")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationFields(t *testing.T) {
	fields := map[string]string{"vin": "VIN cannot be null"}
	err := NewValidation(fields)

	require.True(t, HasCode(err, CodeValidation))
	assert.Equal(t, fields, FieldsOf(err))
	assert.Nil(t, FieldsOf(errors.New("plain")))
}
