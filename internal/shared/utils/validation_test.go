package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestFormatBindingError_NonValidationError(t *testing.T) {
	err := errors.New("unexpected EOF")
	assert.Equal(t, "unexpected EOF", FormatBindingError(err))
}

func TestFormatBindingError_ValidationErrors(t *testing.T) {
	type payload struct {
		Name     string `validate:"required"`
		Priority int    `validate:"gte=0"`
		Scope    string `validate:"oneof=tenant partner global"`
	}

	err := validator.New().Struct(payload{Priority: -1, Scope: "bogus"})
	assert.Error(t, err)

	msg := FormatBindingError(err)
	assert.Contains(t, msg, "Name is required")
	assert.Contains(t, msg, "Priority must be greater than or equal to 0")
	assert.Contains(t, msg, "Scope must be one of [tenant partner global]")
}
