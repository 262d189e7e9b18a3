package utils

import (
	stderrors "errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/shared/errors"
)

type resourcePayload struct {
	Name     string  `json:"name" binding:"required"`
	Capacity float64 `json:"capacity_hours" binding:"gte=0"`
}

func TestFormatBindingError_UsesJSONFieldNames(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(resourcePayload{Capacity: -1})
	require.Error(t, err)

	formatted := FormatBindingError(err)
	require.True(t, errors.IsValidationError(formatted))

	appErr := errors.GetAppError(formatted)
	require.NotNil(t, appErr)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "capacity_hours must be greater than or equal to 0")
}

func TestFormatBindingError_NonValidatorErrorKeepsText(t *testing.T) {
	formatted := FormatBindingError(stderrors.New("unexpected EOF"))
	require.True(t, errors.IsValidationError(formatted))

	appErr := errors.GetAppError(formatted)
	require.NotNil(t, appErr)
	assert.Equal(t, "unexpected EOF", appErr.Message)
}
