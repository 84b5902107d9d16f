package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetails_DoesNotMutateOriginal(t *testing.T) {
	base := New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	withDetails := base.WithDetails(map[string]string{"email": "required"})

	assert.Nil(t, base.Details)
	assert.NotNil(t, withDetails.Details)
	assert.Equal(t, base.Code, withDetails.Code)
	assert.Equal(t, base.HTTPCode, withDetails.HTTPCode)
}

func TestWrap_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := Wrap(cause, CodeDatabaseError, "Database error", http.StatusInternalServerError)

	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Contains(t, wrapped.Error(), "DATABASE_ERROR")
}

func TestInvalidTransition(t *testing.T) {
	err := InvalidTransition("accepted", "accepted")

	assert.Equal(t, CodeInvalidStatusTransition, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
	assert.Contains(t, err.Message, "accepted")
}

func TestAs_ExtractsAppError(t *testing.T) {
	var appErr *AppError
	require.True(t, As(ErrBookingNotFound, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	assert.False(t, As(errors.New("plain"), &appErr))
}
