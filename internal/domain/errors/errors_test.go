package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("username alice")

	assert.True(t, stderrors.Is(err, ErrUsernameTaken))

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "USERNAME_TAKEN", appErr.ErrorCode())
}

func TestBaseError_WithDetailsCopies(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("username: too short")

	assert.Equal(t, "username: too short", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to increment points")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to increment points", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
