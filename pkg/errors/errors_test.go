package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/moodbrew/moodbrew-backend/pkg/errors"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(apperrors.NewNotFoundError("gone")))
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(stderrors.New("plain")))
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(nil))
}

func TestTypeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", apperrors.NewConflictError("duplicate"))
	assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.TypeOf(err))
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.False(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.NewInternalError("store unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}
