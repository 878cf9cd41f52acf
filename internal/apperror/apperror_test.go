package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
)

func TestIsMatchesByKind(t *testing.T) {
	err := apperror.ReferenceNotFound("EmployeeProfile", 42)

	assert.True(t, errors.Is(err, apperror.ErrReferenceNotFound))
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "referenced EmployeeProfile 42 not found", err.Error())
}

func TestIsSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create goal: %w", apperror.Validation("progress", "must be between 0 and 100"))

	require.True(t, errors.Is(err, apperror.ErrValidationFailed))
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
	assert.True(t, apperror.IsClientError(err))
}

func TestStorageUnavailableUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperror.StorageUnavailable(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	assert.False(t, apperror.IsClientError(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, apperror.Kind(""), apperror.KindOf(errors.New("boom")))
}

func TestNotFoundBy(t *testing.T) {
	err := apperror.NotFoundBy("User", "email", "ana@example.com")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, `User with email "ana@example.com" not found`, err.Error())
}
