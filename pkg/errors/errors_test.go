package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "days must not be zero")
			},
			expected: "VALIDATION_ERROR: days must not be zero",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection reset")
				return Wrap(StorageError, "failed to read ledger", cause)
			},
			expected: "STORAGE_ERROR: failed to read ledger (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		hasCause     bool
	}{
		{"NewValidationError", func() *AppError { return NewValidationError("bad") }, ValidationError, false},
		{"NewOutOfRangeError", func() *AppError { return NewOutOfRangeError("too far") }, OutOfRangeError, false},
		{"NewNotFoundError", func() *AppError { return NewNotFoundError("missing") }, NotFoundError, false},
		{"NewAlreadyExistsError", func() *AppError { return NewAlreadyExistsError("dup") }, AlreadyExistsError, false},
		{"NewUpstreamUnavailableError", func() *AppError {
			return NewUpstreamUnavailableError("open-meteo down", fmt.Errorf("timeout"))
		}, UpstreamUnavailableError, true},
		{"NewStorageError", func() *AppError {
			return NewStorageError("insert failed", fmt.Errorf("disk full"))
		}, StorageError, true},
		{"NewConfigurationError", func() *AppError {
			return NewConfigurationError("bad env", fmt.Errorf("missing"))
		}, ConfigurationError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()
			assert.Equal(t, tt.expectedType, err.Type)
			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypeStrings(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ValidationError, "VALIDATION_ERROR"},
		{OutOfRangeError, "OUT_OF_RANGE_ERROR"},
		{NotFoundError, "NOT_FOUND_ERROR"},
		{AlreadyExistsError, "ALREADY_EXISTS_ERROR"},
		{UpstreamUnavailableError, "UPSTREAM_UNAVAILABLE_ERROR"},
		{StorageError, "STORAGE_ERROR"},
		{ConfigurationError, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestIsHelpers_SeeWrappedErrors(t *testing.T) {
	inner := NewOutOfRangeError("hourly offset 7")
	wrapped := fmt.Errorf("handler: %w", inner)

	assert.True(t, IsOutOfRangeError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestErrorChaining(t *testing.T) {
	originalErr := fmt.Errorf("connection refused")
	storageErr := NewStorageError("query failed", originalErr)
	upstreamErr := Wrap(UpstreamUnavailableError, "service unavailable", storageErr)

	expected := "UPSTREAM_UNAVAILABLE_ERROR: service unavailable (caused by: STORAGE_ERROR: query failed (caused by: connection refused))"
	assert.Equal(t, expected, upstreamErr.Error())
	assert.Equal(t, storageErr, upstreamErr.Unwrap())
	assert.Equal(t, originalErr, storageErr.Unwrap())
	assert.True(t, IsStorageError(storageErr))
}
