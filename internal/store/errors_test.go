package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"generic not found", ErrNotFound, true},
		{"user not found", ErrUserNotFound, true},
		{"contact not found", ErrContactNotFound, true},
		{"wrapped contact not found", fmt.Errorf("get: %w", ErrContactNotFound), true},
		{"duplicate is not not-found", ErrPhoneExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"user email", ErrEmailExists, true},
		{"contact phone", ErrPhoneExists, true},
		{"contact email", ErrContactEmailExists, true},
		{"wrapped", fmt.Errorf("create: %w", ErrPhoneExists), true},
		{"not found", ErrUserNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestDuplicateErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.Is(ErrPhoneExists, ErrContactEmailExists))
	assert.False(t, errors.Is(ErrContactEmailExists, ErrEmailExists))
	assert.False(t, errors.Is(ErrEmailExists, ErrPhoneExists))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("with wrapped error", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		err := NewStoreError("contact", "create", "failed to insert contact", cause)

		assert.Equal(t, "create operation on contact failed: failed to insert contact: connection reset", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("user", "get", "no rows", nil)
		assert.Equal(t, "get operation on user failed: no rows", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})
}
