package mocks

import (
	"strings"

	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. Without
// overrides it "hashes" by prefixing with "hashed:".
type MockPasswordHasher struct {
	HashFn   func(password string) (string, error)
	VerifyFn func(password, digest string) bool

	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Verify implements the PasswordHasher interface
func (m *MockPasswordHasher) Verify(password, digest string) bool {
	m.VerifyCallCount++
	if m.VerifyFn != nil {
		return m.VerifyFn(password, digest)
	}
	return strings.TrimPrefix(digest, "hashed:") == password && strings.HasPrefix(digest, "hashed:")
}
