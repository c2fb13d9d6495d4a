package auth

import (
	"strings"
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{0, bcrypt.DefaultCost},
		{1, bcrypt.MinCost},
		{12, 12},
		{99, bcrypt.MaxCost},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewBcryptHasher(tt.in).Cost())
	}
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("Segura123")
	require.NoError(t, err)
	second, err := h.Hash("Segura123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "digests are salted")
	assert.NotContains(t, first, "Segura123")
	assert.True(t, h.Verify("Segura123", first))
	assert.True(t, h.Verify("Segura123", second))
	assert.False(t, h.Verify("Segura124", first))
	assert.False(t, h.Verify("", first))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "plaintext", "$2a$10$short"} {
		assert.False(t, h.Verify("Segura123", digest), "digest %q", digest)
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash("A1" + strings.Repeat("a", 71))
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	assert.ErrorIs(t, err, domain.ErrValidation)

	digest, err := h.Hash("A1" + strings.Repeat("a", 70))
	require.NoError(t, err)
	assert.True(t, h.Verify("A1"+strings.Repeat("a", 70), digest))
}
