package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"(11) 99999-8888", "11999998888"},
		{"+55 11 99999 8888", "5511999998888"},
		{"11999998888", "11999998888"},
		{"abc", ""},
		{"", ""},
		{"١٢٣", ""}, // non-ASCII digits are not phone digits
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := NormalizePhone(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizePhone(got), "normalization must be idempotent")
		})
	}
}

func TestValidPhone(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidPhone("(11) 99999-8888"))
	assert.True(t, ValidPhone("11999998888"))
	assert.False(t, ValidPhone("1199999888"))
	assert.False(t, ValidPhone("+55 11 99999-8888"))
	assert.False(t, ValidPhone(""))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Senha123", nil},
		{"empty", "", ErrEmptyPassword},
		{"too short", "Ab1", ErrPasswordTooShort},
		{"no uppercase", "senha123", ErrPasswordNoUpper},
		{"no digit", "SenhaForte", ErrPasswordNoDigit},
		{"accented uppercase only", "senhaÉ1", ErrPasswordNoUpper},
		{"arabic-indic digit only", "Senhaa١", ErrPasswordNoDigit},
		{"short wins over uppercase", "abc", ErrPasswordTooShort},
		{"over bcrypt limit", "A1" + strings.Repeat("x", 71), ErrPasswordTooLong},
		{"exactly bcrypt limit", "A1" + strings.Repeat("x", 70), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidNameAndEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidName("João"))
	assert.False(t, ValidName("Ana"))
	assert.True(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("ab"))
	assert.True(t, HasUpper("aB"))
	assert.False(t, HasUpper("ab1"))
	assert.True(t, HasDigit("a1"))
	assert.False(t, HasDigit("aB"))
	assert.False(t, HasUpper("éÉÑ"))
	assert.False(t, HasDigit("١٢٣"))
}
