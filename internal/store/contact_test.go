package store

import (
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestContactPatchBuildUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		patch     ContactPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "single field",
			patch:     ContactPatch{Phone: strPtr("11988887777")},
			wantQuery: "UPDATE contacts SET phone = $1 WHERE id = $2 AND owner_id = $3",
			wantArgs:  []any{"11988887777", int64(5), int64(9)},
		},
		{
			name:      "all fields",
			patch:     ContactPatch{Name: strPtr("Maria"), Email: strPtr("m@x"), Phone: strPtr("11988887777")},
			wantQuery: "UPDATE contacts SET name = $1, email = $2, phone = $3 WHERE id = $4 AND owner_id = $5",
			wantArgs:  []any{"Maria", "m@x", "11988887777", int64(5), int64(9)},
		},
		{
			name:      "name and phone",
			patch:     ContactPatch{Name: strPtr("Maria"), Phone: strPtr("11988887777")},
			wantQuery: "UPDATE contacts SET name = $1, phone = $2 WHERE id = $3 AND owner_id = $4",
			wantArgs:  []any{"Maria", "11988887777", int64(5), int64(9)},
		},
		{
			name:      "hostile value stays an argument",
			patch:     ContactPatch{Name: strPtr("x'; DROP TABLE contacts; --")},
			wantQuery: "UPDATE contacts SET name = $1 WHERE id = $2 AND owner_id = $3",
			wantArgs:  []any{"x'; DROP TABLE contacts; --", int64(5), int64(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			query, args, err := tt.patch.BuildUpdate(5, 9)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestContactPatchEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, ContactPatch{}.IsEmpty())
	assert.False(t, ContactPatch{Email: strPtr("")}.IsEmpty(), "a present empty value is still a change")

	_, _, err := ContactPatch{}.BuildUpdate(1, 1)
	assert.ErrorIs(t, err, ErrEmptyPatch)
}

func TestContactPatchApply(t *testing.T) {
	t.Parallel()

	original := domain.Contact{ID: 1, Name: "Maria", Email: "m@x", Phone: "11999998888", OwnerID: 2}
	patched := ContactPatch{Email: strPtr("maria@x")}.Apply(original)

	assert.Equal(t, "maria@x", patched.Email)
	assert.Equal(t, "Maria", patched.Name)
	assert.Equal(t, "11999998888", patched.Phone)
	assert.Equal(t, "m@x", original.Email, "original is not modified")
}
