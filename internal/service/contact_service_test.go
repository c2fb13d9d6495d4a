package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/mocks"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seededContacts() *mocks.MockContactStore {
	return mocks.NewMockContactStore(
		&domain.Contact{ID: 1, Name: "Maria Santos", Email: "maria@email.com", Phone: "11999998888", OwnerID: 10},
		&domain.Contact{ID: 2, Name: "Pedro Lima", Email: "pedro@email.com", Phone: "11988887777", OwnerID: 10},
		&domain.Contact{ID: 3, Name: "Carla Dias", Email: "carla@email.com", Phone: "21977776666", OwnerID: 20},
	)
}

func TestContactService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		ownerID int64
		cName   string
		email   string
		phone   string
		wantErr error
	}{
		{"valid formatted phone", 10, "Ana Souza", "ana@email.com", "(11) 91234-5678", nil},
		{"duplicate phone", 20, "Ana Souza", "ana@email.com", "11 99999 8888", store.ErrPhoneExists},
		{"duplicate email", 10, "Ana Souza", "maria@email.com", "11912345678", store.ErrContactEmailExists},
		{"short name", 10, "Ana", "ana@email.com", "11912345678", domain.ErrInvalidName},
		{"missing phone", 10, "Ana Souza", "ana@email.com", "", domain.ErrEmptyPhone},
		{"bad phone", 10, "Ana Souza", "ana@email.com", "1234", domain.ErrInvalidPhone},
		{"bad email", 10, "Ana Souza", "ana", "11912345678", domain.ErrInvalidEmail},
		{"invalid owner", 0, "Ana Souza", "ana@email.com", "11912345678", domain.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := service.NewContactService(seededContacts(), quietLogger())

			c, err := svc.Create(ctx, tt.ownerID, tt.cName, tt.email, tt.phone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "11912345678", c.Phone)
			assert.Equal(t, tt.ownerID, c.OwnerID)
			assert.Positive(t, c.ID)
		})
	}
}

func TestContactService_ListAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := service.NewContactService(seededContacts(), quietLogger())

	list, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)

	empty, err := svc.List(ctx, 30)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	c, err := svc.Get(ctx, 3, 20)
	require.NoError(t, err)
	assert.Equal(t, "Carla Dias", c.Name)

	_, err = svc.Get(ctx, 3, 10)
	assert.ErrorIs(t, err, store.ErrContactNotFound)

	_, err = svc.Get(ctx, -1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestContactService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		patch   store.ContactPatch
		wantErr error
	}{
		{"rename", 1, store.ContactPatch{Name: strPtr("Maria Souza")}, nil},
		{"formatted phone", 1, store.ContactPatch{Phone: strPtr("(11) 90000-1111")}, nil},
		{"empty patch", 1, store.ContactPatch{}, store.ErrEmptyPatch},
		{"short name", 1, store.ContactPatch{Name: strPtr("Ma")}, domain.ErrInvalidName},
		{"empty name", 1, store.ContactPatch{Name: strPtr("")}, domain.ErrInvalidName},
		{"empty phone", 1, store.ContactPatch{Phone: strPtr("")}, domain.ErrEmptyPhone},
		{"bad phone", 1, store.ContactPatch{Phone: strPtr("123")}, domain.ErrInvalidPhone},
		{"empty email", 1, store.ContactPatch{Email: strPtr("")}, domain.ErrEmptyEmail},
		{"bad email", 1, store.ContactPatch{Email: strPtr("maria")}, domain.ErrInvalidEmail},
		{
			"name checked before phone",
			1,
			store.ContactPatch{Name: strPtr("Ma"), Phone: strPtr("1")},
			domain.ErrInvalidName,
		},
		{"phone of another contact", 1, store.ContactPatch{Phone: strPtr("11988887777")}, store.ErrPhoneExists},
		{"other owner", 3, store.ContactPatch{Name: strPtr("Intruso")}, store.ErrContactNotFound},
		{"invalid id", 0, store.ContactPatch{Name: strPtr("Maria Souza")}, domain.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			contacts := seededContacts()
			svc := service.NewContactService(contacts, quietLogger())

			err := svc.Update(ctx, tt.id, 10, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestContactService_UpdateValidationSkipsStore(t *testing.T) {
	t.Parallel()
	contacts := seededContacts()
	svc := service.NewContactService(contacts, quietLogger())

	require.Error(t, svc.Update(context.Background(), 1, 10, store.ContactPatch{}))
	require.Error(t, svc.Update(context.Background(), 1, 10, store.ContactPatch{Phone: strPtr("12")}))
	assert.Zero(t, contacts.UpdateCalls)
}

func TestContactService_UpdateStoresNormalizedPhone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	contacts := seededContacts()
	svc := service.NewContactService(contacts, quietLogger())

	require.NoError(t, svc.Update(ctx, 1, 10, store.ContactPatch{Phone: strPtr("(11) 90000-1111")}))

	c, err := svc.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "11900001111", c.Phone)
	assert.Equal(t, "Maria Santos", c.Name)
}

func TestContactService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := service.NewContactService(seededContacts(), quietLogger())

	assert.ErrorIs(t, svc.Delete(ctx, 1, 20), store.ErrContactNotFound)
	require.NoError(t, svc.Delete(ctx, 1, 10))

	_, err := svc.Get(ctx, 1, 10)
	assert.ErrorIs(t, err, store.ErrContactNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, 10), store.ErrContactNotFound)
}

func TestValidateContactPatch(t *testing.T) {
	t.Parallel()

	in := store.ContactPatch{Phone: strPtr("(11) 90000-1111"), Email: strPtr("a@b")}
	out, err := service.ValidateContactPatch(in)
	require.NoError(t, err)
	assert.Equal(t, "11900001111", *out.Phone)
	assert.Equal(t, "(11) 90000-1111", *in.Phone, "the input patch is not modified")
}
