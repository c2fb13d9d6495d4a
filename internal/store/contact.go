package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// ContactStore defines the interface for contact persistence. Every lookup
// and mutation is scoped to ownerID inside the query itself.
type ContactStore interface {
	// Create saves a new contact and sets contact.ID.
	// Returns ErrPhoneExists or ErrContactEmailExists on a uniqueness conflict.
	Create(ctx context.Context, contact *domain.Contact) error

	// ListByOwner returns all contacts of ownerID ordered by ID.
	// The result is never nil.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Contact, error)

	// GetByID returns the contact only if it belongs to ownerID.
	// Returns ErrContactNotFound otherwise.
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Contact, error)

	// Update applies the non-nil fields of patch to the contact if it belongs
	// to ownerID. Returns ErrEmptyPatch, ErrContactNotFound or a duplicate error.
	Update(ctx context.Context, id, ownerID int64, patch ContactPatch) error

	// Delete removes the contact if it belongs to ownerID.
	// Returns ErrContactNotFound otherwise.
	Delete(ctx context.Context, id, ownerID int64) error
}

// ContactPatch carries a partial contact update. A nil field is left unchanged.
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil
}

// Apply returns a copy of c with the patch applied.
func (p ContactPatch) Apply(c domain.Contact) domain.Contact {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	return c
}

// BuildUpdate renders a parameterized UPDATE statement for the fields set in
// the patch, restricted to the contact's id and owner. Column names come from
// a fixed list; caller-provided values only ever travel as arguments.
//
// Placeholders are numbered in order of appearance and never reused, which
// keeps the statement valid for drivers that bind $N positionally.
func (p ContactPatch) BuildUpdate(id, ownerID int64) (string, []any, error) {
	if p.IsEmpty() {
		return "", nil, ErrEmptyPatch
	}

	fields := []struct {
		column string
		value  *string
	}{
		{"name", p.Name},
		{"email", p.Email},
		{"phone", p.Phone},
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+2)
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		args = append(args, *f.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", f.column, len(args)))
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		"UPDATE contacts SET %s WHERE id = $%d AND owner_id = $%d",
		strings.Join(sets, ", "),
		len(args)-1,
		len(args),
	)

	return query, args, nil
}
