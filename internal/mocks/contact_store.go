package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing. Its default
// behavior mirrors the SQL store: globally unique phone and email, phone
// conflicts reported first, and owner-scoped lookups.
type MockContactStore struct {
	CreateFn      func(ctx context.Context, contact *domain.Contact) error
	ListByOwnerFn func(ctx context.Context, ownerID int64) ([]*domain.Contact, error)
	GetByIDFn     func(ctx context.Context, id, ownerID int64) (*domain.Contact, error)
	UpdateFn      func(ctx context.Context, id, ownerID int64, patch store.ContactPatch) error
	DeleteFn      func(ctx context.Context, id, ownerID int64) error

	// UpdateCalls counts Update invocations, including those handled by UpdateFn.
	UpdateCalls int

	mu       sync.Mutex
	contacts map[int64]*domain.Contact
	nextID   int64
}

var _ store.ContactStore = (*MockContactStore)(nil)

// NewMockContactStore creates a mock store holding copies of contacts.
func NewMockContactStore(contacts ...*domain.Contact) *MockContactStore {
	m := &MockContactStore{contacts: make(map[int64]*domain.Contact)}
	for _, c := range contacts {
		stored := *c
		m.contacts[c.ID] = &stored
		m.nextID = max(m.nextID, c.ID)
	}
	return m
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.conflict(0, contact.Phone, contact.Email); err != nil {
		return err
	}
	m.nextID++
	contact.ID = m.nextID
	stored := *contact
	m.contacts[contact.ID] = &stored
	return nil
}

// ListByOwner implements the ContactStore interface
func (m *MockContactStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Contact, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Contact, 0)
	for _, c := range m.contacts {
		if c.OwnerID == ownerID {
			cp := *c
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByID implements the ContactStore interface
func (m *MockContactStore) GetByID(ctx context.Context, id, ownerID int64) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return nil, store.ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, id, ownerID int64, patch store.ContactPatch) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, ownerID, patch)
	}
	if patch.IsEmpty() {
		return store.ErrEmptyPatch
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return store.ErrContactNotFound
	}
	updated := patch.Apply(*c)
	if err := m.conflict(id, updated.Phone, updated.Email); err != nil {
		return err
	}
	m.contacts[id] = &updated
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, id, ownerID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return store.ErrContactNotFound
	}
	delete(m.contacts, id)
	return nil
}

func (m *MockContactStore) conflict(excludeID int64, phone, email string) error {
	var emailTaken bool
	for id, c := range m.contacts {
		if id == excludeID {
			continue
		}
		if c.Phone == phone {
			return store.ErrPhoneExists
		}
		if c.Email == email {
			emailTaken = true
		}
	}
	if emailTaken {
		return store.ErrContactEmailExists
	}
	return nil
}
