package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// ContactService manages the contacts of one owner at a time. Every method
// takes the owner id of the authenticated caller; contacts of other owners
// behave as if they did not exist.
type ContactService interface {
	Create(ctx context.Context, ownerID int64, name, email, phone string) (*domain.Contact, error)
	List(ctx context.Context, ownerID int64) ([]*domain.Contact, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Contact, error)
	Update(ctx context.Context, id, ownerID int64, patch store.ContactPatch) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// ContactServiceImpl implements the ContactService interface
type ContactServiceImpl struct {
	contacts store.ContactStore
	logger   *slog.Logger
}

var _ ContactService = (*ContactServiceImpl)(nil)

// NewContactService creates a new ContactService
func NewContactService(contacts store.ContactStore, logger *slog.Logger) *ContactServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactServiceImpl{
		contacts: contacts,
		logger:   logger.With(slog.String("component", "contact_service")),
	}
}

// Create implements ContactService. The phone is stored normalized.
func (s *ContactServiceImpl) Create(
	ctx context.Context,
	ownerID int64,
	name, email, phone string,
) (*domain.Contact, error) {
	if err := validateID(ownerID); err != nil {
		return nil, err
	}

	contact, err := domain.NewContact(ownerID, name, email, phone)
	if err != nil {
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.Int64("owner_id", ownerID))
	return contact, nil
}

// List implements ContactService.
func (s *ContactServiceImpl) List(ctx context.Context, ownerID int64) ([]*domain.Contact, error) {
	if err := validateID(ownerID); err != nil {
		return nil, err
	}

	contacts, err := s.contacts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Get implements ContactService.
func (s *ContactServiceImpl) Get(ctx context.Context, id, ownerID int64) (*domain.Contact, error) {
	if err := validateIDs(id, ownerID); err != nil {
		return nil, err
	}

	contact, err := s.contacts.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// Update implements ContactService. Present fields are validated with the
// creation rules in the order name, phone, email; an empty patch is rejected
// before storage is touched.
func (s *ContactServiceImpl) Update(ctx context.Context, id, ownerID int64, patch store.ContactPatch) error {
	if err := validateIDs(id, ownerID); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return store.ErrEmptyPatch
	}

	normalized, err := ValidateContactPatch(patch)
	if err != nil {
		return err
	}

	if err := s.contacts.Update(ctx, id, ownerID, normalized); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("contact updated",
		slog.Int64("contact_id", id),
		slog.Int64("owner_id", ownerID))
	return nil
}

// Delete implements ContactService.
func (s *ContactServiceImpl) Delete(ctx context.Context, id, ownerID int64) error {
	if err := validateIDs(id, ownerID); err != nil {
		return err
	}

	if err := s.contacts.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// ValidateContactPatch checks every present field of patch and returns a
// copy whose phone, if any, is normalized.
func ValidateContactPatch(patch store.ContactPatch) (store.ContactPatch, error) {
	if patch.Name != nil && !domain.ValidName(*patch.Name) {
		return patch, domain.ErrInvalidName
	}

	if patch.Phone != nil {
		if *patch.Phone == "" {
			return patch, domain.ErrEmptyPhone
		}
		phone := domain.NormalizePhone(*patch.Phone)
		if !domain.ValidPhone(phone) {
			return patch, domain.ErrInvalidPhone
		}
		patch.Phone = &phone
	}

	if patch.Email != nil {
		if *patch.Email == "" {
			return patch, domain.ErrEmptyEmail
		}
		if !domain.ValidEmail(*patch.Email) {
			return patch, domain.ErrInvalidEmail
		}
	}

	return patch, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return nil
}

func validateIDs(ids ...int64) error {
	for _, id := range ids {
		if err := validateID(id); err != nil {
			return err
		}
	}
	return nil
}
