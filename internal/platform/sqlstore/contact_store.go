package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

const (
	insertContactQuery = `
		INSERT INTO contacts (name, email, phone, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	selectContactsByOwnerQuery = `
		SELECT id, name, email, phone, owner_id
		FROM contacts
		WHERE owner_id = $1
		ORDER BY id
	`
	selectContactQuery = `
		SELECT id, name, email, phone, owner_id
		FROM contacts
		WHERE id = $1 AND owner_id = $2
	`
	deleteContactQuery = `
		DELETE FROM contacts
		WHERE id = $1 AND owner_id = $2
	`
	phoneTakenQuery = `
		SELECT COUNT(*)
		FROM contacts
		WHERE phone = $1 AND id <> $2
	`
)

// ContactStore implements store.ContactStore.
type ContactStore struct {
	db      store.Connector
	dialect Dialect
	logger  *slog.Logger
}

// Ensure ContactStore implements store.ContactStore interface
var _ store.ContactStore = (*ContactStore)(nil)

// NewContactStore creates a ContactStore. Each call acquires its own
// connection from db and releases it before returning.
func NewContactStore(db store.Connector, dialect Dialect, logger *slog.Logger) *ContactStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "contact_store")),
	}
}

// Create implements store.ContactStore.Create.
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		err := store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			return tx.QueryRowContext(ctx, insertContactQuery,
				contact.Name, contact.Email, contact.Phone, contact.OwnerID).
				Scan(&contact.ID)
		})
		return s.classify(ctx, conn, err, &contact.Phone, 0)
	})
	if err != nil {
		return s.wrap(log, "create", err, slog.Int64("owner_id", contact.OwnerID))
	}

	log.Info("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.Int64("owner_id", contact.OwnerID))
	return nil
}

// ListByOwner implements store.ContactStore.ListByOwner.
func (s *ContactStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contacts := make([]*domain.Contact, 0)
	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectContactsByOwnerQuery, ownerID)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var c domain.Contact
			if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OwnerID); err != nil {
				return err
			}
			contacts = append(contacts, &c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, s.wrap(log, "list", err, slog.Int64("owner_id", ownerID))
	}

	log.Debug("contacts listed",
		slog.Int64("owner_id", ownerID),
		slog.Int("count", len(contacts)))
	return contacts, nil
}

// GetByID implements store.ContactStore.GetByID.
func (s *ContactStore) GetByID(ctx context.Context, id, ownerID int64) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var c domain.Contact
	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, selectContactQuery, id, ownerID).
			Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OwnerID)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrContactNotFound
		}
		return err
	})
	if err != nil {
		return nil, s.wrap(log, "get", err,
			slog.Int64("contact_id", id),
			slog.Int64("owner_id", ownerID))
	}

	return &c, nil
}

// Update implements store.ContactStore.Update.
func (s *ContactStore) Update(ctx context.Context, id, ownerID int64, patch store.ContactPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := patch.BuildUpdate(id, ownerID)
	if err != nil {
		return err
	}

	err = store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		err := store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}
			return checkRowsAffected(result, store.ErrContactNotFound)
		})
		return s.classify(ctx, conn, err, patch.Phone, id)
	})
	if err != nil {
		return s.wrap(log, "update", err,
			slog.Int64("contact_id", id),
			slog.Int64("owner_id", ownerID))
	}

	log.Info("contact updated",
		slog.Int64("contact_id", id),
		slog.Int64("owner_id", ownerID))
	return nil
}

// Delete implements store.ContactStore.Delete.
func (s *ContactStore) Delete(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx, deleteContactQuery, id, ownerID)
			if err != nil {
				return err
			}
			return checkRowsAffected(result, store.ErrContactNotFound)
		})
	})
	if err != nil {
		return s.wrap(log, "delete", err,
			slog.Int64("contact_id", id),
			slog.Int64("owner_id", ownerID))
	}

	log.Info("contact deleted",
		slog.Int64("contact_id", id),
		slog.Int64("owner_id", ownerID))
	return nil
}

// classify turns constraint violations into store errors. It runs on the
// same connection after the failed transaction has been rolled back. When a
// write collides on both phone and email, the phone conflict is reported.
func (s *ContactStore) classify(
	ctx context.Context,
	conn *sql.Conn,
	err error,
	phone *string,
	excludeID int64,
) error {
	switch {
	case err == nil:
		return nil
	case s.dialect.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: contact owner does not exist", store.ErrInvalidEntity)
	case !s.dialect.IsUniqueViolation(err):
		return err
	case phone == nil:
		return store.ErrContactEmailExists
	}

	var taken int
	if qerr := conn.QueryRowContext(ctx, phoneTakenQuery, *phone, excludeID).Scan(&taken); qerr != nil {
		return fmt.Errorf("%w: unable to resolve conflicting field: %v", store.ErrDuplicate, qerr)
	}
	if taken > 0 {
		return store.ErrPhoneExists
	}
	return store.ErrContactEmailExists
}

// wrap logs err and returns it unchanged when it is already a store sentinel,
// or wrapped in a StoreError otherwise.
func (s *ContactStore) wrap(log *slog.Logger, op string, err error, attrs ...any) error {
	if store.IsNotFoundError(err) || store.IsDuplicateError(err) || errors.Is(err, store.ErrInvalidEntity) {
		log.Debug("contact operation rejected",
			append([]any{slog.String("operation", op), slog.String("error", err.Error())}, attrs...)...)
		return err
	}

	log.Error("contact operation failed",
		append([]any{
			slog.String("operation", op),
			slog.String("error", err.Error()),
			slog.String("dialect", s.dialect.Name()),
		}, attrs...)...)
	return store.NewStoreError("contact", op, "database operation failed", err)
}
