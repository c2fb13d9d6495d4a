package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/service"
)

// ContactHandler handles the /contatos routes. Every route requires the auth
// middleware and acts on the caller's own contacts only.
type ContactHandler struct {
	contacts  service.ContactService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewContactHandler creates a new ContactHandler with the given dependencies.
func NewContactHandler(contacts service.ContactService, logger *slog.Logger) *ContactHandler {
	if contacts == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("contacts cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactHandler{
		contacts:  contacts,
		validator: newValidator(),
		logger:    logger.With(slog.String("component", "contact_handler")),
	}
}

// List handles GET /contatos/list.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	contacts, err := h.contacts.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, msgListError)
		return
	}

	shared.RespondOK(w, r, msgContactsListed, contactsToResponse(contacts))
}

// Get handles GET /contatos/list/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathID(w, r)
	if !ok {
		return
	}

	contact, err := h.contacts.Get(r.Context(), id, userID)
	if err != nil {
		HandleAPIError(w, r, err, msgGetError)
		return
	}

	shared.RespondOK(w, r, msgContactFetched, contactToResponse(contact))
}

// Create handles POST /contatos/create.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ContactRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	contact, err := h.contacts.Create(r.Context(), userID, req.Nome, req.Email, req.Telefone)
	if err != nil {
		HandleAPIError(w, r, err, msgCreateError)
		return
	}

	shared.RespondOK(w, r, msgContactCreated, contactToResponse(contact))
}

// Update handles PUT /contatos/update/{id}. Only the fields present in the
// body are changed.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathID(w, r)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if err := h.contacts.Update(r.Context(), id, userID, req.Patch()); err != nil {
		HandleAPIError(w, r, err, msgUpdateError)
		return
	}

	shared.RespondOK(w, r, msgContactUpdated, nil)
}

// Delete handles DELETE /contatos/delete/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathID(w, r)
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), id, userID); err != nil {
		HandleAPIError(w, r, err, msgDeleteError)
		return
	}

	shared.RespondOK(w, r, msgContactDeleted, nil)
}
