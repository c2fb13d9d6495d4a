package api

import (
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Client-facing messages.
const (
	msgInvalidRequest      = "Requisição inválida."
	msgInvalidName         = "Nome inválido. Deve ter pelo menos 4 caracteres."
	msgPasswordRequired    = "Senha obrigatória."
	msgPasswordTooShort    = "Senha inválida. Deve ter pelo menos 6 caracteres."
	msgPasswordNoUpper     = "Senha inválida. Deve conter pelo menos uma letra maiúscula."
	msgPasswordNoDigit     = "Senha inválida. Deve conter pelo menos um número."
	msgPasswordTooLong     = "Senha inválida. Deve ter no máximo 72 bytes."
	msgEmailRequired       = "Email inválido. Insira um email."
	msgEmailNoAt           = "Email inválido. Deve conter '@'."
	msgContactEmailInvalid = "Email inválido. Insira um email válido."
	msgPhoneRequired       = "Telefone obrigatório."
	msgPhoneInvalid        = "Telefone inválido. Deve ter 11 números."
	msgMissingCredentials  = "Email e senha são obrigatórios."
	msgInvalidCredentials  = "Credenciais inválidas."
	msgInvalidID           = "ID inválido. Deve ser positivo."
	msgEmptyPatch          = "Nenhum campo informado para atualização."
	msgEmailExists         = "Email já cadastrado."
	msgPhoneExists         = "Telefone já cadastrado."
	msgContactNotFound     = "Contato não encontrado ou acesso não autorizado."
	msgUserNotFound        = "Usuário não encontrado no sistema."
	msgInternalError       = "Erro interno do servidor."

	msgUserCreated     = "Usuário criado com sucesso."
	msgLoggedIn        = "Login realizado com sucesso."
	msgTokenRefreshed  = "Token atualizado com sucesso."
	msgContactsListed  = "Contatos listados com sucesso."
	msgContactFetched  = "Contato obtido com sucesso."
	msgContactCreated  = "Contato criado com sucesso."
	msgContactUpdated  = "Contato atualizado com sucesso."
	msgContactDeleted  = "Contato deletado com sucesso."
	msgCreateUserError = "Erro ao criar usuário."
	msgLoginError      = "Erro ao realizar login."
	msgRefreshError    = "Erro ao atualizar token."
	msgListError       = "Erro ao listar contatos."
	msgGetError        = "Erro ao obter contato."
	msgCreateError     = "Erro ao criar contato."
	msgUpdateError     = "Erro ao atualizar contato."
	msgDeleteError     = "Erro ao deletar contato."
)

// TokenTypeBearer is the token_type reported alongside issued tokens.
const TokenTypeBearer = "bearer"

// CreateUserRequest is the body of POST /autenticacao/create. Fields are
// declared in the order their rules are reported. The password travels in
// senha_hash and is hashed server side.
type CreateUserRequest struct {
	Nome      string `json:"nome"       validate:"required,min=4"`
	SenhaHash string `json:"senha_hash" validate:"required,min=6,has_upper,has_digit,bcrypt_len"`
	Email     string `json:"email"      validate:"required,contains=@"`
}

func (CreateUserRequest) messages() fieldMessages {
	return fieldMessages{
		"Nome":                 msgInvalidName,
		"SenhaHash.required":   msgPasswordRequired,
		"SenhaHash.min":        msgPasswordTooShort,
		"SenhaHash.has_upper":  msgPasswordNoUpper,
		"SenhaHash.has_digit":  msgPasswordNoDigit,
		"SenhaHash.bcrypt_len": msgPasswordTooLong,
		"Email.required":       msgEmailRequired,
		"Email.contains":       msgEmailNoAt,
	}
}

// LoginRequest is the body of POST /autenticacao/login.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

func (LoginRequest) messages() fieldMessages {
	return fieldMessages{
		"Email": msgMissingCredentials,
		"Senha": msgMissingCredentials,
	}
}

// ContactRequest is the body of POST /contatos/create.
type ContactRequest struct {
	Nome     string `json:"nome"     validate:"required,min=4"`
	Telefone string `json:"telefone" validate:"required,phone"`
	Email    string `json:"email"    validate:"required,contains=@"`
}

func (ContactRequest) messages() fieldMessages {
	return fieldMessages{
		"Nome":              msgInvalidName,
		"Telefone.required": msgPhoneRequired,
		"Telefone.phone":    msgPhoneInvalid,
		"Email":             msgContactEmailInvalid,
	}
}

// UpdateContactRequest is the body of PUT /contatos/update/{id}. An absent or
// null field is left unchanged; a present one must pass the creation rule.
// nonempty stands in for required, which accepts any non-nil pointer.
type UpdateContactRequest struct {
	Nome     *string `json:"nome"     validate:"omitnil,min=4"`
	Telefone *string `json:"telefone" validate:"omitnil,nonempty,phone"`
	Email    *string `json:"email"    validate:"omitnil,nonempty,contains=@"`
}

func (UpdateContactRequest) messages() fieldMessages {
	return fieldMessages{
		"Nome":              msgInvalidName,
		"Telefone.nonempty": msgPhoneRequired,
		"Telefone.phone":    msgPhoneInvalid,
		"Email.nonempty":    msgContactEmailInvalid,
		"Email.contains":    msgEmailNoAt,
	}
}

// Patch converts the request into a store patch.
func (req UpdateContactRequest) Patch() store.ContactPatch {
	return store.ContactPatch{
		Name:  req.Nome,
		Email: req.Email,
		Phone: req.Telefone,
	}
}

// LoginResponse is the data of a successful JSON login.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// TokenResponse carries a single access token. It is the raw body of the
// form login and the data of a refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ContactResponse is the JSON shape of a contact.
type ContactResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	UsuarioID int64  `json:"usuario_id"`
}

// UserResponse is the JSON shape of a user. The password hash is never part
// of it.
type UserResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

func contactToResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Nome:      c.Name,
		Email:     c.Email,
		Telefone:  c.Phone,
		UsuarioID: c.OwnerID,
	}
}

func contactsToResponse(contacts []*domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactToResponse(c))
	}
	return out
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Nome: u.Name, Email: u.Email}
}
