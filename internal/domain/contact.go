package domain

// Contact is an address book entry owned by exactly one user.
type Contact struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	OwnerID int64  `json:"usuario_id"`
}

// NewContact builds a contact for ownerID. The phone is validated as given
// and stored with only its digits.
func NewContact(ownerID int64, name, email, phone string) (*Contact, error) {
	contact := &Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		OwnerID: ownerID,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	contact.Phone = NormalizePhone(phone)
	return contact, nil
}

// Validate checks fields in the order name, phone, email.
func (c *Contact) Validate() error {
	if c.OwnerID <= 0 {
		return ErrInvalidOwner
	}

	if !ValidName(c.Name) {
		return ErrInvalidName
	}

	if c.Phone == "" {
		return ErrEmptyPhone
	}
	if !ValidPhone(c.Phone) {
		return ErrInvalidPhone
	}

	return validateEmail(c.Email)
}
