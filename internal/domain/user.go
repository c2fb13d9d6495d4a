package domain

// User represents a registered account. Users are immutable once created.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never expose password hash in JSON
}

// NewUser creates a User from an already hashed password.
// The ID is left at zero and assigned by the store.
func NewUser(name, email, passwordHash string) (*User, error) {
	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if !ValidName(u.Name) {
		return ErrInvalidName
	}

	if err := validateEmail(u.Email); err != nil {
		return err
	}

	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}

	return nil
}
