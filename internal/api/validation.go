package api

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// Custom validator tags shared by the request models.
const (
	tagHasUpper = "has_upper"
	tagHasDigit = "has_digit"
	tagMaxBytes = "bcrypt_len"
	tagPhone    = "phone"
	tagNonEmpty = "nonempty"
)

// newValidator returns a validator with the custom tags registered. Lengths
// checked with min use rune counts, matching domain.ValidName.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(tagHasUpper, func(fl validator.FieldLevel) bool {
		return domain.HasUpper(fl.Field().String())
	})
	_ = v.RegisterValidation(tagHasDigit, func(fl validator.FieldLevel) bool {
		return domain.HasDigit(fl.Field().String())
	})
	_ = v.RegisterValidation(tagMaxBytes, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= domain.MaxPasswordBytes
	})
	_ = v.RegisterValidation(tagNonEmpty, func(fl validator.FieldLevel) bool {
		return fl.Field().String() != ""
	})
	_ = v.RegisterValidation(tagPhone, func(fl validator.FieldLevel) bool {
		return domain.ValidPhone(fl.Field().String())
	})

	return v
}

// fieldMessages maps "Field.tag" (or just "Field" as a fallback) to the
// message reported when that rule fails.
type fieldMessages map[string]string

// messenger is implemented by request models that carry their own messages.
type messenger interface {
	messages() fieldMessages
}

// validationMessage validates req and returns the message of the first
// failing rule. Fields are checked in declaration order and each field's
// tags left to right, so the order of the struct fields is the order in
// which rules are reported.
func validationMessage(v *validator.Validate, req messenger) (string, error) {
	err := v.Struct(req)
	if err == nil {
		return "", nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgInvalidRequest, err
	}

	first := verrs[0]
	msgs := req.messages()
	if msg, ok := msgs[first.StructField()+"."+first.Tag()]; ok {
		return msg, err
	}
	if msg, ok := msgs[first.StructField()]; ok {
		return msg, err
	}
	return msgInvalidRequest, err
}
