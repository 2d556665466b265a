// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// echoValidator wraps a single validator instance shared by all requests.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the Echo request validator.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures onto the validation error
// so the central error handler renders a 422.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var invalid *playground.InvalidValidationError
		if errors.As(err, &invalid) {
			return errors.Wrap(err, "validate request payload")
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
