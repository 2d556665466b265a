// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerUsecase defines the interface for customer-related business operations.
type CustomerUsecase interface {
	// GetCustomer retrieves a customer projected onto the given relation list.
	GetCustomer(ctx context.Context, id uuid.UUID, relations []string) (*entity.Customer, error)

	// UpdateCustomer applies a partial update inside a transaction and returns
	// the customer reloaded with the given relation list.
	UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput, relations []string) (*entity.Customer, error)
}

// --- Input DTOs ---

// CustomerGroupRef references a customer group by id only.
type CustomerGroupRef struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// UpdateCustomerInput defines the data accepted by a customer update.
// Nil pointers mean "leave untouched"; Groups set to an empty list clears
// all memberships.
type UpdateCustomerInput struct {
	Email     *string             `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string             `json:"first_name,omitempty"`
	LastName  *string             `json:"last_name,omitempty"`
	Phone     *string             `json:"phone,omitempty"`
	Password  *string             `json:"password,omitempty" validate:"omitempty,min=8"`
	Metadata  map[string]any      `json:"metadata,omitempty"`
	Groups    *[]CustomerGroupRef `json:"groups,omitempty" validate:"omitempty,dive"`
}
