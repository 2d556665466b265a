package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReturnReasonNotFound is a domain-specific error returned when a return reason is not found.
var ErrReturnReasonNotFound = errors.New("return reason not found")

// ReturnReasonRepository defines the standard operations for return reason persistence.
type ReturnReasonRepository interface {
	// FindByID retrieves a single return reason by its unique ID without relations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnReason, error)

	// FindByIDWithRelations retrieves a return reason by ID, preloading the
	// named relations. Relation names must come from entity.ReturnReasonRelations.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.ReturnReason, error)

	// Update persists the provided return reason fields.
	Update(ctx context.Context, reason *entity.ReturnReason) error
}
