package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderEditNotFound is a domain-specific error returned when an order edit is not found.
var ErrOrderEditNotFound = errors.New("order edit not found")

// OrderEditRepository defines the standard operations for order edit persistence.
type OrderEditRepository interface {
	// FindByID retrieves a single order edit by its unique ID without relations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderEdit, error)

	// FindByIDWithRelations retrieves an order edit by ID, preloading the
	// named relations (supports nested names such as "order.shipping_methods").
	FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.OrderEdit, error)

	// Update persists the edit's status and confirmation stamps.
	Update(ctx context.Context, edit *entity.OrderEdit) error

	// CommitItemsToOrder detaches the parent order's current line items and
	// attaches the edit's proposed set in their place.
	CommitItemsToOrder(ctx context.Context, edit *entity.OrderEdit) error
}
