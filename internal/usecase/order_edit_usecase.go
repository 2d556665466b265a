package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderEditUsecase defines the interface for order-edit business operations.
type OrderEditUsecase interface {
	// GetOrderEdit retrieves an order edit with the fixed default projection
	// and freshly decorated totals.
	GetOrderEdit(ctx context.Context, id uuid.UUID) (*entity.OrderEdit, error)

	// ConfirmOrderEdit moves a confirmable edit to the confirmed state,
	// recording the acting user, and commits the edit's line items to the
	// parent order. Confirming an already-confirmed edit is a no-op.
	ConfirmOrderEdit(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*entity.OrderEdit, error)
}
