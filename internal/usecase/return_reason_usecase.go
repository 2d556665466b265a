package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReturnReasonUsecase defines the interface for return-reason business operations.
type ReturnReasonUsecase interface {
	// GetReturnReason retrieves a return reason projected onto the given relation list.
	GetReturnReason(ctx context.Context, id uuid.UUID, relations []string) (*entity.ReturnReason, error)

	// UpdateReturnReason applies a partial update inside a transaction and
	// returns the reason reloaded with the given relation list.
	UpdateReturnReason(ctx context.Context, id uuid.UUID, input *UpdateReturnReasonInput, relations []string) (*entity.ReturnReason, error)
}

// UpdateReturnReasonInput defines the data accepted by a return reason update.
// The unique value code is assigned at creation and cannot be updated.
type UpdateReturnReasonInput struct {
	Label       *string        `json:"label,omitempty"`
	Description *string        `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
