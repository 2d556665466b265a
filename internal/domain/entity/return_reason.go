package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReturnReason is a lookup entity describing why an item came back.
// Reasons form a shallow hierarchy: a child reason refines its parent
// (e.g. "damaged" -> "damaged_in_transit"). Value is a unique machine code
// assigned at creation and immutable afterwards; only the display fields
// may be updated.
type ReturnReason struct {
	ID                   uuid.UUID       `json:"id"`
	Value                string          `json:"value"`
	Label                string          `json:"label"`
	Description          string          `json:"description,omitempty"`
	ParentReturnReasonID *uuid.UUID      `json:"parent_return_reason_id,omitempty"`
	ParentReturnReason   *ReturnReason   `json:"parent_return_reason,omitempty"`
	ReturnReasonChildren []*ReturnReason `json:"return_reason_children,omitempty"`
	Metadata             map[string]any  `json:"metadata,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ReturnReasonRelations enumerates the expandable relations of a return reason.
var ReturnReasonRelations = []string{"parent_return_reason", "return_reason_children"}

// DefaultReturnReasonRelations is the projection used when no expand list is supplied.
var DefaultReturnReasonRelations = []string{"parent_return_reason", "return_reason_children"}
