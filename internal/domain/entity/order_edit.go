package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderEditStatus is the lifecycle state of an order edit.
type OrderEditStatus string

const (
	OrderEditStatusCreated   OrderEditStatus = "created"
	OrderEditStatusRequested OrderEditStatus = "requested"
	OrderEditStatusConfirmed OrderEditStatus = "confirmed"
	OrderEditStatusDeclined  OrderEditStatus = "declined"
	OrderEditStatusCanceled  OrderEditStatus = "canceled"
)

// OrderEditChangeType classifies a single proposed change within an edit.
type OrderEditChangeType string

const (
	OrderEditChangeItemAdd    OrderEditChangeType = "item_add"
	OrderEditChangeItemRemove OrderEditChangeType = "item_remove"
	OrderEditChangeItemUpdate OrderEditChangeType = "item_update"
)

// OrderEditChange records one delta between the order's original line items
// and the edit's proposed set. OriginalLineItemID references the item being
// replaced or removed; LineItemID references the item introduced by the edit.
type OrderEditChange struct {
	ID                 uuid.UUID           `json:"id"`
	OrderEditID        uuid.UUID           `json:"order_edit_id"`
	Type               OrderEditChangeType `json:"type"`
	OriginalLineItemID *uuid.UUID          `json:"original_line_item_id,omitempty"`
	LineItemID         *uuid.UUID          `json:"line_item_id,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

// OrderEdit is a staged modification of an order. Its Items carry the full
// proposed line-item set; confirming commits that set to the parent order
// and stamps the confirming actor and time. Totals are derived on read and
// never stored.
type OrderEdit struct {
	ID           uuid.UUID          `json:"id"`
	OrderID      uuid.UUID          `json:"order_id"`
	Order        *Order             `json:"order,omitempty"`
	Status       OrderEditStatus    `json:"status"`
	InternalNote string             `json:"internal_note,omitempty"`
	Changes      []*OrderEditChange `json:"changes,omitempty"`
	Items        []*LineItem        `json:"items,omitempty"`
	CreatedBy    uuid.UUID          `json:"created_by"`
	RequestedBy  *uuid.UUID         `json:"requested_by,omitempty"`
	RequestedAt  *time.Time         `json:"requested_at,omitempty"`
	ConfirmedBy  *uuid.UUID         `json:"confirmed_by,omitempty"`
	ConfirmedAt  *time.Time         `json:"confirmed_at,omitempty"`
	DeclinedBy   *uuid.UUID         `json:"declined_by,omitempty"`
	DeclinedAt   *time.Time         `json:"declined_at,omitempty"`
	CanceledBy   *uuid.UUID         `json:"canceled_by,omitempty"`
	CanceledAt   *time.Time         `json:"canceled_at,omitempty"`
	Totals       *OrderEditTotals   `json:"totals,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Confirmable reports whether a confirm transition is legal from the
// current status. Declined and canceled edits can never be confirmed;
// already-confirmed edits are handled idempotently by the caller.
func (oe *OrderEdit) Confirmable() bool {
	return oe.Status == OrderEditStatusCreated || oe.Status == OrderEditStatusRequested
}

// DefaultOrderEditRelations is the fixed projection used when reloading an
// order edit after a state change.
var DefaultOrderEditRelations = []string{"changes", "items", "order", "order.shipping_methods"}
