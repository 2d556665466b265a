package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the parent aggregate an order edit applies to. Only the parts
// relevant to editing and totals are modeled here; checkout, payment and
// fulfillment live elsewhere.
type Order struct {
	ID              uuid.UUID         `json:"id"`
	CustomerID      uuid.UUID         `json:"customer_id"`
	Currency        string            `json:"currency"`
	Items           []*LineItem       `json:"items,omitempty"`
	ShippingMethods []*ShippingMethod `json:"shipping_methods,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// LineItem is a single purchasable row. Amounts are minor currency units
// (cents). A line item belongs to an order, to a pending order edit, or to
// both while an edit is being confirmed.
type LineItem struct {
	ID             uuid.UUID  `json:"id"`
	OrderID        *uuid.UUID `json:"order_id,omitempty"`
	OrderEditID    *uuid.UUID `json:"order_edit_id,omitempty"`
	Title          string     `json:"title"`
	Quantity       int64      `json:"quantity"`
	UnitPrice      int64      `json:"unit_price"`
	DiscountAmount int64      `json:"discount_amount"`
	TaxAmount      int64      `json:"tax_amount"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ShippingMethod is a priced delivery option attached to an order.
type ShippingMethod struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
