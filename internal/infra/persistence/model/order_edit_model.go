package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Currency   string    `gorm:"type:varchar(3);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items           []*LineItemModel       `gorm:"foreignKey:OrderID"`
	ShippingMethods []*ShippingMethodModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// LineItemModel mirrors the 'line_items' table. Amounts are minor currency
// units. OrderID and OrderEditID are both nullable: an item proposed by a
// pending edit has only OrderEditID set until the edit is confirmed.
type LineItemModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        *uuid.UUID `gorm:"type:uuid;index"`
	OrderEditID    *uuid.UUID `gorm:"type:uuid;index"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Quantity       int64      `gorm:"not null"`
	UnitPrice      int64      `gorm:"not null"`
	DiscountAmount int64      `gorm:"not null;default:0"`
	TaxAmount      int64      `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "line_items"
}

// ShippingMethodModel mirrors the 'shipping_methods' table.
type ShippingMethodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingMethodModel) TableName() string {
	return "shipping_methods"
}

// OrderEditModel mirrors the 'order_edits' table.
type OrderEditModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'created'"`
	InternalNote string    `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	RequestedBy  *uuid.UUID `gorm:"type:uuid"`
	RequestedAt  *time.Time
	ConfirmedBy  *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt  *time.Time
	DeclinedBy   *uuid.UUID `gorm:"type:uuid"`
	DeclinedAt   *time.Time
	CanceledBy   *uuid.UUID `gorm:"type:uuid"`
	CanceledAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Order   *OrderModel             `gorm:"foreignKey:OrderID"`
	Changes []*OrderEditChangeModel `gorm:"foreignKey:OrderEditID"`
	Items   []*LineItemModel        `gorm:"foreignKey:OrderEditID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderEditModel) TableName() string {
	return "order_edits"
}

// OrderEditChangeModel mirrors the 'order_edit_changes' table.
type OrderEditChangeModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderEditID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	Type               string     `gorm:"type:varchar(20);not null"`
	OriginalLineItemID *uuid.UUID `gorm:"type:uuid"`
	LineItemID         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderEditChangeModel) TableName() string {
	return "order_edit_changes"
}
