// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer record. A customer may exist without a registered
// account (guest checkout); once HasAccount is true the email becomes the
// login identifier and may no longer change.
type Customer struct {
	ID                uuid.UUID          `json:"id"`
	Email             string             `json:"email"`
	FirstName         string             `json:"first_name"`
	LastName          string             `json:"last_name"`
	Phone             string             `json:"phone"`
	HasAccount        bool               `json:"has_account"`
	PasswordHash      string             `json:"-"` // Never serialized.
	Groups            []*CustomerGroup   `json:"groups,omitempty"`
	ShippingAddresses []*ShippingAddress `json:"shipping_addresses,omitempty"`
	Metadata          map[string]any     `json:"metadata,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// CustomerGroup is a named segment customers can belong to. Membership is
// declared by id list on update, never by embedding full group objects.
type CustomerGroup struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShippingAddress is a saved delivery address owned by a customer.
type ShippingAddress struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Address1   string    `json:"address_1"`
	Address2   string    `json:"address_2,omitempty"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerRelations enumerates the relation names callers may request via
// the expand query parameter when reloading a customer.
var CustomerRelations = []string{"groups", "shipping_addresses"}

// DefaultCustomerRelations is the projection used when no expand list is supplied.
var DefaultCustomerRelations = []string{"groups", "shipping_addresses"}
