// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerModel mirrors the 'customers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type CustomerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(50)"`
	HasAccount   bool      `gorm:"not null;default:false"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Metadata     datatypes.JSONMap
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Groups            []*CustomerGroupModel   `gorm:"many2many:customer_group_customers"`
	ShippingAddresses []*ShippingAddressModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// CustomerGroupModel mirrors the 'customer_groups' table.
type CustomerGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerGroupModel) TableName() string {
	return "customer_groups"
}

// ShippingAddressModel mirrors the 'shipping_addresses' table. CustomerID references customers.id.
type ShippingAddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	FirstName  string    `gorm:"type:varchar(100)"`
	LastName   string    `gorm:"type:varchar(100)"`
	Address1   string    `gorm:"type:varchar(255);not null"`
	Address2   string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Country    string    `gorm:"type:varchar(2);not null"`
	Phone      string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
