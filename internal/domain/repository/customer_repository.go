// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrCustomerGroupNotFound is returned when a referenced customer group does not exist.
var ErrCustomerGroupNotFound = errors.New("customer group not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID without relations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByIDWithRelations retrieves a customer by ID, preloading the named
	// relations. Relation names must come from entity.CustomerRelations.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.Customer, error)

	// Update persists the provided customer fields. Zero-valued associations
	// are left untouched; use ReplaceGroups for membership changes.
	Update(ctx context.Context, customer *entity.Customer) error

	// ReplaceGroups replaces the customer's group membership with the given id list.
	ReplaceGroups(ctx context.Context, customerID uuid.UUID, groupIDs []uuid.UUID) error
}
