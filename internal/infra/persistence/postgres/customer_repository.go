package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// customerRelationPreloads maps public relation names (as accepted in the
// expand query parameter) to GORM association paths.
var customerRelationPreloads = map[string]string{
	"groups":             "Groups",
	"shipping_addresses": "ShippingAddresses",
}

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a single customer by their unique ID without relations.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByIDWithRelations retrieves a customer by ID, preloading the named relations.
func (repo *customerRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.Customer, error) {
	query := repo.db.WithContext(ctx)
	for _, relation := range relations {
		preload, ok := customerRelationPreloads[relation]
		if !ok {
			return nil, errors.Errorf("unknown customer relation %q", relation)
		}
		query = query.Preload(preload)
	}

	var customerM model.CustomerModel
	if err := query.Where("id = ?", id).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// Update persists the customer's base fields. Associations are managed
// separately through ReplaceGroups.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	values := map[string]any{
		"email":         customer.Email,
		"first_name":    customer.FirstName,
		"last_name":     customer.LastName,
		"phone":         customer.Phone,
		"password_hash": customer.PasswordHash,
		"metadata":      datatypes.JSONMap(customer.Metadata),
	}

	err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(values).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}

	return nil
}

// ReplaceGroups replaces the customer's group membership with the given id
// list. Every id must reference an existing group.
func (repo *customerRepository) ReplaceGroups(ctx context.Context, customerID uuid.UUID, groupIDs []uuid.UUID) error {
	customerM := model.CustomerModel{ID: customerID}

	if len(groupIDs) == 0 {
		if err := repo.db.WithContext(ctx).Model(&customerM).Association("Groups").Clear(); err != nil {
			return errors.Wrap(err, "failed to clear customer groups")
		}

		return nil
	}

	var groups []*model.CustomerGroupModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", groupIDs).Find(&groups).Error; err != nil {
		return errors.Wrap(err, "failed to load customer groups")
	}
	if len(groups) != len(groupIDs) {
		return repository.ErrCustomerGroupNotFound
	}

	if err := repo.db.WithContext(ctx).Model(&customerM).Association("Groups").Replace(groups); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerGroupNotFound
		}

		return errors.Wrap(err, "failed to replace customer groups")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	groups := make([]*entity.CustomerGroup, 0, len(data.Groups))
	for _, group := range data.Groups {
		groups = append(groups, &entity.CustomerGroup{
			ID:        group.ID,
			Name:      group.Name,
			CreatedAt: group.CreatedAt,
			UpdatedAt: group.UpdatedAt,
		})
	}

	addresses := make([]*entity.ShippingAddress, 0, len(data.ShippingAddresses))
	for _, addr := range data.ShippingAddresses {
		addresses = append(addresses, &entity.ShippingAddress{
			ID:         addr.ID,
			CustomerID: addr.CustomerID,
			FirstName:  addr.FirstName,
			LastName:   addr.LastName,
			Address1:   addr.Address1,
			Address2:   addr.Address2,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
			Phone:      addr.Phone,
			CreatedAt:  addr.CreatedAt,
			UpdatedAt:  addr.UpdatedAt,
		})
	}

	customer := &entity.Customer{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		HasAccount:   data.HasAccount,
		PasswordHash: data.PasswordHash,
		Metadata:     data.Metadata,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if len(groups) > 0 {
		customer.Groups = groups
	}
	if len(addresses) > 0 {
		customer.ShippingAddresses = addresses
	}

	return customer
}
