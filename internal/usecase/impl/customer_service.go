// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService. The direct
// repository handles the snapshot guard read and the post-commit reload;
// all writes go through the transaction manager.
func NewCustomerService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager:    txManager,
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

// GetCustomer retrieves a customer projected onto the given relation list.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID, relations []string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByIDWithRelations(ctx, id, relations)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// UpdateCustomer applies a partial customer update inside a single
// transaction and reloads the result with the given relation list.
func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput, relations []string) (*entity.Customer, error) {
	srv.logger.Info("Updating customer", "customerID", id)

	// Guard read on a snapshot taken before the transaction opens. A
	// concurrent transaction flipping has_account between this read and the
	// commit below is not prevented.
	snapshot, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	if input.Email != nil && snapshot.HasAccount {
		return nil, errors.Wrap(domainerrors.ErrEmailImmutable, "customer has a registered account")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		if input.Email != nil {
			customer.Email = *input.Email
		}
		if input.FirstName != nil {
			customer.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			customer.LastName = *input.LastName
		}
		if input.Phone != nil {
			customer.Phone = *input.Phone
		}
		if input.Metadata != nil {
			customer.Metadata = input.Metadata
		}
		if input.Password != nil {
			hash, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			customer.PasswordHash = hash
		}

		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to update customer")
		}

		if input.Groups != nil {
			groupIDs := make([]uuid.UUID, 0, len(*input.Groups))
			for _, ref := range *input.Groups {
				groupIDs = append(groupIDs, ref.ID)
			}

			if err := customerRepo.ReplaceGroups(ctx, id, groupIDs); err != nil {
				if errors.Is(err, repository.ErrCustomerGroupNotFound) {
					return errors.Wrap(domainerrors.ErrCustomerGroupNotFound, "group does not exist")
				}

				return errors.Wrap(err, "failed to replace customer groups")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	// Reload outside the transaction: callers want the freshest state, not a
	// point-in-time snapshot of the write.
	customer, err := srv.customerRepo.FindByIDWithRelations(ctx, id, relations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload customer")
	}

	return customer, nil
}
