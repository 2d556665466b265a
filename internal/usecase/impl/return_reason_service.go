package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// returnReasonService implements the ReturnReasonUsecase interface.
type returnReasonService struct {
	txManager  repository.TransactionManager
	reasonRepo repository.ReturnReasonRepository
	logger     *slog.Logger
}

// NewReturnReasonService is the constructor for returnReasonService.
func NewReturnReasonService(
	txManager repository.TransactionManager,
	reasonRepo repository.ReturnReasonRepository,
	logger *slog.Logger,
) usecase.ReturnReasonUsecase {
	return &returnReasonService{
		txManager:  txManager,
		reasonRepo: reasonRepo,
		logger:     logger,
	}
}

// GetReturnReason retrieves a return reason projected onto the given relation list.
func (srv *returnReasonService) GetReturnReason(ctx context.Context, id uuid.UUID, relations []string) (*entity.ReturnReason, error) {
	reason, err := srv.reasonRepo.FindByIDWithRelations(ctx, id, relations)
	if err != nil {
		if errors.Is(err, repository.ErrReturnReasonNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReturnReasonNotFound, "return reason not found")
		}

		return nil, errors.Wrap(err, "failed to find return reason")
	}

	return reason, nil
}

// UpdateReturnReason applies a partial update inside a single transaction
// and reloads the result with the given relation list.
func (srv *returnReasonService) UpdateReturnReason(ctx context.Context, id uuid.UUID, input *usecase.UpdateReturnReasonInput, relations []string) (*entity.ReturnReason, error) {
	srv.logger.Info("Updating return reason", "returnReasonID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reasonRepo := repoFactory.ReturnReasonRepo()

		reason, err := reasonRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReturnReasonNotFound) {
				return errors.Wrap(domainerrors.ErrReturnReasonNotFound, "return reason not found")
			}

			return errors.Wrap(err, "failed to find return reason")
		}

		if input.Label != nil {
			reason.Label = *input.Label
		}
		if input.Description != nil {
			reason.Description = *input.Description
		}
		if input.Metadata != nil {
			reason.Metadata = input.Metadata
		}

		if err := reasonRepo.Update(ctx, reason); err != nil {
			return errors.Wrap(err, "failed to update return reason")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update return reason")
	}

	reason, err := srv.reasonRepo.FindByIDWithRelations(ctx, id, relations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload return reason")
	}

	return reason, nil
}
