package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderEditService implements the OrderEditUsecase interface.
type orderEditService struct {
	txManager repository.TransactionManager
	editRepo  repository.OrderEditRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderEditService is the constructor for orderEditService.
func NewOrderEditService(
	txManager repository.TransactionManager,
	editRepo repository.OrderEditRepository,
	logger *slog.Logger,
) usecase.OrderEditUsecase {
	return &orderEditService{
		txManager: txManager,
		editRepo:  editRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// GetOrderEdit retrieves an order edit with the fixed default projection and
// freshly decorated totals.
func (srv *orderEditService) GetOrderEdit(ctx context.Context, id uuid.UUID) (*entity.OrderEdit, error) {
	edit, err := srv.editRepo.FindByIDWithRelations(ctx, id, entity.DefaultOrderEditRelations)
	if err != nil {
		if errors.Is(err, repository.ErrOrderEditNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderEditNotFound, "order edit not found")
		}

		return nil, errors.Wrap(err, "failed to find order edit")
	}

	edit.DecorateTotals()

	return edit, nil
}

// ConfirmOrderEdit moves the edit to the confirmed state, stamping the
// acting user and confirmation time, and commits the edit's line items to
// the parent order. The whole mutation runs in one transaction; the reload
// afterwards is a separate read.
func (srv *orderEditService) ConfirmOrderEdit(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*entity.OrderEdit, error) {
	srv.logger.Info("Confirming order edit", "orderEditID", id, "actorID", actorID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		editRepo := repoFactory.OrderEditRepo()

		edit, err := editRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderEditNotFound) {
				return errors.Wrap(domainerrors.ErrOrderEditNotFound, "order edit not found")
			}

			return errors.Wrap(err, "failed to find order edit")
		}

		// Confirming twice is a no-op; the edit is returned as stored.
		if edit.Status == entity.OrderEditStatusConfirmed {
			return nil
		}

		if !edit.Confirmable() {
			return errors.Wrapf(domainerrors.ErrOrderEditInvalidState, "cannot confirm an edit with status %q", edit.Status)
		}

		now := srv.now()
		edit.Status = entity.OrderEditStatusConfirmed
		edit.ConfirmedBy = &actorID
		edit.ConfirmedAt = &now

		if err := editRepo.Update(ctx, edit); err != nil {
			return errors.Wrap(err, "failed to update order edit")
		}

		if err := editRepo.CommitItemsToOrder(ctx, edit); err != nil {
			return errors.Wrap(err, "failed to commit order edit items")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm order edit")
	}

	edit, err := srv.editRepo.FindByIDWithRelations(ctx, id, entity.DefaultOrderEditRelations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order edit")
	}

	edit.DecorateTotals()

	return edit, nil
}
