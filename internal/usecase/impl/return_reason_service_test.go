package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReturnReasonFixture() (*fakeReturnReasonRepo, *fakeTxManager) {
	reasonRepo := &fakeReturnReasonRepo{
		reason: &entity.ReturnReason{
			ID:          uuid.New(),
			Value:       "damaged",
			Label:       "Damaged",
			Description: "Arrived broken",
		},
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{reasonRepo: reasonRepo}}

	return reasonRepo, txManager
}

func TestUpdateReturnReason_AppliesPartialFields(t *testing.T) {
	reasonRepo, txManager := newReturnReasonFixture()
	srv := NewReturnReasonService(txManager, reasonRepo, slog.New(slog.DiscardHandler))

	input := &usecase.UpdateReturnReasonInput{
		Label:    strPtr("Damaged in transit"),
		Metadata: map[string]any{"priority": "high"},
	}

	reason, err := srv.UpdateReturnReason(context.Background(), reasonRepo.reason.ID, input, entity.DefaultReturnReasonRelations)
	require.NoError(t, err)

	require.NotNil(t, reasonRepo.updated)
	assert.Equal(t, "Damaged in transit", reasonRepo.updated.Label)
	assert.Equal(t, "Arrived broken", reasonRepo.updated.Description)
	assert.Equal(t, "high", reasonRepo.updated.Metadata["priority"])
	// The value code never changes after creation.
	assert.Equal(t, "damaged", reason.Value)
	assert.Equal(t, entity.DefaultReturnReasonRelations, reasonRepo.reloadedRelations)
}

func TestUpdateReturnReason_NotFound(t *testing.T) {
	reasonRepo, txManager := newReturnReasonFixture()
	reasonRepo.findErr = repository.ErrReturnReasonNotFound
	srv := NewReturnReasonService(txManager, reasonRepo, slog.New(slog.DiscardHandler))

	_, err := srv.UpdateReturnReason(context.Background(), uuid.New(), &usecase.UpdateReturnReasonInput{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReturnReasonNotFound)
}

func TestGetReturnReason_PassesRelations(t *testing.T) {
	reasonRepo, txManager := newReturnReasonFixture()
	srv := NewReturnReasonService(txManager, reasonRepo, slog.New(slog.DiscardHandler))

	reason, err := srv.GetReturnReason(context.Background(), reasonRepo.reason.ID, []string{"parent_return_reason"})
	require.NoError(t, err)

	assert.Equal(t, reasonRepo.reason.ID, reason.ID)
	assert.Equal(t, []string{"parent_return_reason"}, reasonRepo.reloadedRelations)
}
