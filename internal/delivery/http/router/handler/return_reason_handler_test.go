package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReturnReasonUsecase struct {
	reason *entity.ReturnReason
	err    error

	gotInput     *usecase.UpdateReturnReasonInput
	gotRelations []string
}

func (f *fakeReturnReasonUsecase) GetReturnReason(ctx context.Context, id uuid.UUID, relations []string) (*entity.ReturnReason, error) {
	f.gotRelations = relations

	return f.reason, f.err
}

func (f *fakeReturnReasonUsecase) UpdateReturnReason(ctx context.Context, id uuid.UUID, input *usecase.UpdateReturnReasonInput, relations []string) (*entity.ReturnReason, error) {
	f.gotInput = input
	f.gotRelations = relations

	return f.reason, f.err
}

func TestUpdateReturnReason_ReturnsEntityEnvelope(t *testing.T) {
	reasonID := uuid.New()
	uc := &fakeReturnReasonUsecase{reason: &entity.ReturnReason{ID: reasonID, Value: "damaged", Label: "Damaged goods"}}
	h := NewReturnReasonHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newHandlerContext(t, http.MethodPost, "/admin/return-reasons/"+reasonID.String(), `{"label":"Damaged goods"}`)
	c.SetParamNames("id")
	c.SetParamValues(reasonID.String())

	require.NoError(t, h.UpdateReturnReason(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Contains(t, envelope, "return_reason")
	assert.Len(t, envelope, 1)

	require.NotNil(t, uc.gotInput)
	require.NotNil(t, uc.gotInput.Label)
	assert.Equal(t, "Damaged goods", *uc.gotInput.Label)
	assert.Equal(t, entity.DefaultReturnReasonRelations, uc.gotRelations)
}

func TestUpdateReturnReason_UnknownExpandRejected(t *testing.T) {
	reasonID := uuid.New()
	uc := &fakeReturnReasonUsecase{}
	h := NewReturnReasonHandler(uc, slog.New(slog.DiscardHandler))

	c, _ := newHandlerContext(t, http.MethodPost, "/admin/return-reasons/"+reasonID.String()+"?expand=bogus", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(reasonID.String())

	err := h.UpdateReturnReason(c)
	require.Error(t, err)
	assert.Nil(t, uc.gotInput)
}

func TestGetReturnReason_ForwardsExpandList(t *testing.T) {
	reasonID := uuid.New()
	uc := &fakeReturnReasonUsecase{reason: &entity.ReturnReason{ID: reasonID}}
	h := NewReturnReasonHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newHandlerContext(t, http.MethodGet, "/admin/return-reasons/"+reasonID.String()+"?expand=parent_return_reason", "")
	c.SetParamNames("id")
	c.SetParamValues(reasonID.String())

	require.NoError(t, h.GetReturnReason(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"parent_return_reason"}, uc.gotRelations)
}
