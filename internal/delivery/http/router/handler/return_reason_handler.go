package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReturnReasonHandler holds dependencies for return-reason handlers.
type ReturnReasonHandler struct {
	uc     usecase.ReturnReasonUsecase
	logger *slog.Logger
}

// NewReturnReasonHandler is the constructor for ReturnReasonHandler, injected by Fx.
func NewReturnReasonHandler(uc usecase.ReturnReasonUsecase, logger *slog.Logger) *ReturnReasonHandler {
	return &ReturnReasonHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateReturnReason handles the partial return reason update request.
func (h *ReturnReasonHandler) UpdateReturnReason(c echo.Context) error {
	reasonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid return reason ID")
	}

	relations, err := parseExpand(c, entity.ReturnReasonRelations, entity.DefaultReturnReasonRelations)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateReturnReasonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return reason update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	reason, err := h.uc.UpdateReturnReason(c.Request().Context(), reasonID, input, relations)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Entity(c, "return_reason", reason)
}

// GetReturnReason handles the return reason retrieval request.
func (h *ReturnReasonHandler) GetReturnReason(c echo.Context) error {
	reasonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid return reason ID")
	}

	relations, err := parseExpand(c, entity.ReturnReasonRelations, entity.DefaultReturnReasonRelations)
	if err != nil {
		return errors.WithStack(err)
	}

	reason, err := h.uc.GetReturnReason(c.Request().Context(), reasonID, relations)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Entity(c, "return_reason", reason)
}
