package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderEditHandler holds dependencies for order-edit handlers.
type OrderEditHandler struct {
	uc     usecase.OrderEditUsecase
	logger *slog.Logger
}

// NewOrderEditHandler is the constructor for OrderEditHandler, injected by Fx.
func NewOrderEditHandler(uc usecase.OrderEditUsecase, logger *slog.Logger) *OrderEditHandler {
	return &OrderEditHandler{
		uc:     uc,
		logger: logger,
	}
}

// ConfirmOrderEdit handles the order edit confirmation request. The acting
// admin user is taken from the validated access token.
func (h *OrderEditHandler) ConfirmOrderEdit(c echo.Context) error {
	editID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order edit ID")
	}

	actorID, ok := middleware.GetActorID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated actor")
	}

	edit, err := h.uc.ConfirmOrderEdit(c.Request().Context(), editID, actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Entity(c, "order_edit", edit)
}

// GetOrderEdit handles the order edit retrieval request.
func (h *OrderEditHandler) GetOrderEdit(c echo.Context) error {
	editID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order edit ID")
	}

	edit, err := h.uc.GetOrderEdit(c.Request().Context(), editID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Entity(c, "order_edit", edit)
}
