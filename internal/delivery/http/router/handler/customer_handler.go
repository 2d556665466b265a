// Package handler contains the HTTP handlers for the admin API.
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

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateCustomer handles the partial customer update request.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	relations, err := parseExpand(c, entity.CustomerRelations, entity.DefaultCustomerRelations)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), customerID, input, relations)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Entity(c, "customer", customer)
}

// GetCustomer handles the customer retrieval request.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	relations, err := parseExpand(c, entity.CustomerRelations, entity.DefaultCustomerRelations)
	if err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), customerID, relations)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Entity(c, "customer", customer)
}
