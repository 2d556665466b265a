// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler     *handler.CustomerHandler
	ReturnReasonHandler *handler.ReturnReasonHandler
	OrderEditHandler    *handler.OrderEditHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler     *handler.CustomerHandler
	returnReasonHandler *handler.ReturnReasonHandler
	orderEditHandler    *handler.OrderEditHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:     params.CustomerHandler,
		returnReasonHandler: params.ReturnReasonHandler,
		orderEditHandler:    params.OrderEditHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin routes require a valid access token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/customers/:id", r.customerHandler.UpdateCustomer)
		adminGroup.GET("/customers/:id", r.customerHandler.GetCustomer)

		adminGroup.POST("/return-reasons/:id", r.returnReasonHandler.UpdateReturnReason)
		adminGroup.GET("/return-reasons/:id", r.returnReasonHandler.GetReturnReason)

		adminGroup.POST("/order-edits/:id/confirm", r.orderEditHandler.ConfirmOrderEdit)
		adminGroup.GET("/order-edits/:id", r.orderEditHandler.GetOrderEdit)
	}
}
