// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medishare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DonationHandler *handler.DonationHandler
	RequestHandler  *handler.RequestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	donationHandler *handler.DonationHandler
	requestHandler  *handler.RequestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		donationHandler: params.DonationHandler,
		requestHandler:  params.RequestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Availability probe for recipients
	e.GET("/availability", r.donationHandler.CheckAvailability)

	// Donation routes
	donationGroup := e.Group("/donations")
	{
		donationGroup.POST("", r.donationHandler.SubmitDonation)
		donationGroup.POST("/:id/approve", r.donationHandler.ApproveDonation)
		donationGroup.DELETE("/:id", r.donationHandler.DeleteDonation)
	}

	// Request routes
	requestGroup := e.Group("/requests")
	{
		requestGroup.POST("", r.requestHandler.SubmitRequest)
		requestGroup.GET("", r.requestHandler.ListRequests)
		requestGroup.POST("/:id/approve", r.requestHandler.ApproveRequest)
		requestGroup.POST("/:id/reject", r.requestHandler.RejectRequest)
		requestGroup.POST("/:id/disclose", r.requestHandler.DiscloseContacts)
	}
}
