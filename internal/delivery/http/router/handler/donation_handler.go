// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medishare/internal/delivery/http/response"
	"medishare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DonationHandler holds dependencies for donation-related handlers.
type DonationHandler struct {
	uc     usecase.DonationUsecase
	logger *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler, injected by Fx.
func NewDonationHandler(uc usecase.DonationUsecase, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitDonationRequest struct {
	MedicineName string     `json:"medicine_name" validate:"required"`
	Quantity     int        `json:"quantity"`
	City         string     `json:"city" validate:"required"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	ExpiresAt    *time.Time `json:"expires_at"`
	DonorName    string     `json:"donor_name" validate:"required"`
	DonorEmail   string     `json:"donor_email" validate:"required,email"`
	DonorPhone   string     `json:"donor_phone"`
}

// SubmitDonation handles the donor submission request.
func (h *DonationHandler) SubmitDonation(c echo.Context) error {
	var req submitDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	donation, err := h.uc.SubmitDonation(c.Request().Context(), &usecase.SubmitDonationInput{
		MedicineName: req.MedicineName,
		Quantity:     req.Quantity,
		City:         req.City,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ExpiresAt:    req.ExpiresAt,
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
		DonorPhone:   req.DonorPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, donation)
}

// ApproveDonation handles the operator approval of a pending donation.
func (h *DonationHandler) ApproveDonation(c echo.Context) error {
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	if err := h.uc.ApproveDonation(c.Request().Context(), donationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":     donationID.String(),
		"status": "approved",
	})
}

// DeleteDonation handles the removal of a donation from the inventory.
func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	if err := h.uc.DeleteDonation(c.Request().Context(), donationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":     donationID.String(),
		"status": "deleted",
	})
}

// CheckAvailability reports whether an approved donation carries the queried medicine.
func (h *DonationHandler) CheckAvailability(c echo.Context) error {
	medicine := c.QueryParam("medicine")
	if medicine == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'medicine' is required")
	}

	availability, err := h.uc.CheckAvailability(c.Request().Context(), medicine)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
