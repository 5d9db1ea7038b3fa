package handler

import (
	"log/slog"
	"net/http"

	"medishare/internal/delivery/http/response"
	"medishare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestHandler holds dependencies for request-related handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitRequestRequest struct {
	MedicineName   string   `json:"medicine_name" validate:"required"`
	Quantity       int      `json:"quantity"`
	City           string   `json:"city"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	DocumentRef    string   `json:"document_ref"`
	RequesterName  string   `json:"requester_name" validate:"required"`
	RequesterEmail string   `json:"requester_email" validate:"required,email"`
	RequesterPhone string   `json:"requester_phone"`
}

// SubmitRequest handles the recipient submission request.
func (h *RequestHandler) SubmitRequest(c echo.Context) error {
	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.uc.SubmitRequest(c.Request().Context(), &usecase.SubmitRequestInput{
		MedicineName:   req.MedicineName,
		Quantity:       req.Quantity,
		City:           req.City,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DocumentRef:    req.DocumentRef,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		RequesterPhone: req.RequesterPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// ListRequests returns all requests, newest first.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.uc.ListRequests(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ApproveRequest handles the operator approval, committing the reservation.
func (h *RequestHandler) ApproveRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	remaining, err := h.uc.ApproveRequest(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":                 requestID.String(),
		"status":             "approved",
		"remaining_quantity": remaining,
	})
}

// RejectRequest handles the operator rejection of a pending request.
func (h *RequestHandler) RejectRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.uc.RejectRequest(c.Request().Context(), requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":     requestID.String(),
		"status": "rejected",
	})
}

// DiscloseContacts emits both disclosure notifications for an approved request.
func (h *RequestHandler) DiscloseContacts(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	result, err := h.uc.DiscloseContacts(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
