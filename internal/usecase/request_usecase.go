package usecase

import (
	"context"

	"medishare/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRequestInput carries the fields of a recipient submission.
type SubmitRequestInput struct {
	MedicineName   string
	Quantity       int
	City           string
	Latitude       *float64
	Longitude      *float64
	DocumentRef    string
	RequesterName  string
	RequesterEmail string
	RequesterPhone string
}

// DisclosureResult reports the outcome of a contact disclosure, including
// notifier failures. Notifier failures never roll back the disclosed flag.
type DisclosureResult struct {
	RequestID         uuid.UUID `json:"request_id"`
	AlreadyDisclosed  bool      `json:"already_disclosed"`
	DonorNotified     bool      `json:"donor_notified"`
	RequesterNotified bool      `json:"requester_notified"`
	NotifierErrors    []string  `json:"notifier_errors,omitempty"`
}

// RequestUsecase defines the request-side operations of the workflow coordinator.
type RequestUsecase interface {
	// SubmitRequest validates the submission, runs the matching engine as an
	// admission check against the current inventory snapshot (no decrement),
	// and persists a pending request.
	SubmitRequest(ctx context.Context, input *SubmitRequestInput) (*entity.Request, error)

	// ListRequests retrieves all requests, newest first.
	ListRequests(ctx context.Context) ([]*entity.Request, error)

	// ApproveRequest re-evaluates the request against a fresh inventory
	// snapshot and, if eligible, commits the reservation atomically:
	// conditional quantity decrement, request approval, donor snapshot copy.
	// Returns the donation's remaining quantity after the reservation.
	ApproveRequest(ctx context.Context, requestID uuid.UUID) (int, error)

	// RejectRequest transitions a pending request to rejected and notifies
	// the requester (best-effort).
	RejectRequest(ctx context.Context, requestID uuid.UUID) error

	// DiscloseContacts emits the two disclosure notifications for an
	// approved request and flips the disclosed flag, regardless of whether
	// the notifier succeeds.
	DiscloseContacts(ctx context.Context, requestID uuid.UUID) (*DisclosureResult, error)
}
