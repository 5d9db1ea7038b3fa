package repository

import (
	"context"

	"medishare/internal/domain/entity"
	"medishare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for request persistence.
var (
	// ErrRequestNotFound is returned when a request is not found.
	ErrRequestNotFound = errors.New("request not found")
	// ErrRequestConflict is returned when a guarded status transition
	// matched no row, i.e. the request already left the expected state.
	ErrRequestConflict = errors.New("request state conflict")
)

// RequestRepository defines the interface for request-related database operations.
type RequestRepository interface {
	// CreateRequest persists a new pending request.
	CreateRequest(ctx context.Context, request *entity.Request) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// ListRequests retrieves all requests, newest first.
	ListRequests(ctx context.Context) ([]*entity.Request, error)

	// MarkApproved transitions a pending request to approved and copies the
	// donor snapshot in the same guarded update. ErrRequestConflict when the
	// request is no longer pending.
	MarkApproved(ctx context.Context, id uuid.UUID, donor *entity.DonorSnapshot) error

	// MarkRejected transitions a pending request to rejected.
	// ErrRequestConflict when the request is no longer pending.
	MarkRejected(ctx context.Context, id uuid.UUID) error

	// SetResolvedDonor backfills the donor snapshot on an approved request
	// that is missing one.
	SetResolvedDonor(ctx context.Context, id uuid.UUID, donor *entity.DonorSnapshot) error

	// MarkContactDisclosed flips the disclosed flag on an approved request.
	// The flag only ever goes from false to true.
	MarkContactDisclosed(ctx context.Context, id uuid.UUID) error
}
