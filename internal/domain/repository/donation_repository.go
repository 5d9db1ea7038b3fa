// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medishare/internal/domain/entity"
	"medishare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for donation persistence.
var (
	// ErrDonationNotFound is returned when a donation is not found.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrQuantityConflict is returned when the conditional decrement's
	// precondition (status approved and quantity >= amount) does not hold.
	ErrQuantityConflict = errors.New("quantity precondition failed")
)

// DonationRepository defines the interface for donation-related database operations.
type DonationRepository interface {
	// CreateDonation persists a new donation.
	CreateDonation(ctx context.Context, donation *entity.Donation) error

	// FindDonationByID retrieves a donation by its unique ID.
	FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// FindApprovedDonations retrieves the inventory snapshot the matching
	// engine evaluates against: all approved donations, oldest first.
	FindApprovedDonations(ctx context.Context) ([]*entity.Donation, error)

	// FindApprovedByMedicine retrieves approved donations carrying the exact
	// medicine name, oldest first.
	FindApprovedByMedicine(ctx context.Context, medicineName string) ([]*entity.Donation, error)

	// UpdateDonationStatus transitions the donation lifecycle state.
	UpdateDonationStatus(ctx context.Context, id uuid.UUID, status entity.DonationStatus) error

	// DecrementQuantity atomically decrements a donation's remaining quantity
	// guarded by "status = approved AND quantity >= amount", and returns the
	// remaining quantity after the decrement. It must never be implemented as
	// a separate read followed by an unconditional write. A failed guard
	// yields ErrQuantityConflict.
	DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (int, error)
}
