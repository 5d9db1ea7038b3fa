// Package usecase defines the application's use case interfaces and IO types.
package usecase

import (
	"context"
	"time"

	"medishare/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitDonationInput carries the fields of a donor submission.
type SubmitDonationInput struct {
	MedicineName string
	Quantity     int
	City         string
	Latitude     *float64
	Longitude    *float64
	ExpiresAt    *time.Time
	DonorName    string
	DonorEmail   string
	DonorPhone   string
}

// Availability is the answer to a single-medicine availability check.
type Availability struct {
	MedicineName  string `json:"medicine_name"`
	Available     bool   `json:"available"`
	TotalQuantity int    `json:"total_quantity"`
	Donations     int    `json:"donations"`
}

// DonationUsecase defines the inventory-side operations of the workflow coordinator.
type DonationUsecase interface {
	// SubmitDonation validates the submission and creates a pending donation.
	// No reservation logic is involved.
	SubmitDonation(ctx context.Context, input *SubmitDonationInput) (*entity.Donation, error)

	// ApproveDonation is the operator transition pending -> approved. The
	// donation becomes visible to the matching engine and the donor is
	// notified (best-effort).
	ApproveDonation(ctx context.Context, donationID uuid.UUID) error

	// DeleteDonation removes a donation from all future inventory snapshots.
	// Already-approved requests referencing it keep their immutable donor snapshot.
	DeleteDonation(ctx context.Context, donationID uuid.UUID) error

	// CheckAvailability reports whether an approved donation carries the
	// exact medicine name, with aggregate quantity for caller feedback.
	CheckAvailability(ctx context.Context, medicineName string) (*Availability, error)
}
