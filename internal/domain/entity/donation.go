// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DonationStatus is the lifecycle state of a donation.
type DonationStatus string

const (
	// DonationStatusPending marks a donation awaiting operator review.
	DonationStatusPending DonationStatus = "pending"
	// DonationStatusApproved marks a donation visible to the matching engine.
	DonationStatusApproved DonationStatus = "approved"
	// DonationStatusDeleted marks a donation removed from all future
	// inventory snapshots, either by an operator or because its quantity
	// reached zero after a reservation.
	DonationStatusDeleted DonationStatus = "deleted"
)

// Donation represents a donor-submitted offer of a named medicine.
// Quantity is the remaining amount and never goes negative; it is only
// decremented through the store's conditional decrement primitive.
type Donation struct {
	ID           uuid.UUID      `json:"id"`
	MedicineName string         `json:"medicine_name"` // free text, not unique across donations
	Quantity     int            `json:"quantity"`
	City         string         `json:"city"`
	Location     *orb.Point     `json:"location,omitempty"` // optional lng/lat pair
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	Contact      Contact        `json:"contact"`
	Status       DonationStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Available reports whether the donation can serve new requests.
func (d *Donation) Available() bool {
	return d.Status == DonationStatusApproved && d.Quantity > 0
}
