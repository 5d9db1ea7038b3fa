package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RequestStatus is the lifecycle state of a medicine request.
// A request leaves pending exactly once; approved and rejected are terminal.
type RequestStatus string

const (
	// RequestStatusPending marks a request awaiting operator decision.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusApproved marks a request whose reservation committed.
	RequestStatusApproved RequestStatus = "approved"
	// RequestStatusRejected marks a request declined by an operator.
	RequestStatusRejected RequestStatus = "rejected"
)

// DonorSnapshot is the denormalized donor contact copied into a request at
// approval time. It is immutable afterwards: later changes to the donation
// must not affect an already-approved request.
type DonorSnapshot struct {
	DonationID uuid.UUID  `json:"donation_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Location   *orb.Point `json:"location,omitempty"`
}

// Request represents a recipient's ask for a named medicine.
// Quantity is fixed at creation and never changes.
type Request struct {
	ID               uuid.UUID      `json:"id"`
	Contact          Contact        `json:"contact"`
	MedicineName     string         `json:"medicine_name"`
	Quantity         int            `json:"quantity"`
	City             string         `json:"city"`
	Location         *orb.Point     `json:"location,omitempty"`
	DocumentRef      string         `json:"document_ref,omitempty"` // opaque supporting-document reference
	Status           RequestStatus  `json:"status"`
	ContactDisclosed bool           `json:"contact_disclosed"`
	ResolvedDonor    *DonorSnapshot `json:"resolved_donor,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Resolved reports whether the request left the pending state.
func (r *Request) Resolved() bool {
	return r.Status != RequestStatusPending
}
