// Package matching holds the pure eligibility logic for medicine requests.
// It operates on a read-only snapshot of approved donations and never
// touches the store; committing a reservation is the coordinator's job.
package matching

import (
	"medishare/internal/domain/entity"
	"medishare/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidQuantity is returned when a quantity cannot be interpreted as a
// positive amount. This is distinct from a business rejection: the request
// itself is malformed.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Outcome classifies the result of evaluating a request.
type Outcome string

const (
	// OutcomeEligible means the request can be reserved against the matched donation.
	OutcomeEligible Outcome = "eligible"
	// OutcomeNoDonorInCity means no approved donation exists in the request's city.
	OutcomeNoDonorInCity Outcome = "no_donor_in_city"
	// OutcomeMedicineUnavailable means no approved donation carries the requested medicine.
	OutcomeMedicineUnavailable Outcome = "medicine_unavailable"
	// OutcomeInsufficientQuantity means the matched donation cannot cover the requested amount.
	OutcomeInsufficientQuantity Outcome = "insufficient_quantity"
)

// Decision is the outcome of an eligibility evaluation.
type Decision struct {
	Outcome Outcome

	// DonationID identifies the matched donation when the outcome is
	// eligible or insufficient-quantity.
	DonationID uuid.UUID

	// Available is the matched donation's remaining quantity, attached on
	// insufficient-quantity rejections for caller feedback.
	Available int

	// Remaining is the donation quantity after the reservation would
	// commit. Only meaningful when the outcome is eligible.
	Remaining int
}

// Eligible reports whether the decision permits a reservation.
func (d Decision) Eligible() bool {
	return d.Outcome == OutcomeEligible
}

// Evaluate runs the ordered admission gates for a request against a snapshot
// of approved donations. Gates short-circuit on the first failure so callers
// get the most actionable rejection: city first, then named medicine, then
// quantity. Medicine names are compared by exact, case-sensitive equality,
// mirroring the stored values.
//
// The snapshot must contain approved donations only; entries in any other
// state are skipped defensively.
func Evaluate(request *entity.Request, snapshot []*entity.Donation) (Decision, error) {
	if request.Quantity <= 0 {
		return Decision{}, errors.Wrapf(ErrInvalidQuantity, "requested quantity %d", request.Quantity)
	}

	// City gate, only when the request names a city.
	if request.City != "" && !cityServed(request.City, snapshot) {
		return Decision{Outcome: OutcomeNoDonorInCity}, nil
	}

	// Availability gate: first approved donation with the exact medicine name.
	matched := matchByMedicine(request.MedicineName, snapshot)
	if matched == nil {
		return Decision{Outcome: OutcomeMedicineUnavailable}, nil
	}

	// Quantity gate against the matched donation.
	if matched.Quantity < 0 {
		return Decision{}, errors.Wrapf(ErrInvalidQuantity, "donation %s has quantity %d", matched.ID, matched.Quantity)
	}
	if matched.Quantity < request.Quantity {
		return Decision{
			Outcome:    OutcomeInsufficientQuantity,
			DonationID: matched.ID,
			Available:  matched.Quantity,
		}, nil
	}

	return Decision{
		Outcome:    OutcomeEligible,
		DonationID: matched.ID,
		Available:  matched.Quantity,
		Remaining:  matched.Quantity - request.Quantity,
	}, nil
}

// cityServed reports whether any approved donation is located in city.
func cityServed(city string, snapshot []*entity.Donation) bool {
	for _, donation := range snapshot {
		if donation.Status != entity.DonationStatusApproved {
			continue
		}
		if donation.City == city {
			return true
		}
	}

	return false
}

// matchByMedicine returns the first approved donation carrying the medicine,
// or nil. Snapshot order decides which donation serves the request when
// several carry the same name.
func matchByMedicine(name string, snapshot []*entity.Donation) *entity.Donation {
	for _, donation := range snapshot {
		if donation.Status != entity.DonationStatusApproved {
			continue
		}
		if donation.MedicineName == name {
			return donation
		}
	}

	return nil
}
