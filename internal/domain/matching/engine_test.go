package matching

import (
	"testing"

	"medishare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedDonation(medicine, city string, quantity int) *entity.Donation {
	return &entity.Donation{
		ID:           uuid.New(),
		MedicineName: medicine,
		Quantity:     quantity,
		City:         city,
		Status:       entity.DonationStatusApproved,
	}
}

func pendingDonation(medicine, city string, quantity int) *entity.Donation {
	donation := approvedDonation(medicine, city, quantity)
	donation.Status = entity.DonationStatusPending

	return donation
}

func request(medicine, city string, quantity int) *entity.Request {
	return &entity.Request{
		ID:           uuid.New(),
		MedicineName: medicine,
		Quantity:     quantity,
		City:         city,
		Status:       entity.RequestStatusPending,
	}
}

func TestEvaluate_Eligible(t *testing.T) {
	donation := approvedDonation("Paracetamol 500mg", "Athens", 25)
	snapshot := []*entity.Donation{donation}

	decision, err := Evaluate(request("Paracetamol 500mg", "Athens", 20), snapshot)
	require.NoError(t, err)

	assert.True(t, decision.Eligible())
	assert.Equal(t, donation.ID, decision.DonationID)
	assert.Equal(t, 25, decision.Available)
	assert.Equal(t, 5, decision.Remaining)
}

func TestEvaluate_InvalidQuantity(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Paracetamol 500mg", "Athens", 25)}

	for _, quantity := range []int{0, -3} {
		_, err := Evaluate(request("Paracetamol 500mg", "Athens", quantity), snapshot)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestEvaluate_NoDonorInCity(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Paracetamol 500mg", "Athens", 25)}

	decision, err := Evaluate(request("Paracetamol 500mg", "Patras", 5), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoDonorInCity, decision.Outcome)
	assert.False(t, decision.Eligible())
}

// The city gate fires before the medicine gate: a city with no donors at all
// reports no-donor-in-city even when the medicine exists elsewhere.
func TestEvaluate_CityGatePrecedesMedicineGate(t *testing.T) {
	snapshot := []*entity.Donation{
		approvedDonation("Insulin", "Athens", 10),
	}

	decision, err := Evaluate(request("Amoxicillin", "Patras", 1), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoDonorInCity, decision.Outcome)
}

func TestEvaluate_MedicineUnavailable(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Insulin", "Athens", 10)}

	decision, err := Evaluate(request("Amoxicillin", "Athens", 1), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeMedicineUnavailable, decision.Outcome)
}

// Medicine names match by exact, case-sensitive equality.
func TestEvaluate_MedicineNameIsCaseSensitive(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Insulin", "Athens", 10)}

	decision, err := Evaluate(request("insulin", "Athens", 1), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeMedicineUnavailable, decision.Outcome)
}

func TestEvaluate_InsufficientQuantity(t *testing.T) {
	donation := approvedDonation("Paracetamol 500mg", "Athens", 20)
	snapshot := []*entity.Donation{donation}

	decision, err := Evaluate(request("Paracetamol 500mg", "Athens", 25), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeInsufficientQuantity, decision.Outcome)
	assert.Equal(t, donation.ID, decision.DonationID)
	assert.Equal(t, 20, decision.Available)
	assert.False(t, decision.Eligible())
}

// An exact fit drains the donation to zero and is still eligible.
func TestEvaluate_ExactQuantityFit(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Paracetamol 500mg", "Athens", 15)}

	decision, err := Evaluate(request("Paracetamol 500mg", "Athens", 15), snapshot)
	require.NoError(t, err)

	assert.True(t, decision.Eligible())
	assert.Equal(t, 0, decision.Remaining)
}

// The first snapshot entry carrying the medicine serves the request; a later
// larger donation does not replace it, even when the first cannot cover.
func TestEvaluate_FirstMatchWins(t *testing.T) {
	first := approvedDonation("Paracetamol 500mg", "Athens", 5)
	second := approvedDonation("Paracetamol 500mg", "Athens", 100)
	snapshot := []*entity.Donation{first, second}

	decision, err := Evaluate(request("Paracetamol 500mg", "Athens", 10), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeInsufficientQuantity, decision.Outcome)
	assert.Equal(t, first.ID, decision.DonationID)
	assert.Equal(t, 5, decision.Available)
}

// A request without a city skips the city gate entirely.
func TestEvaluate_NoCitySkipsCityGate(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Insulin", "Athens", 10)}

	decision, err := Evaluate(request("Insulin", "", 2), snapshot)
	require.NoError(t, err)

	assert.True(t, decision.Eligible())
}

// Donations that are not approved never serve a request, for any gate.
func TestEvaluate_SkipsNonApprovedDonations(t *testing.T) {
	snapshot := []*entity.Donation{
		pendingDonation("Insulin", "Athens", 10),
	}

	decision, err := Evaluate(request("Insulin", "Athens", 2), snapshot)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoDonorInCity, decision.Outcome)
}

func TestEvaluate_EmptySnapshot(t *testing.T) {
	decision, err := Evaluate(request("Insulin", "", 2), nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeMedicineUnavailable, decision.Outcome)
}

// A corrupt snapshot entry with negative quantity is an error, not a rejection.
func TestEvaluate_NegativeDonationQuantity(t *testing.T) {
	snapshot := []*entity.Donation{approvedDonation("Insulin", "Athens", -1)}

	_, err := Evaluate(request("Insulin", "Athens", 1), snapshot)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}
