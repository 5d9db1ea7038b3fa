package impl

import (
	"context"
	"testing"

	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full workflow against the in-memory store: donate 10, approve the donation,
// request 4, approve the request. The reservation leaves 6 and the request
// carries the donor snapshot.
func TestWorkflow_RoundTrip(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	donationSvc := NewDonationService(DonationServiceParams{
		DonationRepo: store,
		Publisher:    newQuietPublisher(t),
		Logger:       newDiscardLogger(),
	})
	requestSvc := NewRequestService(RequestServiceParams{
		TxManager:    &memoryTxManager{store: store},
		DonationRepo: store,
		RequestRepo:  store,
		Publisher:    newQuietPublisher(t),
		Logger:       newDiscardLogger(),
	})

	donation, err := donationSvc.SubmitDonation(ctx, &usecase.SubmitDonationInput{
		MedicineName: "Amoxicillin",
		Quantity:     10,
		City:         "Athens",
		DonorName:    "City Pharmacy",
		DonorEmail:   "pharmacy@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, donationSvc.ApproveDonation(ctx, donation.ID))

	request, err := requestSvc.SubmitRequest(ctx, submitInput("Amoxicillin", "Athens", 4))
	require.NoError(t, err)

	remaining, err := requestSvc.ApproveRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, remaining)

	stored, err := store.FindRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, stored.Status)
	require.NotNil(t, stored.ResolvedDonor)
	assert.Equal(t, donation.ID, stored.ResolvedDonor.DonationID)
	assert.Equal(t, "pharmacy@example.com", stored.ResolvedDonor.Email)

	left, err := store.FindDonationByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, left.Quantity)
	assert.Equal(t, entity.DonationStatusApproved, left.Status)
}

// With 20 listed, a request for 25 is rejected with available=20, then a
// request for 15 approves and leaves 5.
func TestWorkflow_PartialFulfillment(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	requestSvc := NewRequestService(RequestServiceParams{
		TxManager:    &memoryTxManager{store: store},
		DonationRepo: store,
		RequestRepo:  store,
		Publisher:    newQuietPublisher(t),
		Logger:       newDiscardLogger(),
	})

	donation := testDonation("Paracetamol", "Lahore", 20)
	require.NoError(t, store.CreateDonation(ctx, donation))

	_, err := requestSvc.SubmitRequest(ctx, submitInput("Paracetamol", "Lahore", 25))
	var insufficientErr *domainerrors.InsufficientQuantityError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 20, insufficientErr.Available())

	request, err := requestSvc.SubmitRequest(ctx, submitInput("Paracetamol", "Lahore", 15))
	require.NoError(t, err)

	remaining, err := requestSvc.ApproveRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	stored, err := store.FindRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, stored.Status)
}

// A second resolution attempt on the same request never mutates inventory.
func TestWorkflow_SecondResolutionIsRejected(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	requestSvc := NewRequestService(RequestServiceParams{
		TxManager:    &memoryTxManager{store: store},
		DonationRepo: store,
		RequestRepo:  store,
		Publisher:    newQuietPublisher(t),
		Logger:       newDiscardLogger(),
	})

	donation := testDonation("Insulin", "Athens", 10)
	require.NoError(t, store.CreateDonation(ctx, donation))

	request, err := requestSvc.SubmitRequest(ctx, submitInput("Insulin", "Athens", 3))
	require.NoError(t, err)

	_, err = requestSvc.ApproveRequest(ctx, request.ID)
	require.NoError(t, err)

	_, err = requestSvc.ApproveRequest(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)

	err = requestSvc.RejectRequest(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)

	left, err := store.FindDonationByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, left.Quantity)
}
