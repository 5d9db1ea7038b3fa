package impl

import (
	"context"
	"testing"

	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/repository"
	mockRepo "medishare/internal/mocks/repository"
	"medishare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDonationService(t *testing.T, donationRepo *mockRepo.MockDonationRepository) usecase.DonationUsecase {
	return NewDonationService(DonationServiceParams{
		DonationRepo: donationRepo,
		Publisher:    newQuietPublisher(t),
		Logger:       newDiscardLogger(),
	})
}

func TestDonationService_SubmitDonation(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donationRepo.EXPECT().
		CreateDonation(ctx, mock.AnythingOfType("*entity.Donation")).
		Return(nil)

	lat, lng := 37.9838, 23.7275
	donation, err := service.SubmitDonation(ctx, &usecase.SubmitDonationInput{
		MedicineName: "Paracetamol 500mg",
		Quantity:     25,
		City:         "Athens",
		Latitude:     &lat,
		Longitude:    &lng,
		DonorName:    "City Pharmacy",
		DonorEmail:   "pharmacy@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DonationStatusPending, donation.Status)
	assert.Equal(t, 25, donation.Quantity)
	require.NotNil(t, donation.Location)
	assert.InDelta(t, lat, donation.Location.Lat(), 1e-9)
	assert.InDelta(t, lng, donation.Location.Lon(), 1e-9)
}

func TestDonationService_SubmitDonation_ValidationErrors(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.SubmitDonationInput
		want  error
	}{
		{
			name: "missing medicine name",
			input: &usecase.SubmitDonationInput{
				Quantity: 5, City: "Athens", DonorName: "A", DonorEmail: "a@example.com",
			},
			want: domainerrors.ErrValidationFailed,
		},
		{
			name: "missing city",
			input: &usecase.SubmitDonationInput{
				MedicineName: "Insulin", Quantity: 5, DonorName: "A", DonorEmail: "a@example.com",
			},
			want: domainerrors.ErrValidationFailed,
		},
		{
			name: "zero quantity",
			input: &usecase.SubmitDonationInput{
				MedicineName: "Insulin", City: "Athens", DonorName: "A", DonorEmail: "a@example.com",
			},
			want: domainerrors.ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			input: &usecase.SubmitDonationInput{
				MedicineName: "Insulin", Quantity: -2, City: "Athens", DonorName: "A", DonorEmail: "a@example.com",
			},
			want: domainerrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SubmitDonation(ctx, tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDonationService_ApproveDonation(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)
	donation.Status = entity.DonationStatusPending

	donationRepo.EXPECT().
		FindDonationByID(ctx, donation.ID).
		Return(donation, nil)

	donationRepo.EXPECT().
		UpdateDonationStatus(ctx, donation.ID, entity.DonationStatusApproved).
		Return(nil)

	require.NoError(t, service.ApproveDonation(ctx, donation.ID))
}

func TestDonationService_ApproveDonation_NotPending(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)

	donationRepo.EXPECT().
		FindDonationByID(ctx, donation.ID).
		Return(donation, nil)

	err := service.ApproveDonation(ctx, donation.ID)
	require.ErrorIs(t, err, domainerrors.ErrDonationNotPending)
}

func TestDonationService_ApproveDonation_Deleted(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)
	donation.Status = entity.DonationStatusDeleted

	donationRepo.EXPECT().
		FindDonationByID(ctx, donation.ID).
		Return(donation, nil)

	err := service.ApproveDonation(ctx, donation.ID)
	require.ErrorIs(t, err, domainerrors.ErrDonationDeleted)
}

func TestDonationService_ApproveDonation_NotFound(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()
	donationID := uuid.New()

	donationRepo.EXPECT().
		FindDonationByID(ctx, donationID).
		Return(nil, repository.ErrDonationNotFound)

	err := service.ApproveDonation(ctx, donationID)
	require.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}

func TestDonationService_DeleteDonation(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)

	donationRepo.EXPECT().
		FindDonationByID(ctx, donation.ID).
		Return(donation, nil)

	donationRepo.EXPECT().
		UpdateDonationStatus(ctx, donation.ID, entity.DonationStatusDeleted).
		Return(nil)

	require.NoError(t, service.DeleteDonation(ctx, donation.ID))
}

func TestDonationService_DeleteDonation_AlreadyDeleted(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)
	donation.Status = entity.DonationStatusDeleted

	donationRepo.EXPECT().
		FindDonationByID(ctx, donation.ID).
		Return(donation, nil)

	err := service.DeleteDonation(ctx, donation.ID)
	require.ErrorIs(t, err, domainerrors.ErrDonationDeleted)
}

func TestDonationService_CheckAvailability(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donationRepo.EXPECT().
		FindApprovedByMedicine(ctx, "Paracetamol 500mg").
		Return([]*entity.Donation{
			testDonation("Paracetamol 500mg", "Athens", 20),
			testDonation("Paracetamol 500mg", "Patras", 5),
		}, nil)

	availability, err := service.CheckAvailability(ctx, "Paracetamol 500mg")
	require.NoError(t, err)

	assert.True(t, availability.Available)
	assert.Equal(t, 25, availability.TotalQuantity)
	assert.Equal(t, 2, availability.Donations)
}

func TestDonationService_CheckAvailability_NoneListed(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	service := newDonationService(t, donationRepo)
	ctx := context.Background()

	donationRepo.EXPECT().
		FindApprovedByMedicine(ctx, "Amoxicillin").
		Return(nil, nil)

	availability, err := service.CheckAvailability(ctx, "Amoxicillin")
	require.NoError(t, err)

	assert.False(t, availability.Available)
	assert.Equal(t, 0, availability.TotalQuantity)
	assert.Equal(t, 0, availability.Donations)
}
