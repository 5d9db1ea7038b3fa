package impl

import (
	"context"
	"testing"

	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/repository"
	"medishare/internal/domain/service"
	mockRepo "medishare/internal/mocks/repository"
	mockSvc "medishare/internal/mocks/service"
	"medishare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceMocks struct {
	donationRepo *mockRepo.MockDonationRepository
	requestRepo  *mockRepo.MockRequestRepository
	publisher    *mockSvc.MockEventPublisher
}

func newRequestService(t *testing.T) (usecase.RequestUsecase, requestServiceMocks) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	publisher := newQuietPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DonationRepo().Return(donationRepo).Maybe()
	factory.EXPECT().RequestRepo().Return(requestRepo).Maybe()

	svc := NewRequestService(RequestServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		DonationRepo: donationRepo,
		RequestRepo:  requestRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return svc, requestServiceMocks{
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		publisher:    publisher,
	}
}

func submitInput(medicine, city string, quantity int) *usecase.SubmitRequestInput {
	return &usecase.SubmitRequestInput{
		MedicineName:   medicine,
		Quantity:       quantity,
		City:           city,
		RequesterName:  "Amira",
		RequesterEmail: "amira@example.com",
	}
}

func TestRequestService_SubmitRequest_Eligible(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	mocks.donationRepo.EXPECT().
		FindApprovedDonations(ctx).
		Return([]*entity.Donation{testDonation("Paracetamol 500mg", "Athens", 25)}, nil)

	mocks.requestRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	request, err := svc.SubmitRequest(ctx, submitInput("Paracetamol 500mg", "Athens", 20))
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, 20, request.Quantity)
	assert.False(t, request.ContactDisclosed)
}

func TestRequestService_SubmitRequest_AdmissionRejections(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []*entity.Donation
		input    *usecase.SubmitRequestInput
		want     error
	}{
		{
			name:     "no donor in city",
			snapshot: []*entity.Donation{testDonation("Paracetamol 500mg", "Athens", 25)},
			input:    submitInput("Paracetamol 500mg", "Patras", 5),
			want:     domainerrors.ErrNoDonorInCity,
		},
		{
			name:     "medicine unavailable",
			snapshot: []*entity.Donation{testDonation("Insulin", "Athens", 25)},
			input:    submitInput("Amoxicillin", "Athens", 5),
			want:     domainerrors.ErrMedicineUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newRequestService(t)
			ctx := context.Background()

			mocks.donationRepo.EXPECT().
				FindApprovedDonations(ctx).
				Return(tt.snapshot, nil)

			// No CreateRequest expectation: a rejected admission persists nothing.
			_, err := svc.SubmitRequest(ctx, tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequestService_SubmitRequest_InsufficientQuantity(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	mocks.donationRepo.EXPECT().
		FindApprovedDonations(ctx).
		Return([]*entity.Donation{testDonation("Insulin", "Athens", 3)}, nil)

	_, err := svc.SubmitRequest(ctx, submitInput("Insulin", "Athens", 5))

	var insufficientErr *domainerrors.InsufficientQuantityError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 3, insufficientErr.Available())
}

func TestRequestService_SubmitRequest_ValidationErrors(t *testing.T) {
	svc, _ := newRequestService(t)
	ctx := context.Background()

	_, err := svc.SubmitRequest(ctx, &usecase.SubmitRequestInput{
		Quantity: 5, RequesterName: "Amira", RequesterEmail: "amira@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SubmitRequest(ctx, submitInput("Insulin", "Athens", 0))
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestRequestService_ListRequests(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	expected := []*entity.Request{
		testRequest("Insulin", "Athens", 2),
		testRequest("Paracetamol 500mg", "Patras", 10),
	}
	mocks.requestRepo.EXPECT().ListRequests(ctx).Return(expected, nil)

	requests, err := svc.ListRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestRequestService_ApproveRequest(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	donation := testDonation("Paracetamol 500mg", "Athens", 25)
	request := testRequest("Paracetamol 500mg", "Athens", 20)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.donationRepo.EXPECT().
		FindApprovedDonations(ctx).
		Return([]*entity.Donation{donation}, nil)

	mocks.donationRepo.EXPECT().
		DecrementQuantity(ctx, donation.ID, 20).
		Return(5, nil)

	mocks.requestRepo.EXPECT().
		MarkApproved(ctx, request.ID, mock.AnythingOfType("*entity.DonorSnapshot")).
		Run(func(_ context.Context, _ uuid.UUID, donor *entity.DonorSnapshot) {
			assert.Equal(t, donation.ID, donor.DonationID)
			assert.Equal(t, donation.Contact.Name, donor.Name)
			assert.Equal(t, donation.Contact.Email, donor.Email)
			assert.Equal(t, donation.Contact.Phone, donor.Phone)
		}).
		Return(nil)

	remaining, err := svc.ApproveRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

// An approval that drains the donation to zero retires it in the same transaction.
func TestRequestService_ApproveRequest_ExhaustsDonation(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)
	request := testRequest("Insulin", "Athens", 10)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.donationRepo.EXPECT().
		FindApprovedDonations(ctx).
		Return([]*entity.Donation{donation}, nil)

	mocks.donationRepo.EXPECT().
		DecrementQuantity(ctx, donation.ID, 10).
		Return(0, nil)

	mocks.donationRepo.EXPECT().
		UpdateDonationStatus(ctx, donation.ID, entity.DonationStatusDeleted).
		Return(nil)

	mocks.requestRepo.EXPECT().
		MarkApproved(ctx, request.ID, mock.AnythingOfType("*entity.DonorSnapshot")).
		Return(nil)

	remaining, err := svc.ApproveRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

// A lost decrement race surfaces as an insufficient-quantity rejection carrying
// the latest known quantity.
func TestRequestService_ApproveRequest_QuantityConflict(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 10)
	request := testRequest("Insulin", "Athens", 8)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.donationRepo.EXPECT().
		FindApprovedDonations(ctx).
		Return([]*entity.Donation{donation}, nil)

	mocks.donationRepo.EXPECT().
		DecrementQuantity(ctx, donation.ID, 8).
		Return(0, repository.ErrQuantityConflict)

	drained := testDonation("Insulin", "Athens", 3)
	drained.ID = donation.ID
	mocks.donationRepo.EXPECT().
		FindDonationByID(ctx, donation.ID).
		Return(drained, nil)

	_, err := svc.ApproveRequest(ctx, request.ID)

	var insufficientErr *domainerrors.InsufficientQuantityError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 3, insufficientErr.Available())
}

func TestRequestService_ApproveRequest_AlreadyResolved(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := testRequest("Insulin", "Athens", 2)
	request.Status = entity.RequestStatusApproved

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	_, err := svc.ApproveRequest(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)
}

func TestRequestService_ApproveRequest_NotFound(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	_, err := svc.ApproveRequest(ctx, requestID)
	require.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

// Inventory may have shifted since submission; approval re-checks eligibility.
func TestRequestService_ApproveRequest_StaleInventory(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := testRequest("Insulin", "Athens", 2)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.donationRepo.EXPECT().
		FindApprovedDonations(ctx).
		Return(nil, nil)

	_, err := svc.ApproveRequest(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrMedicineUnavailable)
}

func TestRequestService_RejectRequest(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := testRequest("Insulin", "Athens", 2)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.requestRepo.EXPECT().
		MarkRejected(ctx, request.ID).
		Return(nil)

	require.NoError(t, svc.RejectRequest(ctx, request.ID))
}

func TestRequestService_RejectRequest_AlreadyResolved(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := testRequest("Insulin", "Athens", 2)
	request.Status = entity.RequestStatusRejected

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	err := svc.RejectRequest(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)
}

func approvedRequestWithDonor() *entity.Request {
	request := testRequest("Paracetamol 500mg", "Athens", 20)
	request.Status = entity.RequestStatusApproved
	request.ResolvedDonor = &entity.DonorSnapshot{
		DonationID: uuid.New(),
		Name:       "City Pharmacy",
		Email:      "pharmacy@example.com",
		Phone:      "+30 210 0000000",
	}

	return request
}

func TestRequestService_DiscloseContacts(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := approvedRequestWithDonor()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.requestRepo.EXPECT().
		MarkContactDisclosed(ctx, request.ID).
		Return(nil)

	result, err := svc.DiscloseContacts(ctx, request.ID)
	require.NoError(t, err)

	assert.False(t, result.AlreadyDisclosed)
	assert.True(t, result.DonorNotified)
	assert.True(t, result.RequesterNotified)
	assert.Empty(t, result.NotifierErrors)
}

// Re-disclosure re-emits the notifications but never touches the flag again.
func TestRequestService_DiscloseContacts_AlreadyDisclosed(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := approvedRequestWithDonor()
	request.ContactDisclosed = true

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	// No MarkContactDisclosed expectation: the flag flips at most once.
	result, err := svc.DiscloseContacts(ctx, request.ID)
	require.NoError(t, err)

	assert.True(t, result.AlreadyDisclosed)
	assert.True(t, result.DonorNotified)
	assert.True(t, result.RequesterNotified)
}

func TestRequestService_DiscloseContacts_NotApproved(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := testRequest("Insulin", "Athens", 2)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	_, err := svc.DiscloseContacts(ctx, request.ID)
	require.ErrorIs(t, err, domainerrors.ErrRequestNotApproved)
}

// Notifier failures are reported in the result but the flag is set regardless.
func TestRequestService_DiscloseContacts_NotifierFailure(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	svc := NewRequestService(RequestServiceParams{
		TxManager:    newPassthroughTxManager(t, factory),
		DonationRepo: donationRepo,
		RequestRepo:  requestRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	request := approvedRequestWithDonor()

	requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
			return event.Template == service.TemplateRequestApprovedDonor
		})).
		Return(errors.New("broker unavailable"))

	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
			return event.Template == service.TemplateRequestApprovedRequester
		})).
		Return(nil)

	requestRepo.EXPECT().
		MarkContactDisclosed(ctx, request.ID).
		Return(nil)

	result, err := svc.DiscloseContacts(ctx, request.ID)
	require.NoError(t, err)

	assert.False(t, result.DonorNotified)
	assert.True(t, result.RequesterNotified)
	require.Len(t, result.NotifierErrors, 1)
	assert.Contains(t, result.NotifierErrors[0], "broker unavailable")
}

// A missing donor snapshot is backfilled from the current inventory and cached.
func TestRequestService_DiscloseContacts_BackfillsDonor(t *testing.T) {
	svc, mocks := newRequestService(t)
	ctx := context.Background()

	request := testRequest("Paracetamol 500mg", "Athens", 20)
	request.Status = entity.RequestStatusApproved

	donation := testDonation("Paracetamol 500mg", "Athens", 5)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, request.ID).
		Return(request, nil)

	mocks.donationRepo.EXPECT().
		FindApprovedByMedicine(ctx, "Paracetamol 500mg").
		Return([]*entity.Donation{donation}, nil)

	mocks.requestRepo.EXPECT().
		SetResolvedDonor(ctx, request.ID, mock.AnythingOfType("*entity.DonorSnapshot")).
		Run(func(_ context.Context, _ uuid.UUID, donor *entity.DonorSnapshot) {
			assert.Equal(t, donation.ID, donor.DonationID)
			assert.Equal(t, donation.Contact.Email, donor.Email)
		}).
		Return(nil)

	mocks.requestRepo.EXPECT().
		MarkContactDisclosed(ctx, request.ID).
		Return(nil)

	result, err := svc.DiscloseContacts(ctx, request.ID)
	require.NoError(t, err)
	assert.True(t, result.DonorNotified)
	assert.True(t, result.RequesterNotified)
}
