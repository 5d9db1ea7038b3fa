package impl

import (
	"context"
	"io"
	"log/slog"

	"medishare/internal/domain/entity"
	"medishare/internal/domain/repository"
	mockRepo "medishare/internal/mocks/repository"
	mockSvc "medishare/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newQuietPublisher returns a publisher mock that tolerates fire-and-forget
// dispatches without requiring them, since they run on background goroutines.
func newQuietPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

// newPassthroughTxManager returns a transaction manager mock that runs the
// callback against the given factory, mimicking a committed transaction.
func newPassthroughTxManager(t interface {
	mock.TestingT
	Cleanup(func())
}, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	return txManager
}

func testDonation(medicine, city string, quantity int) *entity.Donation {
	return &entity.Donation{
		ID:           uuid.New(),
		MedicineName: medicine,
		Quantity:     quantity,
		City:         city,
		Contact: entity.Contact{
			Name:  "City Pharmacy",
			Email: "pharmacy@example.com",
			Phone: "+30 210 0000000",
		},
		Status: entity.DonationStatusApproved,
	}
}

func testRequest(medicine, city string, quantity int) *entity.Request {
	return &entity.Request{
		ID:           uuid.New(),
		MedicineName: medicine,
		Quantity:     quantity,
		City:         city,
		Contact: entity.Contact{
			Name:  "Amira",
			Email: "amira@example.com",
			Phone: "+30 694 0000000",
		},
		Status: entity.RequestStatusPending,
	}
}
