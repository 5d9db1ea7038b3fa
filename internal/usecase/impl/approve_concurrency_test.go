package impl

import (
	"context"
	"sort"
	"sync"
	"testing"

	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is a mutex-guarded in-memory store implementing the repository
// interfaces, so concurrent approvals can exercise the conditional decrement
// the way the database does.
type memoryStore struct {
	mu        sync.Mutex
	donations map[uuid.UUID]*entity.Donation
	requests  map[uuid.UUID]*entity.Request
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		donations: make(map[uuid.UUID]*entity.Donation),
		requests:  make(map[uuid.UUID]*entity.Request),
	}
}

func (s *memoryStore) CreateDonation(_ context.Context, donation *entity.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donations[donation.ID] = donation

	return nil
}

func (s *memoryStore) FindDonationByID(_ context.Context, id uuid.UUID) (*entity.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation, ok := s.donations[id]
	if !ok {
		return nil, repository.ErrDonationNotFound
	}
	copied := *donation

	return &copied, nil
}

func (s *memoryStore) FindApprovedDonations(_ context.Context) ([]*entity.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snapshot []*entity.Donation
	for _, donation := range s.donations {
		if donation.Status == entity.DonationStatusApproved {
			copied := *donation
			snapshot = append(snapshot, &copied)
		}
	}
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.Before(snapshot[j].CreatedAt)
	})

	return snapshot, nil
}

func (s *memoryStore) FindApprovedByMedicine(ctx context.Context, medicineName string) ([]*entity.Donation, error) {
	snapshot, err := s.FindApprovedDonations(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*entity.Donation
	for _, donation := range snapshot {
		if donation.MedicineName == medicineName {
			matched = append(matched, donation)
		}
	}

	return matched, nil
}

func (s *memoryStore) UpdateDonationStatus(_ context.Context, id uuid.UUID, status entity.DonationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation, ok := s.donations[id]
	if !ok {
		return repository.ErrDonationNotFound
	}
	donation.Status = status

	return nil
}

func (s *memoryStore) DecrementQuantity(_ context.Context, id uuid.UUID, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation, ok := s.donations[id]
	if !ok || donation.Status != entity.DonationStatusApproved || donation.Quantity < amount {
		return 0, repository.ErrQuantityConflict
	}
	donation.Quantity -= amount

	return donation.Quantity, nil
}

func (s *memoryStore) CreateRequest(_ context.Context, request *entity.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[request.ID] = request

	return nil
}

func (s *memoryStore) FindRequestByID(_ context.Context, id uuid.UUID) (*entity.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}
	copied := *request

	return &copied, nil
}

func (s *memoryStore) ListRequests(_ context.Context) ([]*entity.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]*entity.Request, 0, len(s.requests))
	for _, request := range s.requests {
		copied := *request
		requests = append(requests, &copied)
	}

	return requests, nil
}

func (s *memoryStore) MarkApproved(_ context.Context, id uuid.UUID, donor *entity.DonorSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok || request.Status != entity.RequestStatusPending {
		return repository.ErrRequestConflict
	}
	request.Status = entity.RequestStatusApproved
	request.ResolvedDonor = donor

	return nil
}

func (s *memoryStore) MarkRejected(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok || request.Status != entity.RequestStatusPending {
		return repository.ErrRequestConflict
	}
	request.Status = entity.RequestStatusRejected

	return nil
}

func (s *memoryStore) SetResolvedDonor(_ context.Context, id uuid.UUID, donor *entity.DonorSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok || request.Status != entity.RequestStatusApproved || request.ResolvedDonor != nil {
		return repository.ErrRequestConflict
	}
	request.ResolvedDonor = donor

	return nil
}

func (s *memoryStore) MarkContactDisclosed(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok || request.Status != entity.RequestStatusApproved || request.ContactDisclosed {
		return repository.ErrRequestConflict
	}
	request.ContactDisclosed = true

	return nil
}

// memoryTxManager runs the callback against the store directly. The store's
// own locking stands in for transaction isolation.
type memoryTxManager struct {
	store *memoryStore
}

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memoryFactory{store: m.store})
}

type memoryFactory struct {
	store *memoryStore
}

func (f memoryFactory) DonationRepo() repository.DonationRepository { return f.store }
func (f memoryFactory) RequestRepo() repository.RequestRepository   { return f.store }

// Two concurrent approvals against the same donation must never both pass a
// stale quantity check: with 5 available and two requests for 3, exactly one
// reservation commits and 2 remain.
func TestApproveRequest_ConcurrentApprovalsNeverOversell(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	donation := testDonation("Insulin", "Athens", 5)
	require.NoError(t, store.CreateDonation(ctx, donation))

	first := testRequest("Insulin", "Athens", 3)
	second := testRequest("Insulin", "Athens", 3)
	require.NoError(t, store.CreateRequest(ctx, first))
	require.NoError(t, store.CreateRequest(ctx, second))

	svc := NewRequestService(RequestServiceParams{
		TxManager:    &memoryTxManager{store: store},
		DonationRepo: store,
		RequestRepo:  store,
		Publisher:    newQuietPublisher(t),
		Logger:       newDiscardLogger(),
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, requestID := range []uuid.UUID{first.ID, second.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.ApproveRequest(ctx, requestID)
		}()
	}
	wg.Wait()

	var approvals, rejections int
	for _, err := range errs {
		if err == nil {
			approvals++

			continue
		}

		var insufficientErr *domainerrors.InsufficientQuantityError
		require.ErrorAs(t, err, &insufficientErr)
		rejections++
	}

	assert.Equal(t, 1, approvals)
	assert.Equal(t, 1, rejections)

	remaining, err := store.FindDonationByID(ctx, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining.Quantity)
	assert.Equal(t, entity.DonationStatusApproved, remaining.Status)
}
