package postgres

import (
	"context"

	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/repository"
	"medishare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateRequest persists a new pending request.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid request fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// ListRequests retrieves all requests, newest first.
func (repo *requestRepository) ListRequests(ctx context.Context) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// MarkApproved transitions a pending request to approved and copies the donor
// snapshot in the same guarded update. The status guard makes the transition
// single-shot: a request that already left pending matches no row.
func (repo *requestRepository) MarkApproved(ctx context.Context, id uuid.UUID, donor *entity.DonorSnapshot) error {
	updates := map[string]any{
		"status": entity.RequestStatusApproved,
	}
	applyDonorColumns(updates, donor)

	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ?", id, entity.RequestStatusPending).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to approve request")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// MarkRejected transitions a pending request to rejected.
func (repo *requestRepository) MarkRejected(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ?", id, entity.RequestStatusPending).
		Update("status", entity.RequestStatusRejected)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reject request")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// SetResolvedDonor backfills the donor snapshot on an approved request that is
// missing one. The resolved_donation_id IS NULL guard keeps an existing
// snapshot immutable.
func (repo *requestRepository) SetResolvedDonor(ctx context.Context, id uuid.UUID, donor *entity.DonorSnapshot) error {
	updates := map[string]any{}
	applyDonorColumns(updates, donor)

	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ? AND resolved_donation_id IS NULL", id, entity.RequestStatusApproved).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set resolved donor")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// MarkContactDisclosed flips the disclosed flag on an approved request.
// Guarded on the current value so the flag only ever goes false to true.
func (repo *requestRepository) MarkContactDisclosed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ? AND contact_disclosed = ?", id, entity.RequestStatusApproved, false).
		Update("contact_disclosed", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark contacts disclosed")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// conflictOrNotFound disambiguates a zero-row guarded update: the row either
// does not exist or exists in a state the guard excluded.
func (repo *requestRepository) conflictOrNotFound(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check request existence")
	}

	if count == 0 {
		return repository.ErrRequestNotFound
	}

	return repository.ErrRequestConflict
}

// applyDonorColumns spreads a donor snapshot over the resolved_* columns.
func applyDonorColumns(updates map[string]any, donor *entity.DonorSnapshot) {
	if donor == nil {
		return
	}

	lat, lng := columnsFromPoint(donor.Location)

	updates["resolved_donation_id"] = donor.DonationID
	updates["resolved_donor_name"] = donor.Name
	updates["resolved_donor_email"] = donor.Email
	updates["resolved_donor_phone"] = donor.Phone
	updates["resolved_donor_lat"] = lat
	updates["resolved_donor_lng"] = lng
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM RequestModel to a domain Request entity.
func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	request := &entity.Request{
		ID: data.ID,
		Contact: entity.Contact{
			Name:  data.RequesterName,
			Email: data.RequesterEmail,
			Phone: data.RequesterPhone,
		},
		MedicineName:     data.MedicineName,
		Quantity:         data.Quantity,
		City:             data.City,
		Location:         pointFromColumns(data.Latitude, data.Longitude),
		DocumentRef:      data.DocumentRef,
		Status:           entity.RequestStatus(data.Status),
		ContactDisclosed: data.ContactDisclosed,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.ResolvedDonationID != nil {
		request.ResolvedDonor = &entity.DonorSnapshot{
			DonationID: *data.ResolvedDonationID,
			Name:       data.ResolvedDonorName,
			Email:      data.ResolvedDonorEmail,
			Phone:      data.ResolvedDonorPhone,
			Location:   pointFromColumns(data.ResolvedDonorLat, data.ResolvedDonorLng),
		}
	}

	return request
}

// fromRequestDomain converts a domain Request entity to a GORM RequestModel.
func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	lat, lng := columnsFromPoint(data.Location)

	requestM := &model.RequestModel{
		ID:               data.ID,
		MedicineName:     data.MedicineName,
		Quantity:         data.Quantity,
		City:             data.City,
		Latitude:         lat,
		Longitude:        lng,
		DocumentRef:      data.DocumentRef,
		RequesterName:    data.Contact.Name,
		RequesterEmail:   data.Contact.Email,
		RequesterPhone:   data.Contact.Phone,
		Status:           string(data.Status),
		ContactDisclosed: data.ContactDisclosed,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.ResolvedDonor != nil {
		donorLat, donorLng := columnsFromPoint(data.ResolvedDonor.Location)
		donationID := data.ResolvedDonor.DonationID
		requestM.ResolvedDonationID = &donationID
		requestM.ResolvedDonorName = data.ResolvedDonor.Name
		requestM.ResolvedDonorEmail = data.ResolvedDonor.Email
		requestM.ResolvedDonorPhone = data.ResolvedDonor.Phone
		requestM.ResolvedDonorLat = donorLat
		requestM.ResolvedDonorLng = donorLng
	}

	return requestM
}
