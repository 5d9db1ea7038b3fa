// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/repository"
	"medishare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// CreateDonation persists a new donation.
func (repo *donationRepository) CreateDonation(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid donation fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	donation.ID = donationM.ID
	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// FindDonationByID retrieves a donation by its unique ID.
func (repo *donationRepository) FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by ID")
	}

	return toDonationDomain(&donationM), nil
}

// FindApprovedDonations retrieves the inventory snapshot for the matching
// engine: all approved donations, oldest first so the longest-waiting
// donation serves a request when several carry the same medicine.
func (repo *donationRepository) FindApprovedDonations(ctx context.Context) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.DonationStatusApproved).
		Order("created_at ASC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved donations")
	}

	return toDonationDomainList(donationModels), nil
}

// FindApprovedByMedicine retrieves approved donations carrying the exact medicine name.
func (repo *donationRepository) FindApprovedByMedicine(ctx context.Context, medicineName string) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND medicine_name = ?", entity.DonationStatusApproved, medicineName).
		Order("created_at ASC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved donations by medicine")
	}

	return toDonationDomainList(donationModels), nil
}

// UpdateDonationStatus transitions the donation lifecycle state.
func (repo *donationRepository) UpdateDonationStatus(ctx context.Context, id uuid.UUID, status entity.DonationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// DecrementQuantity performs the conditional atomic decrement that keeps
// reservations serialized per donation. The quantity check and the write are
// one UPDATE statement, so two concurrent approvals can never both pass the
// guard against a stale read.
func (repo *donationRepository) DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, errors.Errorf("decrement amount must be positive, got %d", amount)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ? AND quantity >= ?", id, entity.DonationStatusApproved, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to decrement donation quantity")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrQuantityConflict
	}

	var donationM model.DonationModel
	if err := repo.db.WithContext(ctx).
		Select("quantity").
		Where("id = ?", id).
		First(&donationM).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read remaining quantity")
	}

	return donationM.Quantity, nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:           data.ID,
		MedicineName: data.MedicineName,
		Quantity:     data.Quantity,
		City:         data.City,
		Location:     pointFromColumns(data.Latitude, data.Longitude),
		ExpiresAt:    data.ExpiresAt,
		Contact: entity.Contact{
			Name:  data.DonorName,
			Email: data.DonorEmail,
			Phone: data.DonorPhone,
		},
		Status:    entity.DonationStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDonationDomainList(models []*model.DonationModel) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(models))
	for _, donationM := range models {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations
}

// fromDonationDomain converts a domain Donation entity to a GORM DonationModel.
func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	lat, lng := columnsFromPoint(data.Location)

	return &model.DonationModel{
		ID:           data.ID,
		MedicineName: data.MedicineName,
		Quantity:     data.Quantity,
		City:         data.City,
		Latitude:     lat,
		Longitude:    lng,
		ExpiresAt:    data.ExpiresAt,
		DonorName:    data.Contact.Name,
		DonorEmail:   data.Contact.Email,
		DonorPhone:   data.Contact.Phone,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// pointFromColumns rebuilds an orb.Point from nullable lat/lng columns.
func pointFromColumns(lat, lng *float64) *orb.Point {
	if lat == nil || lng == nil {
		return nil
	}

	point := orb.Point{*lng, *lat}

	return &point
}

// columnsFromPoint splits an orb.Point into nullable lat/lng columns.
func columnsFromPoint(point *orb.Point) (lat, lng *float64) {
	if point == nil {
		return nil, nil
	}

	latVal := point.Lat()
	lngVal := point.Lon()

	return &latVal, &lngVal
}
