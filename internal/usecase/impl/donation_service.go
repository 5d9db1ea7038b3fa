// Package impl contains the workflow coordinator implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "medishare/internal/delivery/context"
	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/repository"
	"medishare/internal/domain/service"
	"medishare/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type donationService struct {
	donationRepo repository.DonationRepository
	notifier     notifier
	logger       *slog.Logger
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	DonationRepo repository.DonationRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewDonationService creates a new donation coordinator instance.
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		donationRepo: params.DonationRepo,
		notifier:     notifier{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitDonation validates the submission and creates a pending donation.
func (srv *donationService) SubmitDonation(ctx context.Context, input *usecase.SubmitDonationInput) (*entity.Donation, error) {
	if err := validateDonationInput(input); err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		ID:           uuid.New(),
		MedicineName: input.MedicineName,
		Quantity:     input.Quantity,
		City:         input.City,
		Location:     locationFromLatLng(input.Latitude, input.Longitude),
		ExpiresAt:    input.ExpiresAt,
		Contact: entity.Contact{
			Name:  input.DonorName,
			Email: input.DonorEmail,
			Phone: input.DonorPhone,
		},
		Status: entity.DonationStatusPending,
	}

	if err := srv.donationRepo.CreateDonation(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to create donation")
	}

	srv.log(ctx).Info("Donation submitted",
		slog.Any("donationID", donation.ID),
		slog.String("medicine", donation.MedicineName),
		slog.Int("quantity", donation.Quantity),
	)

	return donation, nil
}

// ApproveDonation is the operator transition pending -> approved.
func (srv *donationService) ApproveDonation(ctx context.Context, donationID uuid.UUID) error {
	donation, err := srv.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return errors.Wrap(err, "failed to find donation")
	}

	switch donation.Status {
	case entity.DonationStatusPending:
		// The only state an operator approval is legal from.
	case entity.DonationStatusDeleted:
		return domainerrors.ErrDonationDeleted
	default:
		return domainerrors.ErrDonationNotPending
	}

	if err := srv.donationRepo.UpdateDonationStatus(ctx, donationID, entity.DonationStatusApproved); err != nil {
		return errors.Wrap(err, "failed to approve donation")
	}

	srv.log(ctx).Info("Donation approved", slog.Any("donationID", donationID))

	srv.notifier.dispatch(ctx, newEvent(donation.Contact.Email, service.TemplateDonationApproved, map[string]string{
		"donor_name":    donation.Contact.Name,
		"medicine_name": donation.MedicineName,
		"quantity":      formatQuantity(donation.Quantity),
		"city":          donation.City,
	}))

	return nil
}

// DeleteDonation removes a donation from all future inventory snapshots.
// Already-approved requests keep their immutable donor snapshot untouched.
func (srv *donationService) DeleteDonation(ctx context.Context, donationID uuid.UUID) error {
	donation, err := srv.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return errors.Wrap(err, "failed to find donation")
	}

	if donation.Status == entity.DonationStatusDeleted {
		return domainerrors.ErrDonationDeleted
	}

	if err := srv.donationRepo.UpdateDonationStatus(ctx, donationID, entity.DonationStatusDeleted); err != nil {
		return errors.Wrap(err, "failed to delete donation")
	}

	srv.log(ctx).Info("Donation deleted", slog.Any("donationID", donationID))

	return nil
}

// CheckAvailability reports whether an approved donation carries the medicine.
func (srv *donationService) CheckAvailability(ctx context.Context, medicineName string) (*usecase.Availability, error) {
	if strings.TrimSpace(medicineName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("medicine name is required")
	}

	donations, err := srv.donationRepo.FindApprovedByMedicine(ctx, medicineName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query availability")
	}

	availability := &usecase.Availability{
		MedicineName: medicineName,
		Donations:    len(donations),
	}
	for _, donation := range donations {
		availability.TotalQuantity += donation.Quantity
	}
	availability.Available = availability.TotalQuantity > 0

	return availability, nil
}

// validateDonationInput checks required fields before touching the store.
func validateDonationInput(input *usecase.SubmitDonationInput) error {
	switch {
	case strings.TrimSpace(input.MedicineName) == "":
		return domainerrors.ErrValidationFailed.WithDetails("medicine name is required")
	case strings.TrimSpace(input.City) == "":
		return domainerrors.ErrValidationFailed.WithDetails("city is required")
	case strings.TrimSpace(input.DonorName) == "":
		return domainerrors.ErrValidationFailed.WithDetails("donor name is required")
	case strings.TrimSpace(input.DonorEmail) == "":
		return domainerrors.ErrValidationFailed.WithDetails("donor email is required")
	}

	if input.Quantity <= 0 {
		return domainerrors.ErrInvalidQuantity.WithDetails("quantity must be a positive integer")
	}

	return nil
}

// locationFromLatLng builds an orb.Point when both coordinates are present.
func locationFromLatLng(lat, lng *float64) *orb.Point {
	if lat == nil || lng == nil {
		return nil
	}

	point := orb.Point{*lng, *lat}

	return &point
}
