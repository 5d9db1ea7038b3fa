package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "medishare/internal/delivery/context"
	"medishare/internal/domain/entity"
	domainerrors "medishare/internal/domain/errors"
	"medishare/internal/domain/matching"
	"medishare/internal/domain/repository"
	"medishare/internal/domain/service"
	"medishare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type requestService struct {
	txManager    repository.TransactionManager
	donationRepo repository.DonationRepository
	requestRepo  repository.RequestRepository
	notifier     notifier
	logger       *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonationRepo repository.DonationRepository
	RequestRepo  repository.RequestRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewRequestService creates a new request coordinator instance.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:    params.TxManager,
		donationRepo: params.DonationRepo,
		requestRepo:  params.RequestRepo,
		notifier:     notifier{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitRequest runs the matching engine against the current inventory
// snapshot purely as an admission check. Nothing is reserved here: quantity
// is only decremented at approval, against a fresh snapshot.
func (srv *requestService) SubmitRequest(ctx context.Context, input *usecase.SubmitRequestInput) (*entity.Request, error) {
	if err := validateRequestInput(input); err != nil {
		return nil, err
	}

	request := &entity.Request{
		ID:           uuid.New(),
		MedicineName: input.MedicineName,
		Quantity:     input.Quantity,
		City:         input.City,
		Location:     locationFromLatLng(input.Latitude, input.Longitude),
		DocumentRef:  input.DocumentRef,
		Contact: entity.Contact{
			Name:  input.RequesterName,
			Email: input.RequesterEmail,
			Phone: input.RequesterPhone,
		},
		Status: entity.RequestStatusPending,
	}

	snapshot, err := srv.donationRepo.FindApprovedDonations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inventory snapshot")
	}

	decision, err := matching.Evaluate(request, snapshot)
	if err != nil {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(err.Error())
	}
	if !decision.Eligible() {
		return nil, admissionError(decision)
	}

	if err := srv.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	srv.log(ctx).Info("Request submitted",
		slog.Any("requestID", request.ID),
		slog.String("medicine", request.MedicineName),
		slog.Int("quantity", request.Quantity),
	)

	srv.notifier.dispatch(ctx, newEvent(request.Contact.Email, service.TemplateRequestReceived, map[string]string{
		"requester_name": request.Contact.Name,
		"medicine_name":  request.MedicineName,
		"quantity":       formatQuantity(request.Quantity),
	}))

	return request, nil
}

// ListRequests retrieves all requests, newest first.
func (srv *requestService) ListRequests(ctx context.Context) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.ListRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ApproveRequest is the synchronization point of the whole workflow. The
// request is re-evaluated against a fresh snapshot inside one transaction,
// and the reservation commits through the store's conditional decrement so
// two concurrent approvals against the same donation can never both pass a
// stale quantity check.
func (srv *requestService) ApproveRequest(ctx context.Context, requestID uuid.UUID) (int, error) {
	var remaining int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()
		donationRepo := repoFactory.DonationRepo()

		request, err := requestRepo.FindRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to find request")
		}
		if request.Resolved() {
			return domainerrors.ErrAlreadyResolved
		}

		// Staleness is expected: quantity may have changed since submission,
		// so eligibility is re-checked, never assumed.
		snapshot, err := donationRepo.FindApprovedDonations(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load inventory snapshot")
		}

		decision, err := matching.Evaluate(request, snapshot)
		if err != nil {
			return domainerrors.ErrInvalidQuantity.WithDetails(err.Error())
		}
		if !decision.Eligible() {
			return admissionError(decision)
		}

		matched := donationFromSnapshot(snapshot, decision.DonationID)
		if matched == nil {
			return domainerrors.ErrDonationNotFound
		}

		rem, err := donationRepo.DecrementQuantity(ctx, matched.ID, request.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrQuantityConflict) {
				// A concurrent reservation won the race; report the latest
				// known quantity instead of silently proceeding.
				return domainerrors.NewInsufficientQuantityError(srv.latestQuantity(ctx, donationRepo, matched.ID))
			}

			return errors.Wrap(err, "failed to decrement donation quantity")
		}

		if rem == 0 {
			if err := donationRepo.UpdateDonationStatus(ctx, matched.ID, entity.DonationStatusDeleted); err != nil {
				return errors.Wrap(err, "failed to retire exhausted donation")
			}
		}

		donor := &entity.DonorSnapshot{
			DonationID: matched.ID,
			Name:       matched.Contact.Name,
			Email:      matched.Contact.Email,
			Phone:      matched.Contact.Phone,
			Location:   matched.Location,
		}
		if err := requestRepo.MarkApproved(ctx, requestID, donor); err != nil {
			if errors.Is(err, repository.ErrRequestConflict) {
				return domainerrors.ErrAlreadyResolved
			}

			return errors.Wrap(err, "failed to mark request approved")
		}

		remaining = rem

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Request approved",
		slog.Any("requestID", requestID),
		slog.Int("remainingQuantity", remaining),
	)

	return remaining, nil
}

// RejectRequest transitions a pending request to rejected.
func (srv *requestService) RejectRequest(ctx context.Context, requestID uuid.UUID) error {
	request, err := srv.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to find request")
	}
	if request.Resolved() {
		return domainerrors.ErrAlreadyResolved
	}

	if err := srv.requestRepo.MarkRejected(ctx, requestID); err != nil {
		if errors.Is(err, repository.ErrRequestConflict) {
			return domainerrors.ErrAlreadyResolved
		}

		return errors.Wrap(err, "failed to mark request rejected")
	}

	srv.log(ctx).Info("Request rejected", slog.Any("requestID", requestID))

	srv.notifier.dispatch(ctx, newEvent(request.Contact.Email, service.TemplateRequestRejected, map[string]string{
		"requester_name": request.Contact.Name,
		"medicine_name":  request.MedicineName,
		"quantity":       formatQuantity(request.Quantity),
	}))

	return nil
}

// DiscloseContacts emits the two disclosure notifications and records the
// disclosure intent. The disclosed flag is set even when the notifier fails;
// failures are reported back but never rolled back.
func (srv *requestService) DiscloseContacts(ctx context.Context, requestID uuid.UUID) (*usecase.DisclosureResult, error) {
	request, err := srv.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}
	if request.Status != entity.RequestStatusApproved {
		return nil, domainerrors.ErrRequestNotApproved
	}

	donor := request.ResolvedDonor
	if donor == nil {
		donor, err = srv.resolveDonor(ctx, request)
		if err != nil {
			return nil, err
		}
	}

	result := &usecase.DisclosureResult{
		RequestID:        requestID,
		AlreadyDisclosed: request.ContactDisclosed,
	}

	if err := srv.notifier.publish(ctx, srv.donorDisclosureEvent(request, donor)); err != nil {
		srv.log(ctx).Warn("Donor disclosure notification failed", slog.Any("requestID", requestID), slog.Any("error", err))
		result.NotifierErrors = append(result.NotifierErrors, errors.Wrap(err, "donor notification").Error())
	} else {
		result.DonorNotified = true
	}

	if err := srv.notifier.publish(ctx, srv.requesterDisclosureEvent(request, donor)); err != nil {
		srv.log(ctx).Warn("Requester disclosure notification failed", slog.Any("requestID", requestID), slog.Any("error", err))
		result.NotifierErrors = append(result.NotifierErrors, errors.Wrap(err, "requester notification").Error())
	} else {
		result.RequesterNotified = true
	}

	if !request.ContactDisclosed {
		if err := srv.requestRepo.MarkContactDisclosed(ctx, requestID); err != nil {
			return nil, errors.Wrap(err, "failed to record contact disclosure")
		}
	}

	srv.log(ctx).Info("Contacts disclosed",
		slog.Any("requestID", requestID),
		slog.Bool("donorNotified", result.DonorNotified),
		slog.Bool("requesterNotified", result.RequesterNotified),
	)

	return result, nil
}

// resolveDonor backfills a missing donor snapshot from the current inventory
// and caches it on the request.
func (srv *requestService) resolveDonor(ctx context.Context, request *entity.Request) (*entity.DonorSnapshot, error) {
	donations, err := srv.donationRepo.FindApprovedByMedicine(ctx, request.MedicineName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve donor")
	}
	if len(donations) == 0 {
		return nil, domainerrors.ErrDonationNotFound.WrapMessage("donor snapshot missing and no approved donation carries the medicine")
	}

	matched := donations[0]
	donor := &entity.DonorSnapshot{
		DonationID: matched.ID,
		Name:       matched.Contact.Name,
		Email:      matched.Contact.Email,
		Phone:      matched.Contact.Phone,
		Location:   matched.Location,
	}

	if err := srv.requestRepo.SetResolvedDonor(ctx, request.ID, donor); err != nil {
		return nil, errors.Wrap(err, "failed to cache donor snapshot")
	}

	return donor, nil
}

// donorDisclosureEvent carries the requester's contact to the donor.
func (srv *requestService) donorDisclosureEvent(request *entity.Request, donor *entity.DonorSnapshot) *service.NotificationEvent {
	data := map[string]string{
		"donor_name":      donor.Name,
		"medicine_name":   request.MedicineName,
		"quantity":        formatQuantity(request.Quantity),
		"requester_name":  request.Contact.Name,
		"requester_email": request.Contact.Email,
		"requester_phone": request.Contact.Phone,
		"requester_city":  request.City,
	}
	if request.Location != nil {
		data["requester_lat"] = formatCoordinate(request.Location.Lat())
		data["requester_lng"] = formatCoordinate(request.Location.Lon())
	}

	return newEvent(donor.Email, service.TemplateRequestApprovedDonor, data)
}

// requesterDisclosureEvent carries the donor's contact to the requester.
func (srv *requestService) requesterDisclosureEvent(request *entity.Request, donor *entity.DonorSnapshot) *service.NotificationEvent {
	data := map[string]string{
		"requester_name": request.Contact.Name,
		"medicine_name":  request.MedicineName,
		"quantity":       formatQuantity(request.Quantity),
		"donor_name":     donor.Name,
		"donor_email":    donor.Email,
		"donor_phone":    donor.Phone,
	}
	if donor.Location != nil {
		data["donor_lat"] = formatCoordinate(donor.Location.Lat())
		data["donor_lng"] = formatCoordinate(donor.Location.Lon())
	}

	return newEvent(request.Contact.Email, service.TemplateRequestApprovedRequester, data)
}

// latestQuantity re-reads a donation's quantity for rejection feedback.
// A failed read degrades to zero rather than masking the rejection.
func (srv *requestService) latestQuantity(ctx context.Context, donationRepo repository.DonationRepository, donationID uuid.UUID) int {
	donation, err := donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return 0
	}

	return donation.Quantity
}

// admissionError maps an ineligible decision to the caller-facing rejection.
func admissionError(decision matching.Decision) error {
	switch decision.Outcome {
	case matching.OutcomeNoDonorInCity:
		return domainerrors.ErrNoDonorInCity
	case matching.OutcomeMedicineUnavailable:
		return domainerrors.ErrMedicineUnavailable
	case matching.OutcomeInsufficientQuantity:
		return domainerrors.NewInsufficientQuantityError(decision.Available)
	default:
		return domainerrors.ErrInternalError.WrapMessage("unexpected matching outcome")
	}
}

// donationFromSnapshot returns the snapshot entry with the given id.
func donationFromSnapshot(snapshot []*entity.Donation, id uuid.UUID) *entity.Donation {
	for _, donation := range snapshot {
		if donation.ID == id {
			return donation
		}
	}

	return nil
}

// validateRequestInput checks required fields before touching the store.
func validateRequestInput(input *usecase.SubmitRequestInput) error {
	switch {
	case strings.TrimSpace(input.MedicineName) == "":
		return domainerrors.ErrValidationFailed.WithDetails("medicine name is required")
	case strings.TrimSpace(input.RequesterName) == "":
		return domainerrors.ErrValidationFailed.WithDetails("requester name is required")
	case strings.TrimSpace(input.RequesterEmail) == "":
		return domainerrors.ErrValidationFailed.WithDetails("requester email is required")
	}

	if input.Quantity <= 0 {
		return domainerrors.ErrInvalidQuantity.WithDetails("quantity must be a positive integer")
	}

	return nil
}
