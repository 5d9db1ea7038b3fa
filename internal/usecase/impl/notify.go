package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "medishare/internal/delivery/context"
	"medishare/internal/domain/service"

	"github.com/google/uuid"
)

// notifyTimeout bounds a single best-effort publish attempt.
const notifyTimeout = 10 * time.Second

// notifier is the shared fire-and-forget notification dispatcher.
// Publishing happens strictly after the store mutation commits and never
// affects the caller's result.
type notifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// dispatch publishes an event in the background. Failures are logged only.
func (n *notifier) dispatch(ctx context.Context, event *service.NotificationEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	// Detach from the caller's cancellation: the HTTP response must not
	// wait on, or be failed by, notification delivery.
	bgCtx := context.WithoutCancel(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(bgCtx, notifyTimeout)
		defer cancel()

		if err := n.publisher.PublishNotificationEvent(publishCtx, event); err != nil {
			n.logger.Warn("Failed to publish notification event",
				slog.String("event_id", event.EventID),
				slog.String("template", string(event.Template)),
				slog.Any("error", err),
			)
		}
	}()
}

// publish sends an event synchronously and reports the error to the caller.
// Used by contact disclosure, which surfaces notifier failures in its result.
func (n *notifier) publish(ctx context.Context, event *service.NotificationEvent) error {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	return n.publisher.PublishNotificationEvent(ctx, event)
}

// newEvent assembles a notification event for a recipient.
func newEvent(recipient string, template service.TemplateKind, data map[string]string) *service.NotificationEvent {
	return &service.NotificationEvent{
		EventID:   uuid.New().String(),
		Recipient: recipient,
		Template:  template,
		Data:      data,
	}
}

// formatCoordinate renders a latitude or longitude for template data.
func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

// formatQuantity renders a quantity for template data.
func formatQuantity(value int) string {
	return strconv.Itoa(value)
}
