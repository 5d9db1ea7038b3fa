// Package service defines the interfaces for external collaborators.
package service

import "context"

// TemplateKind identifies the notification template a recipient receives.
type TemplateKind string

const (
	// TemplateRequestReceived confirms a submitted request to the requester.
	TemplateRequestReceived TemplateKind = "request_received"
	// TemplateRequestApprovedDonor is the donor side of contact disclosure.
	TemplateRequestApprovedDonor TemplateKind = "request_approved_donor"
	// TemplateRequestApprovedRequester is the requester side of contact disclosure.
	TemplateRequestApprovedRequester TemplateKind = "request_approved_requester"
	// TemplateRequestRejected informs the requester of a rejection.
	TemplateRequestRejected TemplateKind = "request_rejected"
	// TemplateDonationApproved informs the donor their donation went live.
	TemplateDonationApproved TemplateKind = "donation_approved"
)

// NotificationEvent is the payload carried through the notification pipeline.
// Delivery is best-effort: no core operation waits on it or fails because of it.
type NotificationEvent struct {
	EventID   string            `json:"event_id"`
	RequestID string            `json:"request_id,omitempty"` // for distributed tracing
	Recipient string            `json:"recipient"`            // email address
	Template  TemplateKind      `json:"template"`
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing notification events
// to a message queue for asynchronous delivery.
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

// Mailer renders and delivers a notification event to its recipient.
// Implementations sit behind the worker delivery, never inside the
// coordinator's transactional path.
type Mailer interface {
	Send(ctx context.Context, event *NotificationEvent) error
}
