// Package notification delivers notification events to recipients over SMTP.
package notification

import (
	"context"
	"log/slog"
	"strings"
	"text/template"

	"medishare/config"
	"medishare/internal/domain/service"

	"github.com/pkg/errors"
	mail "github.com/wneessen/go-mail"
)

// smtpMailer implements service.Mailer using an SMTP client.
type smtpMailer struct {
	client *mail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer creates a Mailer backed by the configured SMTP server.
func NewSMTPMailer(cfg *config.SMTPConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg == nil {
		return nil, errors.New("smtp config is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

// Send renders the event's template and delivers it to the recipient.
func (m *smtpMailer) Send(ctx context.Context, event *service.NotificationEvent) error {
	subject, body, err := renderTemplate(event.Template, event.Data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(event.Recipient); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("Notification mail sent",
		slog.String("event_id", event.EventID),
		slog.String("template", string(event.Template)),
	)

	return nil
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

//nolint:gochecknoglobals
var mailTemplates = map[service.TemplateKind]mailTemplate{
	service.TemplateRequestReceived: {
		subject: "We received your medicine request",
		body: template.Must(template.New("request_received").Parse(
			"Hello {{.requester_name}},\n\n" +
				"We received your request for {{.quantity}} x {{.medicine_name}}.\n" +
				"An operator will review it shortly and you will be notified of the outcome.\n")),
	},
	service.TemplateRequestApprovedDonor: {
		subject: "Your donation has been matched",
		body: template.Must(template.New("request_approved_donor").Parse(
			"Hello {{.donor_name}},\n\n" +
				"Your donation of {{.medicine_name}} has been matched to a request.\n" +
				"Recipient contact:\n" +
				"  Name:  {{.requester_name}}\n" +
				"  Email: {{.requester_email}}\n" +
				"{{if .requester_phone}}  Phone: {{.requester_phone}}\n{{end}}" +
				"Please arrange the handover directly.\n")),
	},
	service.TemplateRequestApprovedRequester: {
		subject: "Your medicine request was approved",
		body: template.Must(template.New("request_approved_requester").Parse(
			"Hello {{.requester_name}},\n\n" +
				"Your request for {{.quantity}} x {{.medicine_name}} was approved.\n" +
				"Donor contact:\n" +
				"  Name:  {{.donor_name}}\n" +
				"  Email: {{.donor_email}}\n" +
				"{{if .donor_phone}}  Phone: {{.donor_phone}}\n{{end}}" +
				"{{if .donor_lat}}  Location: {{.donor_lat}}, {{.donor_lng}}\n{{end}}" +
				"Please contact the donor to arrange pickup.\n")),
	},
	service.TemplateRequestRejected: {
		subject: "Your medicine request was declined",
		body: template.Must(template.New("request_rejected").Parse(
			"Hello {{.requester_name}},\n\n" +
				"Unfortunately your request for {{.medicine_name}} could not be fulfilled at this time.\n" +
				"You are welcome to submit a new request later.\n")),
	},
	service.TemplateDonationApproved: {
		subject: "Your donation is now listed",
		body: template.Must(template.New("donation_approved").Parse(
			"Hello {{.donor_name}},\n\n" +
				"Your donation of {{.quantity}} x {{.medicine_name}} has been approved and is now\n" +
				"visible to people looking for it. Thank you.\n")),
	},
}

// renderTemplate produces the subject and body for a template kind.
func renderTemplate(kind service.TemplateKind, data map[string]string) (string, string, error) {
	tmpl, ok := mailTemplates[kind]
	if !ok {
		return "", "", errors.Errorf("unknown mail template: %s", kind)
	}

	var builder strings.Builder
	if err := tmpl.body.Execute(&builder, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to render mail template %s", kind)
	}

	return tmpl.subject, builder.String(), nil
}
