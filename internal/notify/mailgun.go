package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

// Alerter tells operators about Stripe events that need a manual replay.
type Alerter interface {
	Alert(ctx context.Context, email models.Email) error
}

type sender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

type MailgunAlerter struct {
	mg sender
}

func NewMailgunAlerter(domain, apiKey string) *MailgunAlerter {
	return &MailgunAlerter{mg: mailgun.NewMailgun(domain, apiKey)}
}

func (a *MailgunAlerter) Alert(ctx context.Context, email models.Email) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg := a.mg.NewMessage(email.From, email.Subject, renderBody(email), email.To)
	_, _, err := a.mg.Send(ctx, msg)
	if err != nil {
		return errors.Wrapf(err, "could not send alert %q", email.Subject)
	}
	return nil
}

// FailedEventEmail builds the alert for an event that could not be reconciled.
func FailedEventEmail(from, to, eventType, eventID string, cause error, archiveLocation string) models.Email {
	args := map[string]string{
		"event_type": eventType,
		"event_id":   eventID,
		"error":      cause.Error(),
	}
	if archiveLocation != "" {
		args["payload"] = archiveLocation
	}
	return models.Email{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("Billing sync failed for %s %s", eventType, eventID),
		Body:    "A Stripe event could not be reconciled and needs a manual replay.",
		Args:    args,
	}
}

func renderBody(email models.Email) string {
	keys := make([]string, 0, len(email.Args))
	for k := range email.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(email.Body)
	b.WriteString("\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, email.Args[k])
	}
	return b.String()
}
