package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	from, subject, text string
	to                  []string
	err                 error
}

func (f *fakeSender) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	f.from, f.subject, f.text, f.to = from, subject, text, to
	return &mailgun.Message{}
}

func (f *fakeSender) Send(ctx context.Context, m *mailgun.Message) (string, string, error) {
	return "queued", "<id@mg>", f.err
}

func TestMailgunAlerter(t *testing.T) {
	t.Parallel()

	email := FailedEventEmail("billing@lineblocs.com", "ops@lineblocs.com",
		"customer.subscription.updated", "evt_1", errors.New("db down"), "s3://bucket/evt_1.json")

	t.Run("Should send the alert with every arg in the body", func(t *testing.T) {
		t.Parallel()

		s := &fakeSender{}
		alerter := &MailgunAlerter{mg: s}

		assert.NoError(t, alerter.Alert(context.Background(), email))
		assert.Equal(t, "billing@lineblocs.com", s.from)
		assert.Equal(t, []string{"ops@lineblocs.com"}, s.to)
		assert.Equal(t, "Billing sync failed for customer.subscription.updated evt_1", s.subject)
		assert.Contains(t, s.text, "error: db down\n")
		assert.Contains(t, s.text, "payload: s3://bucket/evt_1.json\n")
	})

	t.Run("Should return send errors", func(t *testing.T) {
		t.Parallel()

		alerter := &MailgunAlerter{mg: &fakeSender{err: errors.New("rejected")}}
		assert.Error(t, alerter.Alert(context.Background(), email))
	})
}
