package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lineblocs.com/billing/internal/reconcile"
	"lineblocs.com/billing/mocks"
	"lineblocs.com/billing/models"
)

const eventCreated = int64(1748944800)

func eventBody(id, eventType, object string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"created":%d,"livemode":false,"data":{"object":%s}}`,
		id, eventType, eventCreated, object))
}

type dispatcherMocks struct {
	reconciler *mocks.SubscriptionReconciler
	orgs       *mocks.OrganizationRepository
	prices     *mocks.PriceRepository
	ledger     *mocks.Ledger
	archive    *mocks.EventArchive
	alerter    *mocks.Alerter
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *dispatcherMocks) {
	m := &dispatcherMocks{
		reconciler: mocks.NewSubscriptionReconciler(t),
		orgs:       mocks.NewOrganizationRepository(t),
		prices:     mocks.NewPriceRepository(t),
		ledger:     mocks.NewLedger(t),
		archive:    mocks.NewEventArchive(t),
		alerter:    mocks.NewAlerter(t),
	}
	d := NewDispatcher(m.reconciler, m.orgs, m.prices,
		WithLedger(m.ledger),
		WithArchive(m.archive),
		WithAlerter(m.alerter, "billing@lineblocs.com", "ops@lineblocs.com"))
	return d, m
}

func TestDispatcher(t *testing.T) {
	helpers.InitLogrus("file")
	t.Parallel()

	t.Run("Should store checkout details and end the trial at event time", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, "evt_1").Return(true, nil)
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil)
		m.orgs.EXPECT().UpdateCheckoutDetails(mock.Anything, "org_1", "billing@acme.test", "cus_1", time.Unix(eventCreated, 0).UTC()).Return(nil)

		body := eventBody("evt_1", CheckoutSessionCompleted,
			`{"id":"cs_1","customer":"cus_1","customer_details":{"email":"billing@acme.test"},"metadata":{"organizationId":"org_1"}}`)
		ack, err := d.Dispatch(context.Background(), body)
		require.NoError(t, err)
		assert.Equal(t, Acknowledgement{Received: true, EventID: "evt_1", Processed: true}, ack)
	})

	t.Run("Should acknowledge and ignore unknown event types", func(t *testing.T) {
		t.Parallel()

		d, _ := newTestDispatcher(t)
		ack, err := d.Dispatch(context.Background(), eventBody("evt_2", "invoice.paid", `{"id":"in_1"}`))
		require.NoError(t, err)
		assert.True(t, ack.Received)
		assert.True(t, ack.Ignored)
	})

	t.Run("Should skip events already claimed in the ledger", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, "evt_3").Return(false, nil)

		ack, err := d.Dispatch(context.Background(), eventBody("evt_3", CustomerSubscriptionUpdated, `{"id":"sub_1","status":"active"}`))
		require.NoError(t, err)
		assert.True(t, ack.Duplicate)
		m.reconciler.AssertNotCalled(t, "ReconcileSubscription", mock.Anything, mock.Anything)
	})

	t.Run("Should treat a released schedule as processed", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, "evt_4").Return(true, nil)
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "evt_4").Return(nil)
		m.reconciler.EXPECT().ReconcileSchedule(mock.Anything, mock.MatchedBy(func(p *reconcile.ProviderSchedule) bool {
			return p.ID == "sub_sched_1" && p.CurrentPhase == nil
		})).Return(nil, reconcile.ErrScheduleReleased)

		ack, err := d.Dispatch(context.Background(), eventBody("evt_4", SubscriptionScheduleRelease,
			`{"id":"sub_sched_1","subscription":"sub_1","current_phase":null,"phases":[]}`))
		require.NoError(t, err)
		assert.True(t, ack.Processed)
		assert.Empty(t, ack.Error)
	})

	t.Run("Should log, release, archive and alert on failure but still acknowledge", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		body := eventBody("evt_5", CustomerSubscriptionUpdated, `{"id":"sub_1","status":"active","items":{"data":[]}}`)
		cause := &reconcile.ReconciliationError{Op: "upsert subscription", Key: "sub_1", Err: errors.New("deadlock")}

		m.ledger.EXPECT().Claim(mock.Anything, "evt_5").Return(true, nil)
		m.reconciler.EXPECT().ReconcileSubscription(mock.Anything, mock.Anything).Return(nil, cause)
		m.ledger.EXPECT().Release(mock.Anything, "evt_5").Return(nil)
		m.archive.EXPECT().ArchiveFailedEvent("evt_5", body).Return("s3://billing/billing-events/failed/evt_5.json", nil)
		m.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(e models.Email) bool {
			return e.To == "ops@lineblocs.com" &&
				e.Args["event_id"] == "evt_5" &&
				e.Args["payload"] == "s3://billing/billing-events/failed/evt_5.json"
		})).Return(nil)

		ack, err := d.Dispatch(context.Background(), body)
		require.NoError(t, err)
		assert.True(t, ack.Received)
		assert.False(t, ack.Processed)
		assert.Equal(t, cause.Error(), ack.Error)
	})

	t.Run("Should still alert when archiving fails", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		body := eventBody("evt_6", CheckoutSessionCompleted, `{"id":"cs_1","customer":"cus_1","metadata":{}}`)

		m.ledger.EXPECT().Claim(mock.Anything, "evt_6").Return(true, nil)
		m.ledger.EXPECT().Release(mock.Anything, "evt_6").Return(nil)
		m.archive.EXPECT().ArchiveFailedEvent("evt_6", body).Return("", errors.New("access denied"))
		m.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(e models.Email) bool {
			_, hasPayload := e.Args["payload"]
			return !hasPayload
		})).Return(nil)

		ack, err := d.Dispatch(context.Background(), body)
		require.NoError(t, err)
		assert.False(t, ack.Processed)
		assert.Contains(t, ack.Error, "organization for checkout session")
	})

	t.Run("Should process events when the ledger is unavailable", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, "evt_7").Return(false, errors.New("redis: connection refused"))
		m.reconciler.EXPECT().DeleteSchedule(mock.Anything, "sub_sched_1").Return(nil)

		ack, err := d.Dispatch(context.Background(), eventBody("evt_7", SubscriptionScheduleCancel,
			`{"id":"sub_sched_1","subscription":"sub_1","current_phase":null}`))
		require.NoError(t, err)
		assert.True(t, ack.Processed)
	})

	t.Run("Should clear the customer of a deleted stripe customer", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, "evt_8").Return(true, nil)
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "evt_8").Return(nil)
		m.orgs.EXPECT().ClearStripeCustomer(mock.Anything, "cus_1").Return(int64(1), nil)

		ack, err := d.Dispatch(context.Background(), eventBody("evt_8", CustomerDeleted, `{"id":"cus_1","object":"customer"}`))
		require.NoError(t, err)
		assert.True(t, ack.Processed)
	})

	t.Run("Should keep the price cache in step with catalog events", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, mock.Anything).Return(true, nil)
		m.ledger.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Times(3)
		m.prices.EXPECT().UpsertPrice(mock.Anything, mock.MatchedBy(func(p *models.Price) bool {
			return p.StripeID == "price_1" && p.LookupKey == "low_monthly" && p.Product == nil
		})).Return(nil)
		m.prices.EXPECT().DeletePrice(mock.Anything, "price_1").Return(nil)
		m.prices.EXPECT().UpsertProduct(mock.Anything, &models.Product{StripeID: "prod_1", Name: "Hobby", MaxSeats: "1"}).Return(nil)

		price := `{"id":"price_1","lookup_key":"low_monthly","unit_amount":1700,"currency":"usd","product":"prod_1"}`
		for _, body := range [][]byte{
			eventBody("evt_9", PriceUpdated, price),
			eventBody("evt_10", PriceDeleted, price),
			eventBody("evt_11", ProductUpdated, `{"id":"prod_1","name":"Hobby","metadata":{"max_seats":"1"}}`),
		} {
			ack, err := d.Dispatch(context.Background(), body)
			require.NoError(t, err)
			assert.True(t, ack.Processed)
		}
	})

	t.Run("Should release the claim after the handler ran out of time", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		body := eventBody("evt_13", CheckoutSessionCompleted,
			`{"id":"cs_1","customer":"cus_1","customer_details":{"email":"billing@acme.test"},"metadata":{"organizationId":"org_1"}}`)
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()

		live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
		m.ledger.EXPECT().Claim(mock.Anything, "evt_13").Return(true, nil)
		m.orgs.EXPECT().UpdateCheckoutDetails(mock.Anything, "org_1", "billing@acme.test", "cus_1", mock.Anything).
			RunAndReturn(func(ctx context.Context, _, _, _ string, _ time.Time) error {
				<-ctx.Done()
				return ctx.Err()
			})
		m.ledger.EXPECT().Release(live, "evt_13").Return(nil)
		m.archive.EXPECT().ArchiveFailedEvent("evt_13", body).Return("", nil)
		m.alerter.EXPECT().Alert(live, mock.Anything).Return(nil)

		ack, err := d.Dispatch(ctx, body)
		require.NoError(t, err)
		assert.False(t, ack.Processed)
		assert.Equal(t, context.DeadlineExceeded.Error(), ack.Error)
		m.ledger.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	})

	t.Run("Should keep a deleted price that cached rows still reference", func(t *testing.T) {
		t.Parallel()

		d, m := newTestDispatcher(t)
		m.ledger.EXPECT().Claim(mock.Anything, "evt_14").Return(true, nil)
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "evt_14").Return(nil)
		m.prices.EXPECT().DeletePrice(mock.Anything, "price_1").
			Return(errors.Wrap(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}, "error deleting price price_1"))

		ack, err := d.Dispatch(context.Background(), eventBody("evt_14", PriceDeleted,
			`{"id":"price_1","lookup_key":"low_monthly","unit_amount":1700,"currency":"usd","product":"prod_1"}`))
		require.NoError(t, err)
		assert.True(t, ack.Processed)
		assert.Empty(t, ack.Error)
	})

	t.Run("Should reject a body that is not a stripe event", func(t *testing.T) {
		t.Parallel()

		d, _ := newTestDispatcher(t)
		_, err := d.Dispatch(context.Background(), []byte(`not json`))
		assert.Error(t, err)

		_, err = d.Dispatch(context.Background(), []byte(`{"object":"event"}`))
		assert.Error(t, err)
	})
}

func TestDispatcherWithoutOptionalSinks(t *testing.T) {
	helpers.InitLogrus("file")
	t.Parallel()

	t.Run("Should acknowledge failures with no ledger, archive or alerter", func(t *testing.T) {
		t.Parallel()

		reconciler := mocks.NewSubscriptionReconciler(t)
		reconciler.EXPECT().ReconcileSubscription(mock.Anything, mock.Anything).
			Return(nil, errors.New("boom"))

		d := NewDispatcher(reconciler, mocks.NewOrganizationRepository(t), mocks.NewPriceRepository(t))
		ack, err := d.Dispatch(context.Background(), eventBody("evt_12", CustomerSubscriptionCreated, `{"id":"sub_1","status":"active"}`))
		require.NoError(t, err)
		assert.True(t, ack.Received)
		assert.Equal(t, "boom", ack.Error)
	})
}
