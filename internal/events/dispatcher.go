package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v72"
	"lineblocs.com/billing/internal/notify"
	"lineblocs.com/billing/internal/reconcile"
	"lineblocs.com/billing/internal/storage"
	"lineblocs.com/billing/models"
	"lineblocs.com/billing/repository"
)

const (
	CheckoutSessionCompleted    = "checkout.session.completed"
	CustomerSubscriptionCreated = "customer.subscription.created"
	CustomerSubscriptionUpdated = "customer.subscription.updated"
	CustomerSubscriptionDeleted = "customer.subscription.deleted"
	SubscriptionScheduleCreated = "subscription_schedule.created"
	SubscriptionScheduleUpdated = "subscription_schedule.updated"
	SubscriptionScheduleRelease = "subscription_schedule.released"
	SubscriptionScheduleDone    = "subscription_schedule.completed"
	SubscriptionScheduleCancel  = "subscription_schedule.canceled"
	CustomerDeleted             = "customer.deleted"
	PriceCreated                = "price.created"
	PriceUpdated                = "price.updated"
	PriceDeleted                = "price.deleted"
	ProductCreated              = "product.created"
	ProductUpdated              = "product.updated"
)

const sideEffectTimeout = 15 * time.Second

// SubscriptionReconciler is implemented by *reconcile.Reconciler.
type SubscriptionReconciler interface {
	ReconcileSubscription(ctx context.Context, p *reconcile.ProviderSubscription) (*models.Subscription, error)
	ReconcileSchedule(ctx context.Context, p *reconcile.ProviderSchedule) (*models.SubscriptionSchedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

type HandlerFunc func(ctx context.Context, event *stripe.Event) error

// Acknowledgement is returned for every well-formed event, including ones
// whose processing failed.
type Acknowledgement struct {
	Received  bool   `json:"received"`
	EventID   string `json:"eventId"`
	Processed bool   `json:"processed"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Ignored   bool   `json:"ignored,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Dispatcher struct {
	reconciler             SubscriptionReconciler
	organizationRepository repository.OrganizationRepository
	priceRepository        repository.PriceRepository
	handlers               map[string]HandlerFunc

	ledger    Ledger
	archive   storage.EventArchive
	alerter   notify.Alerter
	alertFrom string
	alertTo   string

	logger *logrus.Entry
}

type Option func(*Dispatcher)

func WithLedger(l Ledger) Option {
	return func(d *Dispatcher) { d.ledger = l }
}

func WithArchive(a storage.EventArchive) Option {
	return func(d *Dispatcher) { d.archive = a }
}

func WithAlerter(a notify.Alerter, from, to string) Option {
	return func(d *Dispatcher) {
		d.alerter = a
		d.alertFrom = from
		d.alertTo = to
	}
}

func NewDispatcher(reconciler SubscriptionReconciler, oRepo repository.OrganizationRepository, pRepo repository.PriceRepository, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		reconciler:             reconciler,
		organizationRepository: oRepo,
		priceRepository:        pRepo,
		logger:                 logrus.WithField("component", "billing_events"),
	}
	d.handlers = map[string]HandlerFunc{
		CheckoutSessionCompleted:    d.checkoutSessionCompleted,
		CustomerSubscriptionCreated: d.subscriptionChanged,
		CustomerSubscriptionUpdated: d.subscriptionChanged,
		CustomerSubscriptionDeleted: d.subscriptionChanged,
		SubscriptionScheduleCreated: d.scheduleChanged,
		SubscriptionScheduleUpdated: d.scheduleChanged,
		SubscriptionScheduleRelease: d.scheduleChanged,
		SubscriptionScheduleDone:    d.scheduleChanged,
		SubscriptionScheduleCancel:  d.scheduleCanceled,
		CustomerDeleted:             d.customerDeleted,
		PriceCreated:                d.priceChanged,
		PriceUpdated:                d.priceChanged,
		PriceDeleted:                d.priceDeleted,
		ProductCreated:              d.productChanged,
		ProductUpdated:              d.productChanged,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch decodes a raw Stripe event and handles it. Only a body that is not
// a Stripe event returns an error; processing failures are logged, archived
// and acknowledged.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) (Acknowledgement, error) {
	var event stripe.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Acknowledgement{}, errors.Wrap(err, "malformed stripe event")
	}
	if event.ID == "" || event.Type == "" || event.Data == nil {
		return Acknowledgement{}, errors.New("malformed stripe event: missing id, type or data")
	}
	return d.Handle(ctx, &event, body), nil
}

func (d *Dispatcher) Handle(ctx context.Context, event *stripe.Event, body []byte) Acknowledgement {
	ack := Acknowledgement{Received: true, EventID: event.ID}
	logger := d.logger.WithFields(logrus.Fields{
		"event_id":       event.ID,
		"event_type":     event.Type,
		"correlation_id": uuid.NewString(),
	})

	handler, ok := d.handlers[event.Type]
	if !ok {
		logger.Info("stripe event ignored (unhandled type)")
		ack.Ignored = true
		return ack
	}

	claimed := false
	if d.ledger != nil {
		var err error
		claimed, err = d.ledger.Claim(ctx, event.ID)
		if err != nil {
			logger.WithError(err).Warn("event ledger unavailable, processing anyway")
		} else if !claimed {
			logger.Info("stripe event already claimed")
			ack.Duplicate = true
			ack.Processed = true
			return ack
		}
	}

	if err := handler(ctx, event); err != nil {
		d.recordFailure(ctx, logger, event, body, claimed, err)
		ack.Error = err.Error()
		return ack
	}

	if claimed {
		sideCtx, cancel := detached(ctx)
		if err := d.ledger.MarkProcessed(sideCtx, event.ID); err != nil {
			logger.WithError(err).Warn("could not mark event processed in ledger")
		}
		cancel()
	}

	logger.Info("stripe event processed")
	ack.Processed = true
	return ack
}

// detached outlives the handler's deadline so ledger and alert writes still
// happen when the handler failed because ctx expired.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
}

func (d *Dispatcher) recordFailure(ctx context.Context, logger *logrus.Entry, event *stripe.Event, body []byte, claimed bool, cause error) {
	logger.WithError(cause).WithField("payload", string(body)).Error("stripe event processing failed")
	helpers.Log(logrus.ErrorLevel, fmt.Sprintf("stripe event %s (%s) failed: %s", event.ID, event.Type, cause.Error()))

	ctx, cancel := detached(ctx)
	defer cancel()

	if claimed {
		// let the provider's retry reprocess it
		if err := d.ledger.Release(ctx, event.ID); err != nil {
			logger.WithError(err).Warn("could not release event in ledger")
		}
	}

	location := ""
	if d.archive != nil {
		var err error
		location, err = d.archive.ArchiveFailedEvent(event.ID, body)
		if err != nil {
			logger.WithError(err).Warn("could not archive failed event")
		}
	}

	if d.alerter != nil && d.alertTo != "" {
		email := notify.FailedEventEmail(d.alertFrom, d.alertTo, event.Type, event.ID, cause, location)
		if err := d.alerter.Alert(ctx, email); err != nil {
			logger.WithError(err).Warn("could not send failure alert")
		}
	}
}

func (d *Dispatcher) checkoutSessionCompleted(ctx context.Context, event *stripe.Event) error {
	var session reconcile.ProviderCheckoutSession
	if err := reconcile.Decode(event.Data.Raw, &session); err != nil {
		return err
	}
	organizationID := session.Metadata[reconcile.MetadataOrganizationID]
	if organizationID == "" {
		return &repository.MissingEntityError{Entity: "organization for checkout session", Key: session.ID}
	}
	// a completed checkout ends the free trial right away
	trialEnd := time.Unix(event.Created, 0).UTC()
	return d.organizationRepository.UpdateCheckoutDetails(ctx, organizationID, session.CustomerDetails.Email, session.Customer.ID, trialEnd)
}

func (d *Dispatcher) subscriptionChanged(ctx context.Context, event *stripe.Event) error {
	var sub reconcile.ProviderSubscription
	if err := reconcile.Decode(event.Data.Raw, &sub); err != nil {
		return err
	}
	_, err := d.reconciler.ReconcileSubscription(ctx, &sub)
	return err
}

func (d *Dispatcher) scheduleChanged(ctx context.Context, event *stripe.Event) error {
	var schedule reconcile.ProviderSchedule
	if err := reconcile.Decode(event.Data.Raw, &schedule); err != nil {
		return err
	}
	_, err := d.reconciler.ReconcileSchedule(ctx, &schedule)
	if errors.Is(err, reconcile.ErrScheduleReleased) {
		return nil
	}
	return err
}

func (d *Dispatcher) scheduleCanceled(ctx context.Context, event *stripe.Event) error {
	var schedule reconcile.ProviderSchedule
	if err := reconcile.Decode(event.Data.Raw, &schedule); err != nil {
		return err
	}
	return d.reconciler.DeleteSchedule(ctx, schedule.ID)
}

func (d *Dispatcher) customerDeleted(ctx context.Context, event *stripe.Event) error {
	var customer reconcile.ProviderCustomer
	if err := reconcile.Decode(event.Data.Raw, &customer); err != nil {
		return err
	}
	cleared, err := d.organizationRepository.ClearStripeCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}
	d.logger.WithFields(logrus.Fields{"customer": customer.ID, "organizations": cleared}).Info("stripe customer removed")
	return nil
}

func (d *Dispatcher) priceChanged(ctx context.Context, event *stripe.Event) error {
	var price reconcile.ProviderPrice
	if err := reconcile.Decode(event.Data.Raw, &price); err != nil {
		return err
	}
	return d.priceRepository.UpsertPrice(ctx, price.Model())
}

func (d *Dispatcher) priceDeleted(ctx context.Context, event *stripe.Event) error {
	var price reconcile.ProviderPrice
	if err := reconcile.Decode(event.Data.Raw, &price); err != nil {
		return err
	}
	err := d.priceRepository.DeletePrice(ctx, price.ID)
	if repository.IsReferenced(err) {
		// cached items or phases still point at it, so the row stays
		d.logger.WithField("price", price.ID).Info("deleted stripe price still referenced, keeping cached row")
		return nil
	}
	return err
}

func (d *Dispatcher) productChanged(ctx context.Context, event *stripe.Event) error {
	var product reconcile.ProviderProduct
	if err := reconcile.Decode(event.Data.Raw, &product); err != nil {
		return err
	}
	return d.priceRepository.UpsertProduct(ctx, product.Model())
}
