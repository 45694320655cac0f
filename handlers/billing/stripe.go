package billing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v72"
	portalsession "github.com/stripe/stripe-go/v72/billingportal/session"
	"github.com/stripe/stripe-go/v72/sub"
	"github.com/stripe/stripe-go/v72/subschedule"
	"lineblocs.com/billing/internal/reconcile"
)

type StripeBillingHandler struct {
	StripeKey string

	newPortalSession func(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
	getSubscription  func(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	getSchedule      func(id string, params *stripe.SubscriptionScheduleParams) (*stripe.SubscriptionSchedule, error)
}

func NewStripeBillingHandler(stripeKey string) *StripeBillingHandler {
	backend := stripe.GetBackend(stripe.APIBackend)
	portal := portalsession.Client{B: backend, Key: stripeKey}
	subs := sub.Client{B: backend, Key: stripeKey}
	schedules := subschedule.Client{B: backend, Key: stripeKey}

	return &StripeBillingHandler{
		StripeKey:        stripeKey,
		newPortalSession: portal.New,
		getSubscription:  subs.Get,
		getSchedule:      schedules.Get,
	}
}

// BillingSettingsURL is where the hosted portal sends the customer back to.
func BillingSettingsURL(baseURL, organizationSlug string) string {
	return fmt.Sprintf("%s/organizations/%s/settings/billing", strings.TrimRight(baseURL, "/"), url.PathEscape(organizationSlug))
}

func (hndl *StripeBillingHandler) CreatePortalSession(params PortalSessionParams) (string, error) {
	if params.CustomerID == "" {
		return "", errors.Errorf("organization %s has no stripe customer", params.OrganizationSlug)
	}
	s, err := hndl.newPortalSession(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(params.CustomerID),
		ReturnURL: stripe.String(BillingSettingsURL(params.BaseURL, params.OrganizationSlug)),
	})
	if err != nil {
		return "", errors.Wrapf(err, "could not create portal session for %s", params.OrganizationSlug)
	}
	return s.URL, nil
}

// FetchSubscription loads the subscription with prices and products expanded
// and decodes the raw response the same way a webhook payload is decoded.
func (hndl *StripeBillingHandler) FetchSubscription(id string) (*reconcile.ProviderSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.AddExpand("items.data.price.product")
	s, err := hndl.getSubscription(id, params)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch subscription %s", id)
	}
	if s.LastResponse == nil {
		return nil, errors.Errorf("empty response for subscription %s", id)
	}
	var out reconcile.ProviderSubscription
	if err := reconcile.Decode(s.LastResponse.RawJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (hndl *StripeBillingHandler) FetchSchedule(id string) (*reconcile.ProviderSchedule, error) {
	s, err := hndl.getSchedule(id, &stripe.SubscriptionScheduleParams{})
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch subscription schedule %s", id)
	}
	if s.LastResponse == nil {
		return nil, errors.Errorf("empty response for subscription schedule %s", id)
	}
	var out reconcile.ProviderSchedule
	if err := reconcile.Decode(s.LastResponse.RawJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
