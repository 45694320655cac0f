package reconcile

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

// MetadataOrganizationID is the metadata key carrying the owning organization
// on subscriptions and checkout sessions.
const MetadataOrganizationID = "organizationId"

// MetadataMaxSeats is the product metadata key holding the seat cap.
const MetadataMaxSeats = "max_seats"

var validate = validator.New()

// ExpandableID decodes a Stripe field that is either an id string, an
// expanded object with an "id", or null.
type ExpandableID struct {
	ID string
}

func (e *ExpandableID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		e.ID = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.ID)
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.ID = obj.ID
	return nil
}

type ProviderProduct struct {
	ID       string            `json:"id" validate:"required"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata"`
	// false when Stripe sent only the product id
	Expanded bool `json:"-"`
}

func (p *ProviderProduct) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*p = ProviderProduct{}
		return json.Unmarshal(data, &p.ID)
	}
	type plain ProviderProduct
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = ProviderProduct(out)
	p.Expanded = true
	return nil
}

func (p ProviderProduct) Model() *models.Product {
	return &models.Product{
		StripeID: p.ID,
		Name:     p.Name,
		MaxSeats: p.Metadata[MetadataMaxSeats],
	}
}

type ProviderPrice struct {
	ID         string          `json:"id" validate:"required"`
	LookupKey  string          `json:"lookup_key"`
	UnitAmount int64           `json:"unit_amount" validate:"gte=0"`
	Currency   string          `json:"currency"`
	Product    ProviderProduct `json:"product"`
}

func (p ProviderPrice) Model() *models.Price {
	price := &models.Price{
		StripeID:        p.ID,
		LookupKey:       p.LookupKey,
		UnitAmountCents: p.UnitAmount,
		Currency:        p.Currency,
		ProductID:       p.Product.ID,
	}
	if p.Product.Expanded {
		price.Product = p.Product.Model()
	}
	return price
}

type ProviderSubscriptionItem struct {
	ID                 string        `json:"id" validate:"required"`
	Price              ProviderPrice `json:"price"`
	Quantity           int64         `json:"quantity" validate:"gte=0"`
	CurrentPeriodStart int64         `json:"current_period_start"`
	CurrentPeriodEnd   int64         `json:"current_period_end"`
}

// ProviderSubscription is the subset of a Stripe subscription object the
// reconciler consumes.
type ProviderSubscription struct {
	ID                string `json:"id" validate:"required"`
	Status            string `json:"status" validate:"required"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
	Created           int64  `json:"created"`
	TrialEnd          *int64 `json:"trial_end"`
	// older API versions carry the period on the subscription instead of the items
	CurrentPeriodStart int64 `json:"current_period_start"`
	CurrentPeriodEnd   int64 `json:"current_period_end"`
	Items              struct {
		Data []ProviderSubscriptionItem `json:"data" validate:"dive"`
	} `json:"items"`
	Metadata map[string]string `json:"metadata"`
	Schedule ExpandableID      `json:"schedule"`
}

type ProviderPhaseItem struct {
	Price    ExpandableID `json:"price"`
	Quantity int64        `json:"quantity"`
}

type ProviderPhase struct {
	StartDate int64               `json:"start_date"`
	EndDate   int64               `json:"end_date"`
	Items     []ProviderPhaseItem `json:"items"`
}

type ProviderCurrentPhase struct {
	StartDate int64 `json:"start_date"`
	EndDate   int64 `json:"end_date"`
}

// ProviderSchedule is the subset of a Stripe subscription schedule object the
// reconciler consumes. A nil CurrentPhase means Stripe released the schedule.
type ProviderSchedule struct {
	ID           string                `json:"id" validate:"required"`
	Subscription ExpandableID          `json:"subscription"`
	Created      int64                 `json:"created"`
	CurrentPhase *ProviderCurrentPhase `json:"current_phase"`
	Phases       []ProviderPhase       `json:"phases"`
}

type ProviderCheckoutSession struct {
	ID              string       `json:"id" validate:"required"`
	Customer        ExpandableID `json:"customer"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
	Metadata map[string]string `json:"metadata"`
}

type ProviderCustomer struct {
	ID string `json:"id" validate:"required"`
}

// Decode unmarshals a raw Stripe object into out and validates it.
func Decode(raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "could not decode stripe object")
	}
	if err := validate.Struct(out); err != nil {
		return errors.Wrap(err, "invalid stripe object")
	}
	return nil
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
