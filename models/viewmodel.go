package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillingStatus string

const (
	BillingStatusActive   BillingStatus = "active"
	BillingStatusInactive BillingStatus = "inactive"
	BillingStatusPaused   BillingStatus = "paused"
)

type CancelOrModifySubscriptionModalProps struct {
	CanCancelSubscription bool   `json:"canCancelSubscription"`
	CurrentTier           string `json:"currentTier"`
	CurrentTierInterval   string `json:"currentTierInterval"`
}

type PendingChange struct {
	PendingTier       string    `json:"pendingTier"`
	PendingInterval   string    `json:"pendingInterval"`
	PendingChangeDate time.Time `json:"pendingChangeDate"`
}

// BillingViewModel is derived on every read and never persisted.
type BillingViewModel struct {
	BillingEmail                         string                               `json:"billingEmail"`
	CancelAtPeriodEnd                    bool                                 `json:"cancelAtPeriodEnd"`
	CancelOrModifySubscriptionModalProps CancelOrModifySubscriptionModalProps `json:"cancelOrModifySubscriptionModalProps"`
	CurrentInterval                      string                               `json:"currentInterval"`
	CurrentMonthlyRatePerUser            decimal.Decimal                      `json:"currentMonthlyRatePerUser"`
	CurrentPeriodEnd                     time.Time                            `json:"currentPeriodEnd"`
	CurrentSeats                         int                                  `json:"currentSeats"`
	CurrentTier                          string                               `json:"currentTier"`
	IsEnterprisePlan                     bool                                 `json:"isEnterprisePlan"`
	IsOnFreeTrial                        bool                                 `json:"isOnFreeTrial"`
	MaxSeats                             int                                  `json:"maxSeats"`
	OrganizationSlug                     string                               `json:"organizationSlug"`
	PendingChange                        *PendingChange                       `json:"pendingChange,omitempty"`
	ProjectedTotal                       decimal.Decimal                      `json:"projectedTotal"`
	SubscriptionStatus                   BillingStatus                        `json:"subscriptionStatus"`
}
