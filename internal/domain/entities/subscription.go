package entities

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCanceled SubscriptionStatus = "CANCELED"
	SubscriptionStatusPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusUnpaid   SubscriptionStatus = "UNPAID"
)

// SubscriptionStatusFromProvider maps a provider status string
// (active, canceled, past_due, ...) to the local status.
func SubscriptionStatusFromProvider(status string) SubscriptionStatus {
	switch status {
	case "active":
		return SubscriptionStatusActive
	case "canceled":
		return SubscriptionStatusCanceled
	case "past_due":
		return SubscriptionStatusPastDue
	default:
		return SubscriptionStatusUnpaid
	}
}

// Subscription is a recurring plan owned by a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (provider_subscription_id-index): provider_subscription_id
//   - GSI2 (user_id-index): user_id
type Subscription struct {
	ID                     string             `json:"id"`
	UserID                 string             `json:"userId"`
	ProviderCustomerID     string             `json:"providerCustomerId,omitempty"`
	ProviderSubscriptionID string             `json:"providerSubscriptionId,omitempty"`
	Status                 SubscriptionStatus `json:"status"`
	CurrentPeriodEnd       *time.Time         `json:"currentPeriodEnd,omitempty"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt"`
}

// IsActiveAt reports whether the subscription is ACTIVE and its period has not ended at t.
// A missing period end counts as open-ended.
func (s Subscription) IsActiveAt(t time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}
	return s.CurrentPeriodEnd == nil || s.CurrentPeriodEnd.After(t)
}
