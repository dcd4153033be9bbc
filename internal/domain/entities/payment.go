package entities

import "time"

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

type PaymentType string

const (
	PaymentTypeSingleDownload           PaymentType = "SINGLE_DOWNLOAD"
	PaymentTypeSingleDownloadWithReview PaymentType = "SINGLE_DOWNLOAD_WITH_REVIEW"
	PaymentTypeAgentReviewOnly          PaymentType = "AGENT_REVIEW_ONLY"
	PaymentTypeMonthlySubscription      PaymentType = "MONTHLY_SUBSCRIPTION"
	PaymentTypeFullRepresentation       PaymentType = "FULL_REPRESENTATION"
)

// pricing holds the checkout amount in cents. Types missing here cannot be bought.
var pricing = map[PaymentType]int64{
	PaymentTypeSingleDownload:           1000,
	PaymentTypeSingleDownloadWithReview: 3000,
	PaymentTypeAgentReviewOnly:          2000,
	PaymentTypeMonthlySubscription:      2000,
}

// ParsePaymentType validates a raw payment type string.
func ParsePaymentType(raw string) (PaymentType, bool) {
	switch t := PaymentType(raw); t {
	case PaymentTypeSingleDownload, PaymentTypeSingleDownloadWithReview, PaymentTypeAgentReviewOnly,
		PaymentTypeMonthlySubscription, PaymentTypeFullRepresentation:
		return t, true
	}
	return "", false
}

// PriceCents returns the checkout amount for t.
func (t PaymentType) PriceCents() (int64, bool) {
	amount, ok := pricing[t]
	return amount, ok
}

// GrantsDownload reports whether a completed payment of this type unlocks the letter.
func (t PaymentType) GrantsDownload() bool {
	return t == PaymentTypeSingleDownload || t == PaymentTypeSingleDownloadWithReview
}

// RequestsReview reports whether a completed payment of this type asks for an agent review.
func (t PaymentType) RequestsReview() bool {
	return t == PaymentTypeSingleDownloadWithReview || t == PaymentTypeAgentReviewOnly
}

func (t PaymentType) IsSubscription() bool {
	return t == PaymentTypeMonthlySubscription
}

// Payment is a checkout attempt and its outcome.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (provider_session_id-index): provider_session_id
//   - GSI2 (offer_id-index): offer_id
//
// Amount is expressed in the currency's minor unit (cents).
type Payment struct {
	ID                string         `json:"id"`
	UserID            string         `json:"userId"`
	OfferID           string         `json:"offerId,omitempty"`
	ProviderSessionID string         `json:"providerSessionId,omitempty"`
	ProviderPaymentID string         `json:"providerPaymentId,omitempty"`
	Amount            int64          `json:"amount"`
	Currency          string         `json:"currency"`
	Status            PaymentStatus  `json:"status"`
	PaymentType       PaymentType    `json:"paymentType"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	PaidAt            *time.Time     `json:"paidAt,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// UnlocksDownload reports whether p is a completed download purchase.
func (p Payment) UnlocksDownload() bool {
	return p.Status == PaymentStatusCompleted && p.PaymentType.GrantsDownload()
}
