package entities

import "time"

// OfferStatus represents the lifecycle of an offer letter.
type OfferStatus string

const (
	OfferStatusDraft         OfferStatus = "DRAFT"
	OfferStatusPendingReview OfferStatus = "PENDING_REVIEW"
	OfferStatusGenerated     OfferStatus = "GENERATED"
	OfferStatusDownloaded    OfferStatus = "DOWNLOADED"
	OfferStatusCompleted     OfferStatus = "COMPLETED"
)

// offerTransitions lists the statuses reachable from each status.
// A paid download may arrive before the letter was generated, so
// DRAFT and PENDING_REVIEW can move straight to DOWNLOADED.
var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferStatusDraft:         {OfferStatusPendingReview, OfferStatusGenerated, OfferStatusDownloaded},
	OfferStatusPendingReview: {OfferStatusGenerated, OfferStatusDownloaded},
	OfferStatusGenerated:     {OfferStatusDownloaded, OfferStatusCompleted},
	OfferStatusDownloaded:    {OfferStatusCompleted},
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Staying on the same status is always allowed.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range offerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type AgentReviewStatus string

const (
	AgentReviewStatusPending       AgentReviewStatus = "PENDING"
	AgentReviewStatusRequested     AgentReviewStatus = "REQUESTED"
	AgentReviewStatusInReview      AgentReviewStatus = "IN_REVIEW"
	AgentReviewStatusApproved      AgentReviewStatus = "APPROVED"
	AgentReviewStatusNeedsRevision AgentReviewStatus = "NEEDS_REVISION"
	AgentReviewStatusCompleted     AgentReviewStatus = "COMPLETED"
)

// Offer is a buyer's proposed purchase terms for a property.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Contingencies, timeline preferences and concessions are free-form
// documents sent by the frontend; only a few keys are interpreted
// (see ClosingDate and SellerCredits).
type Offer struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"userId"`
	PropertyID          string            `json:"propertyId"`
	FinancingType       string            `json:"financingType"`
	OfferPrice          float64           `json:"offerPrice"`
	Contingencies       map[string]any    `json:"contingencies"`
	TimelinePreferences map[string]any    `json:"timelinePreferences,omitempty"`
	Concessions         map[string]any    `json:"concessions,omitempty"`
	AdditionalNotes     string            `json:"additionalNotes,omitempty"`
	Status              OfferStatus       `json:"status"`
	OfferLetterPreview  string            `json:"offerLetterPreview,omitempty"`
	OfferLetterURL      string            `json:"offerLetterUrl,omitempty"`
	RequiresAgentReview bool              `json:"requiresAgentReview"`
	AgentReviewStatus   AgentReviewStatus `json:"agentReviewStatus"`
	AgentReviewNotes    string            `json:"agentReviewNotes,omitempty"`
	ReviewedAt          *time.Time        `json:"reviewedAt,omitempty"`
	NotificationSent    bool              `json:"notificationSent"`
	NotificationSentAt  *time.Time        `json:"notificationSentAt,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// ClosingDate returns the requested closing date (camelCase or snake_case key).
func (o Offer) ClosingDate() string {
	return firstString(o.TimelinePreferences, "closingDate", "closing_date")
}

// SellerCredits returns the requested seller credits, if any and numeric.
func (o Offer) SellerCredits() (float64, bool) {
	for _, key := range []string{"sellerCredits", "seller_credits"} {
		v, ok := o.Concessions[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, n != 0
		case int:
			return float64(n), n != 0
		case string:
			f, err := parseAmount(n)
			if err == nil && f != 0 {
				return f, true
			}
		}
	}
	return 0, false
}
