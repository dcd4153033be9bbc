package repository

import (
	"context"
	"strconv"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultOffersTableName = "offers"
	offersUserIDIndex      = "user_id-index"
)

type offerItem struct {
	ID                  string         `dynamodbav:"id"`
	UserID              string         `dynamodbav:"user_id"`
	PropertyID          string         `dynamodbav:"property_id"`
	FinancingType       string         `dynamodbav:"financing_type"`
	OfferPrice          string         `dynamodbav:"offer_price"`
	Contingencies       map[string]any `dynamodbav:"contingencies,omitempty"`
	TimelinePreferences map[string]any `dynamodbav:"timeline_preferences,omitempty"`
	Concessions         map[string]any `dynamodbav:"concessions,omitempty"`
	AdditionalNotes     string         `dynamodbav:"additional_notes,omitempty"`
	Status              string         `dynamodbav:"status"`
	OfferLetterPreview  string         `dynamodbav:"offer_letter_preview,omitempty"`
	OfferLetterURL      string         `dynamodbav:"offer_letter_url,omitempty"`
	RequiresAgentReview bool           `dynamodbav:"requires_agent_review"`
	AgentReviewStatus   string         `dynamodbav:"agent_review_status"`
	AgentReviewNotes    string         `dynamodbav:"agent_review_notes,omitempty"`
	ReviewedAt          string         `dynamodbav:"reviewed_at,omitempty"`
	NotificationSent    bool           `dynamodbav:"notification_sent"`
	NotificationSentAt  string         `dynamodbav:"notification_sent_at,omitempty"`
	CreatedAt           string         `dynamodbav:"created_at"`
	UpdatedAt           string         `dynamodbav:"updated_at"`
}

// OfferDynamoRepository persists Offer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type OfferDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb *dynamodb.Client) *OfferDynamoRepository {
	return &OfferDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFERS_TABLE", defaultOffersTableName),
	}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOfferItem(o)); err != nil {
		return entities.Offer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) Update(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toOfferItem(o))
	if err != nil || !found {
		return entities.Offer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	var it offerItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

func (r *OfferDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Offer, error) {
	items, err := queryIndex[offerItem](ctx, r.ddb, r.tableName, offersUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Offer, 0, len(items))
	for _, it := range items {
		out = append(out, fromOfferItem(it))
	}
	return out, nil
}

func toOfferItem(o entities.Offer) offerItem {
	return offerItem{
		ID:                  o.ID,
		UserID:              o.UserID,
		PropertyID:          o.PropertyID,
		FinancingType:       o.FinancingType,
		OfferPrice:          floatToString(o.OfferPrice),
		Contingencies:       o.Contingencies,
		TimelinePreferences: o.TimelinePreferences,
		Concessions:         o.Concessions,
		AdditionalNotes:     o.AdditionalNotes,
		Status:              string(o.Status),
		OfferLetterPreview:  o.OfferLetterPreview,
		OfferLetterURL:      o.OfferLetterURL,
		RequiresAgentReview: o.RequiresAgentReview,
		AgentReviewStatus:   string(o.AgentReviewStatus),
		AgentReviewNotes:    o.AgentReviewNotes,
		ReviewedAt:          formatTimePtr(o.ReviewedAt),
		NotificationSent:    o.NotificationSent,
		NotificationSentAt:  formatTimePtr(o.NotificationSentAt),
		CreatedAt:           formatTime(o.CreatedAt),
		UpdatedAt:           formatTime(o.UpdatedAt),
	}
}

func fromOfferItem(it offerItem) entities.Offer {
	price, _ := strconv.ParseFloat(it.OfferPrice, 64)
	return entities.Offer{
		ID:                  it.ID,
		UserID:              it.UserID,
		PropertyID:          it.PropertyID,
		FinancingType:       it.FinancingType,
		OfferPrice:          price,
		Contingencies:       it.Contingencies,
		TimelinePreferences: it.TimelinePreferences,
		Concessions:         it.Concessions,
		AdditionalNotes:     it.AdditionalNotes,
		Status:              entities.OfferStatus(it.Status),
		OfferLetterPreview:  it.OfferLetterPreview,
		OfferLetterURL:      it.OfferLetterURL,
		RequiresAgentReview: it.RequiresAgentReview,
		AgentReviewStatus:   entities.AgentReviewStatus(it.AgentReviewStatus),
		AgentReviewNotes:    it.AgentReviewNotes,
		ReviewedAt:          parseTimePtr(it.ReviewedAt),
		NotificationSent:    it.NotificationSent,
		NotificationSentAt:  parseTimePtr(it.NotificationSentAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
