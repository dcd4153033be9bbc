package repository

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsProviderIDIndex  = "provider_subscription_id-index"
	subscriptionsUserIDIndex      = "user_id-index"
)

type subscriptionItem struct {
	ID                     string `dynamodbav:"id"`
	UserID                 string `dynamodbav:"user_id"`
	ProviderCustomerID     string `dynamodbav:"provider_customer_id,omitempty"`
	ProviderSubscriptionID string `dynamodbav:"provider_subscription_id,omitempty"`
	Status                 string `dynamodbav:"status"`
	CurrentPeriodEnd       string `dynamodbav:"current_period_end,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_subscription_id-index (PK: provider_subscription_id)
//   - GSI: user_id-index (PK: user_id)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toSubscriptionItem(s)); err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) Update(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toSubscriptionItem(s))
	if err != nil || !found {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByProviderID(ctx context.Context, providerSubscriptionID string) (entities.Subscription, error) {
	items, err := queryIndex[subscriptionItem](ctx, r.ddb, r.tableName, subscriptionsProviderIDIndex, "provider_subscription_id", providerSubscriptionID)
	if err != nil || len(items) == 0 {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(items[0]), nil
}

func (r *SubscriptionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error) {
	items, err := queryIndex[subscriptionItem](ctx, r.ddb, r.tableName, subscriptionsUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Subscription, 0, len(items))
	for _, it := range items {
		out = append(out, fromSubscriptionItem(it))
	}
	return out, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:                     s.ID,
		UserID:                 s.UserID,
		ProviderCustomerID:     s.ProviderCustomerID,
		ProviderSubscriptionID: s.ProviderSubscriptionID,
		Status:                 string(s.Status),
		CurrentPeriodEnd:       formatTimePtr(s.CurrentPeriodEnd),
		CreatedAt:              formatTime(s.CreatedAt),
		UpdatedAt:              formatTime(s.UpdatedAt),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		ID:                     it.ID,
		UserID:                 it.UserID,
		ProviderCustomerID:     it.ProviderCustomerID,
		ProviderSubscriptionID: it.ProviderSubscriptionID,
		Status:                 entities.SubscriptionStatus(it.Status),
		CurrentPeriodEnd:       parseTimePtr(it.CurrentPeriodEnd),
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}
