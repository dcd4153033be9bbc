package repository

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsSessionIDIndex   = "provider_session_id-index"
	paymentsOfferIDIndex     = "offer_id-index"
)

type paymentItem struct {
	ID                string         `dynamodbav:"id"`
	UserID            string         `dynamodbav:"user_id"`
	OfferID           string         `dynamodbav:"offer_id,omitempty"`
	ProviderSessionID string         `dynamodbav:"provider_session_id,omitempty"`
	ProviderPaymentID string         `dynamodbav:"provider_payment_id,omitempty"`
	Amount            int64          `dynamodbav:"amount"`
	Currency          string         `dynamodbav:"currency"`
	Status            string         `dynamodbav:"status"`
	PaymentType       string         `dynamodbav:"payment_type"`
	Metadata          map[string]any `dynamodbav:"metadata,omitempty"`
	PaidAt            string         `dynamodbav:"paid_at,omitempty"`
	CreatedAt         string         `dynamodbav:"created_at"`
	UpdatedAt         string         `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_session_id-index (PK: provider_session_id)
//   - GSI: offer_id-index (PK: offer_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toPaymentItem(p))
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	items, err := queryIndex[paymentItem](ctx, r.ddb, r.tableName, paymentsSessionIDIndex, "provider_session_id", sessionID)
	if err != nil || len(items) == 0 {
		return entities.Payment{}, err
	}
	return fromPaymentItem(items[0]), nil
}

func (r *PaymentDynamoRepository) ListByOfferID(ctx context.Context, offerID string) ([]entities.Payment, error) {
	items, err := queryIndex[paymentItem](ctx, r.ddb, r.tableName, paymentsOfferIDIndex, "offer_id", offerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		UserID:            p.UserID,
		OfferID:           p.OfferID,
		ProviderSessionID: p.ProviderSessionID,
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            string(p.Status),
		PaymentType:       string(p.PaymentType),
		Metadata:          p.Metadata,
		PaidAt:            formatTimePtr(p.PaidAt),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		UserID:            it.UserID,
		OfferID:           it.OfferID,
		ProviderSessionID: it.ProviderSessionID,
		ProviderPaymentID: it.ProviderPaymentID,
		Amount:            it.Amount,
		Currency:          it.Currency,
		Status:            entities.PaymentStatus(it.Status),
		PaymentType:       entities.PaymentType(it.PaymentType),
		Metadata:          it.Metadata,
		PaidAt:            parseTimePtr(it.PaidAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
