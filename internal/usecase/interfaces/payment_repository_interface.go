package interfaces

import (
	"context"
	"offer_agent/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
// Payments are reconciled with provider events through the checkout
// session id, and download access is decided from the payments of an offer.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error)
	ListByOfferID(ctx context.Context, offerID string) ([]entities.Payment, error)
}
