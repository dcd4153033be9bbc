package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWebhookProviderNotConfigured = errors.New("payment provider is not configured")
	ErrInvalidWebhookSignature      = errors.New("webhook signature verification failed")
	ErrInvalidWebhookPayload        = errors.New("invalid webhook payload")
	ErrWebhookProcessing            = errors.New("webhook processing failed")
)

// IWebhookUseCase applies verified payment provider notifications.
//
// Handled events:
//   - checkout.session.completed: payment COMPLETED, offer unlocked or
//     flagged for review, subscription created for subscription checkouts
//   - customer.subscription.updated / deleted: subscription status sync
//
// Other event types are acknowledged and ignored.
type IWebhookUseCase interface {
	Handle(ctx context.Context, provider string, payload []byte, headers http.Header) error
}

type WebhookUseCase struct {
	gateways      map[string]interfaces.IPaymentGateway
	payments      interfaces.IPaymentRepository
	offers        interfaces.IOfferRepository
	users         interfaces.IUserRepository
	subscriptions interfaces.ISubscriptionRepository
	deduper       interfaces.IEventDeduper
	now           func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	payments interfaces.IPaymentRepository,
	offers interfaces.IOfferRepository,
	users interfaces.IUserRepository,
	subscriptions interfaces.ISubscriptionRepository,
	deduper interfaces.IEventDeduper,
	gateways ...interfaces.IPaymentGateway,
) *WebhookUseCase {
	byProvider := make(map[string]interfaces.IPaymentGateway, len(gateways))
	for _, g := range gateways {
		if g != nil {
			byProvider[g.Provider()] = g
		}
	}
	return &WebhookUseCase{
		gateways:      byProvider,
		payments:      payments,
		offers:        offers,
		users:         users,
		subscriptions: subscriptions,
		deduper:       deduper,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) Handle(ctx context.Context, provider string, payload []byte, headers http.Header) error {
	gw, ok := u.gateways[provider]
	if !ok {
		log.Printf("[webhook][usecase] provider not configured provider=%s", provider)
		return ErrWebhookProviderNotConfigured
	}

	ev, err := gw.ParseWebhookEvent(ctx, payload, headers)
	if err != nil {
		log.Printf("[webhook][usecase] parse failed provider=%s err=%v", provider, err)
		switch {
		case errors.Is(err, interfaces.ErrInvalidWebhookSignature):
			return fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
		case errors.Is(err, interfaces.ErrGatewayNotConfigured):
			return fmt.Errorf("%w: %v", ErrWebhookProviderNotConfigured, err)
		case errors.Is(err, interfaces.ErrGatewayBadRequest):
			return fmt.Errorf("%w: %v", ErrInvalidWebhookPayload, err)
		default:
			return err
		}
	}
	log.Printf("[webhook][usecase] event received provider=%s event_id=%s type=%s", provider, ev.ID, ev.Type)

	if ev.ID != "" && u.deduper != nil {
		first, err := u.deduper.FirstSeen(ctx, provider, ev.ID)
		if err != nil {
			log.Printf("[webhook][usecase] dedup unavailable, processing anyway event_id=%s err=%v", ev.ID, err)
		} else if !first {
			log.Printf("[webhook][usecase] duplicate event ignored event_id=%s", ev.ID)
			return nil
		}
	}

	if err := u.apply(ctx, gw, ev); err != nil {
		log.Printf("[webhook][usecase] error processing webhook event_id=%s type=%s err=%v", ev.ID, ev.Type, err)
		if ev.ID != "" && u.deduper != nil {
			if ferr := u.deduper.Forget(ctx, provider, ev.ID); ferr != nil {
				log.Printf("[webhook][usecase] dedup forget failed event_id=%s err=%v", ev.ID, ferr)
			}
		}
		return fmt.Errorf("%w: %v", ErrWebhookProcessing, err)
	}
	return nil
}

func (u *WebhookUseCase) apply(ctx context.Context, gw interfaces.IPaymentGateway, ev entities.WebhookEvent) error {
	switch ev.Type {
	case entities.EventCheckoutSessionCompleted:
		return u.checkoutCompleted(ctx, gw, ev)
	case entities.EventSubscriptionUpdated, entities.EventSubscriptionDeleted:
		return u.subscriptionChanged(ctx, ev)
	default:
		log.Printf("[webhook][usecase] unhandled event type=%s", ev.Type)
		return nil
	}
}

func (u *WebhookUseCase) checkoutCompleted(ctx context.Context, gw interfaces.IPaymentGateway, ev entities.WebhookEvent) error {
	payment, err := u.payments.GetBySessionID(ctx, ev.SessionID)
	if err != nil {
		return err
	}
	if payment.ID == "" {
		log.Printf("[webhook][usecase] no payment for session session_id=%s", ev.SessionID)
	} else if err := u.completePayment(ctx, payment, ev); err != nil {
		return err
	}

	if ev.SessionMode == entities.CheckoutModeSubscription && ev.SubscriptionID != "" {
		return u.activateSubscription(ctx, gw, ev, payment.UserID)
	}
	return nil
}

func (u *WebhookUseCase) completePayment(ctx context.Context, payment entities.Payment, ev entities.WebhookEvent) error {
	if payment.Status != entities.PaymentStatusCompleted {
		paidAt := u.now()
		payment.Status = entities.PaymentStatusCompleted
		payment.PaidAt = &paidAt
		if ev.PaymentIntentID != "" {
			payment.ProviderPaymentID = ev.PaymentIntentID
		}
		payment.UpdatedAt = paidAt
		if _, err := u.payments.Update(ctx, payment); err != nil {
			return err
		}
		log.Printf("[webhook][usecase] payment completed payment_id=%s type=%s", payment.ID, payment.PaymentType)
	}

	if payment.OfferID == "" {
		return nil
	}
	offer, err := u.offers.GetByID(ctx, payment.OfferID)
	if err != nil {
		return err
	}
	if offer.ID == "" {
		log.Printf("[webhook][usecase] offer missing for payment payment_id=%s offer_id=%s", payment.ID, payment.OfferID)
		return nil
	}

	changed := false
	if payment.PaymentType.GrantsDownload() && offer.Status != entities.OfferStatusDownloaded {
		if offer.Status.CanTransitionTo(entities.OfferStatusDownloaded) {
			offer.Status = entities.OfferStatusDownloaded
			changed = true
		} else {
			log.Printf("[webhook][usecase] offer status kept offer_id=%s status=%s", offer.ID, offer.Status)
		}
	}
	if payment.PaymentType.RequestsReview() && !offer.RequiresAgentReview {
		offer.RequiresAgentReview = true
		offer.AgentReviewStatus = entities.AgentReviewStatusRequested
		changed = true
	}
	if !changed {
		return nil
	}
	offer.UpdatedAt = u.now()
	_, err = u.offers.Update(ctx, offer)
	return err
}

func (u *WebhookUseCase) activateSubscription(ctx context.Context, gw interfaces.IPaymentGateway, ev entities.WebhookEvent, userID string) error {
	ps, err := gw.GetSubscription(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}

	if userID == "" {
		email, err := gw.GetCustomerEmail(ctx, ev.CustomerID)
		if err != nil {
			return err
		}
		if strings.TrimSpace(email) == "" {
			log.Printf("[webhook][usecase] customer has no email customer_id=%s", ev.CustomerID)
			return nil
		}
		user, err := u.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user.ID == "" {
			log.Printf("[webhook][usecase] no user for customer customer_id=%s", ev.CustomerID)
			return nil
		}
		userID = user.ID
	}

	periodEnd := ps.CurrentPeriodEnd.UTC()
	now := u.now()
	existing, err := u.subscriptions.GetByProviderID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		existing.Status = entities.SubscriptionStatusActive
		existing.CurrentPeriodEnd = &periodEnd
		existing.UpdatedAt = now
		_, err = u.subscriptions.Update(ctx, existing)
		return err
	}

	_, err = u.subscriptions.Create(ctx, entities.Subscription{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		ProviderCustomerID:     ev.CustomerID,
		ProviderSubscriptionID: ev.SubscriptionID,
		Status:                 entities.SubscriptionStatusActive,
		CurrentPeriodEnd:       &periodEnd,
		CreatedAt:              now,
		UpdatedAt:              now,
	})
	if err == nil {
		log.Printf("[webhook][usecase] subscription created user_id=%s subscription_id=%s", userID, ev.SubscriptionID)
	}
	return err
}

func (u *WebhookUseCase) subscriptionChanged(ctx context.Context, ev entities.WebhookEvent) error {
	if ev.Subscription == nil {
		return fmt.Errorf("%w: subscription event without subscription", ErrInvalidWebhookPayload)
	}
	sub, err := u.subscriptions.GetByProviderID(ctx, ev.Subscription.ID)
	if err != nil {
		return err
	}
	if sub.ID == "" {
		log.Printf("[webhook][usecase] unknown subscription subscription_id=%s", ev.Subscription.ID)
		return nil
	}
	sub.Status = entities.SubscriptionStatusFromProvider(ev.Subscription.Status)
	if !ev.Subscription.CurrentPeriodEnd.IsZero() {
		end := ev.Subscription.CurrentPeriodEnd.UTC()
		sub.CurrentPeriodEnd = &end
	}
	sub.UpdatedAt = u.now()
	_, err = u.subscriptions.Update(ctx, sub)
	if err == nil {
		log.Printf("[webhook][usecase] subscription synced subscription_id=%s status=%s", ev.Subscription.ID, sub.Status)
	}
	return err
}
