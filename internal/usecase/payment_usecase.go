package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidCheckoutInput     = errors.New("offer_id and payment_type are required")
	ErrInvalidPaymentType       = errors.New("invalid payment type")
	ErrInvalidSessionID         = errors.New("session_id is required")
	ErrPaymentGatewayNotSet     = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest = errors.New("payment gateway bad request")
	ErrPaymentGatewayAuth       = errors.New("payment gateway unauthorized")
	ErrUnsupportedPaymentType   = errors.New("payment type not supported by the payment provider")
)

type CheckoutInput struct {
	OfferID        string
	PaymentType    string
	RequiresReview bool
}

type CheckoutResult struct {
	URL       string
	SessionID string
	Payment   entities.Payment
}

// IPaymentUseCase opens hosted checkouts for offers and reports their outcome.
type IPaymentUseCase interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	Verify(ctx context.Context, sessionID string) (entities.Payment, error)
}

var productNames = map[entities.PaymentType]string{
	entities.PaymentTypeSingleDownload:           "Single Download - Offer Letter",
	entities.PaymentTypeSingleDownloadWithReview: "Single Download + Agent Review - Offer Letter",
	entities.PaymentTypeAgentReviewOnly:          "Agent Review - Offer Letter",
	entities.PaymentTypeMonthlySubscription:      "Monthly Subscription - AI Real Estate Agent",
}

type PaymentUseCase struct {
	payments   interfaces.IPaymentRepository
	offers     interfaces.IOfferRepository
	users      interfaces.IUserRepository
	properties interfaces.IPropertyRepository
	gateway    interfaces.IPaymentGateway
	appURL     string
	currency   string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	offers interfaces.IOfferRepository,
	users interfaces.IUserRepository,
	properties interfaces.IPropertyRepository,
	gateway interfaces.IPaymentGateway,
	appURL string,
	currency string,
) *PaymentUseCase {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentUseCase{
		payments:   payments,
		offers:     offers,
		users:      users,
		properties: properties,
		gateway:    gateway,
		appURL:     strings.TrimRight(appURL, "/"),
		currency:   strings.ToLower(currency),
	}
}

// finalPaymentType applies the review upgrade: a single download with a
// requested review is sold as SINGLE_DOWNLOAD_WITH_REVIEW.
func finalPaymentType(raw string, requiresReview bool) (entities.PaymentType, int64, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == string(entities.PaymentTypeSingleDownload) && requiresReview {
		raw = string(entities.PaymentTypeSingleDownloadWithReview)
	}
	pt, ok := entities.ParsePaymentType(raw)
	if !ok {
		return "", 0, ErrInvalidPaymentType
	}
	amount, ok := pt.PriceCents()
	if !ok {
		return "", 0, ErrInvalidPaymentType
	}
	return pt, amount, nil
}

func (u *PaymentUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	offerID := strings.TrimSpace(in.OfferID)
	log.Printf("[payment][usecase] create-checkout start offer_id=%q payment_type=%q requires_review=%t", offerID, in.PaymentType, in.RequiresReview)
	if offerID == "" || strings.TrimSpace(in.PaymentType) == "" {
		return CheckoutResult{}, ErrInvalidCheckoutInput
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured offer_id=%s", offerID)
		return CheckoutResult{}, ErrPaymentGatewayNotSet
	}

	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if offer.ID == "" {
		return CheckoutResult{}, ErrOfferNotFound
	}

	paymentType, amount, err := finalPaymentType(in.PaymentType, in.RequiresReview)
	if err != nil {
		log.Printf("[payment][usecase] invalid payment type offer_id=%s payment_type=%q", offerID, in.PaymentType)
		return CheckoutResult{}, err
	}

	buyer, err := u.users.GetByID(ctx, offer.UserID)
	if err != nil {
		return CheckoutResult{}, err
	}
	property, err := u.properties.GetByID(ctx, offer.PropertyID)
	if err != nil {
		return CheckoutResult{}, err
	}

	paymentID := uuid.NewString()
	mode := entities.CheckoutModePayment
	description := "Property: " + property.Address
	if paymentType.IsSubscription() {
		mode = entities.CheckoutModeSubscription
		description = "Unlimited access to AI agent for generating offer letters"
	}
	req := entities.CheckoutRequest{
		Reference:     paymentID,
		Mode:          mode,
		AmountCents:   amount,
		Currency:      u.currency,
		ProductName:   productNames[paymentType],
		Description:   description,
		CustomerEmail: buyer.Email,
		CustomerName:  buyer.Name,
		SuccessURL:    u.appURL + "/payment/success?session_id=" + entities.CheckoutSessionPlaceholder,
		CancelURL:     fmt.Sprintf("%s/offer/%s/preview", u.appURL, offer.ID),
		Metadata: map[string]string{
			"offerId":     offer.ID,
			"paymentType": string(paymentType),
			"paymentId":   paymentID,
		},
	}

	log.Printf("[payment][usecase] calling payment gateway provider=%s offer_id=%s payment_type=%s amount=%d", u.gateway.Provider(), offer.ID, paymentType, amount)
	session, err := u.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed offer_id=%s err=%v", offer.ID, err)
		return CheckoutResult{}, mapGatewayError(err)
	}

	now := time.Now().UTC()
	p, err := u.payments.Create(ctx, entities.Payment{
		ID:                paymentID,
		UserID:            offer.UserID,
		OfferID:           offer.ID,
		ProviderSessionID: session.ID,
		Amount:            amount,
		Currency:          u.currency,
		Status:            entities.PaymentStatusPending,
		PaymentType:       paymentType,
		Metadata: map[string]any{
			"provider":   u.gateway.Provider(),
			"customerId": session.CustomerID,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return CheckoutResult{}, err
	}
	log.Printf("[payment][usecase] checkout created payment_id=%s session_id=%s", p.ID, session.ID)
	return CheckoutResult{URL: session.URL, SessionID: session.ID, Payment: p}, nil
}

func mapGatewayError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrGatewayBadRequest):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	case errors.Is(err, interfaces.ErrGatewayUnauthorized):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayAuth, err)
	case errors.Is(err, interfaces.ErrGatewayNotConfigured):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayNotSet, err)
	case errors.Is(err, interfaces.ErrUnsupportedCheckoutMode):
		return fmt.Errorf("%w: %v", ErrUnsupportedPaymentType, err)
	default:
		return err
	}
}

func (u *PaymentUseCase) Verify(ctx context.Context, sessionID string) (entities.Payment, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Payment{}, ErrInvalidSessionID
	}
	p, err := u.payments.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}
