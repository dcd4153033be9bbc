package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

type mpPreferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type mpPaymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway opens Checkout Pro preferences and turns Mercado Pago
// payment notifications into checkout events. The checkout reference is
// sent as external_reference and comes back as the session id.
type MercadoPagoGateway struct {
	preferences   mpPreferenceCreator
	payments      mpPaymentGetter
	webhookSecret string
	sandbox       bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, webhookSecret string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:   preference.NewClient(cfg),
		payments:      payment.NewClient(cfg),
		webhookSecret: webhookSecret,
		sandbox:       strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-"),
	}, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if req.Mode == entities.CheckoutModeSubscription {
		return entities.CheckoutSession{}, interfaces.ErrUnsupportedCheckoutMode
	}
	log.Printf("[payment][gateway] mercadopago preference start reference=%s amount=%d", req.Reference, req.AmountCents)

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	pref := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.Reference,
				Title:       req.ProductName,
				Description: req.Description,
				CurrencyID:  strings.ToUpper(req.Currency),
				Quantity:    1,
				UnitPrice:   float64(req.AmountCents) / 100,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: withSessionID(req.SuccessURL, req.Reference),
			Pending: withSessionID(req.SuccessURL, req.Reference),
			Failure: req.CancelURL,
		},
		AutoReturn:        "approved",
		ExternalReference: req.Reference,
		Metadata:          metadata,
	}
	if req.CustomerEmail != "" {
		pref.Payer = &preference.PayerRequest{Email: req.CustomerEmail, Name: req.CustomerName}
	}

	resp, err := g.preferences.Create(ctx, pref)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed reference=%s err=%v", req.Reference, err)
		return entities.CheckoutSession{}, mapMercadoPagoError(err)
	}
	url := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] mercadopago preference success reference=%s preference_id=%s", req.Reference, resp.ID)
	return entities.CheckoutSession{ID: req.Reference, URL: url}, nil
}

// withSessionID fills the Stripe-style {CHECKOUT_SESSION_ID} placeholder,
// which Mercado Pago does not expand.
func withSessionID(url, sessionID string) string {
	return strings.ReplaceAll(url, entities.CheckoutSessionPlaceholder, sessionID)
}

type mpNotification struct {
	ID     json.Number `json:"id"`
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (g *MercadoPagoGateway) ParseWebhookEvent(ctx context.Context, payload []byte, headers http.Header) (entities.WebhookEvent, error) {
	if g.webhookSecret == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_WEBHOOK_SECRET")
		return entities.WebhookEvent{}, interfaces.ErrGatewayNotConfigured
	}

	var n mpNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayBadRequest, err)
	}
	if err := verifyMercadoPagoSignature(g.webhookSecret, headers, n.Data.ID); err != nil {
		log.Printf("[payment][gateway] mercadopago signature check failed err=%v", err)
		return entities.WebhookEvent{}, err
	}

	if n.Type != "payment" {
		return entities.WebhookEvent{ID: string(n.ID), Type: "mercadopago." + n.Type}, nil
	}

	paymentID, err := strconv.Atoi(n.Data.ID)
	if err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: invalid payment id %q", interfaces.ErrGatewayBadRequest, n.Data.ID)
	}
	p, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment get failed payment_id=%d err=%v", paymentID, err)
		return entities.WebhookEvent{}, mapMercadoPagoError(err)
	}
	log.Printf("[payment][gateway] mercadopago payment loaded payment_id=%d status=%s reference=%s", p.ID, p.Status, p.ExternalReference)

	// The same payment is notified several times as it changes status.
	ev := entities.WebhookEvent{
		ID:              fmt.Sprintf("mp-%d-%s", p.ID, p.Status),
		Type:            "payment." + p.Status,
		PaymentIntentID: strconv.Itoa(p.ID),
	}
	if p.Status == "approved" {
		ev.Type = entities.EventCheckoutSessionCompleted
		ev.SessionID = p.ExternalReference
		ev.SessionMode = entities.CheckoutModePayment
	}
	return ev, nil
}

// verifyMercadoPagoSignature checks the x-signature header
// ("ts=<unix>,v1=<hex hmac>") against the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func verifyMercadoPagoSignature(secret string, headers http.Header, dataID string) error {
	var ts, v1 string
	for _, part := range strings.Split(headers.Get("x-signature"), ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: malformed x-signature", interfaces.ErrInvalidWebhookSignature)
	}

	var manifest strings.Builder
	if dataID != "" {
		fmt.Fprintf(&manifest, "id:%s;", strings.ToLower(dataID))
	}
	if rid := headers.Get("x-request-id"); rid != "" {
		fmt.Fprintf(&manifest, "request-id:%s;", rid)
	}
	fmt.Fprintf(&manifest, "ts:%s;", ts)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest.String()))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return interfaces.ErrInvalidWebhookSignature
	}
	return nil
}

func (g *MercadoPagoGateway) GetSubscription(_ context.Context, _ string) (entities.ProviderSubscription, error) {
	return entities.ProviderSubscription{}, interfaces.ErrUnsupportedCheckoutMode
}

func (g *MercadoPagoGateway) GetCustomerEmail(_ context.Context, _ string) (string, error) {
	return "", interfaces.ErrUnsupportedCheckoutMode
}

// mapMercadoPagoError classifies SDK errors, which only expose the API
// response body through their message.
func mapMercadoPagoError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayBadRequest, err)
	}
	return err
}
