package payments

import (
	"fmt"

	"offer_agent/internal/config"
	"offer_agent/internal/usecase/interfaces"
)

// NewGateway builds the gateway selected by PAYMENT_PROVIDER, or the mock
// gateway when a mock toggle is set.
func NewGateway(cfg config.Config) (interfaces.IPaymentGateway, error) {
	if cfg.PaymentGatewayMock {
		return NewMockGateway(cfg.PaymentProvider), nil
	}
	switch cfg.PaymentProvider {
	case config.ProviderStripe:
		g, err := NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoWebhookSecret)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported payment provider %q", cfg.PaymentProvider)
	}
}
