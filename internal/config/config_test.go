package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "APP_URL", "STORAGE_DRIVER", "PAYMENT_PROVIDER", "GOOGLE_AI_API_KEY", "GEMINI_API_KEY", "DEFAULT_BUYER_EMAIL", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
			t.Setenv(k, "")
		}
		cfg := Load()
		if cfg.Port != 8080 {
			t.Fatalf("expected 8080, got %d", cfg.Port)
		}
		if cfg.StorageDriver != StorageSQLite {
			t.Fatalf("expected sqlite, got %q", cfg.StorageDriver)
		}
		if cfg.PaymentProvider != ProviderStripe {
			t.Fatalf("expected stripe, got %q", cfg.PaymentProvider)
		}
		if cfg.DefaultBuyerEmail != "temp@example.com" {
			t.Fatalf("unexpected default buyer %q", cfg.DefaultBuyerEmail)
		}
		if cfg.PaymentGatewayMock {
			t.Fatalf("expected mock disabled")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("APP_URL", "https://offers.example.com/")
		t.Setenv("STORAGE_DRIVER", "DynamoDB")
		t.Setenv("GOOGLE_AI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "gm-key")
		t.Setenv("MERCADOPAGO_MOCK", "yes")
		cfg := Load()
		if cfg.Port != 9090 {
			t.Fatalf("expected 9090, got %d", cfg.Port)
		}
		if cfg.AppURL != "https://offers.example.com" {
			t.Fatalf("expected trailing slash trimmed, got %q", cfg.AppURL)
		}
		if cfg.StorageDriver != StorageDynamoDB {
			t.Fatalf("expected dynamodb, got %q", cfg.StorageDriver)
		}
		if cfg.GeminiAPIKey != "gm-key" {
			t.Fatalf("expected fallback key, got %q", cfg.GeminiAPIKey)
		}
		if !cfg.PaymentGatewayMock {
			t.Fatalf("expected mock enabled")
		}
	})

	t.Run("invalid port falls back", func(t *testing.T) {
		t.Setenv("PORT", "abc")
		if got := Load().Port; got != 8080 {
			t.Fatalf("expected 8080, got %d", got)
		}
	})
}
