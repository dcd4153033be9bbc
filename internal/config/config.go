package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageDynamoDB = "dynamodb"

	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"

	DocumentStoreLocal = "local"
	DocumentStoreS3    = "s3"
)

// Config is the process configuration, read once from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_URL (default: http://localhost:3000), used for checkout return URLs
//   - STORAGE_DRIVER: sqlite (default) | postgres | dynamodb
//   - DATABASE_URL (postgres DSN), SQLITE_PATH (default: offer_agent.db)
//   - PAYMENT_PROVIDER: stripe (default) | mercadopago
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK: fake gateway for local runs
//   - GOOGLE_AI_API_KEY or GEMINI_API_KEY, GEMINI_MODEL
//   - TEMPLATES_DIR (default: templates), OFFERS_DIR (default: public/offers)
//   - DOCUMENT_STORE: local (default) | s3, with S3_BUCKET and S3_ENDPOINT
//   - NOTIFICATION_EMAIL, SMTP_HOST, SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD, SMTP_FROM
//   - REDIS_URL (optional webhook de-duplication)
//   - CONTRACT_FIELD_MAP (optional YAML override of the contract field names)
//   - DEFAULT_BUYER_EMAIL (default: temp@example.com)
type Config struct {
	Port   int
	AppURL string

	StorageDriver string
	DatabaseURL   string
	SQLitePath    string

	PaymentProvider          string
	PaymentGatewayMock       bool
	StripeSecretKey          string
	StripeWebhookSecret      string
	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string
	Currency                 string

	GeminiAPIKey string
	GeminiModel  string

	TemplatesDir     string
	OffersDir        string
	ContractFieldMap string

	DocumentStore string
	S3Bucket      string
	S3Endpoint    string

	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	SMTPFrom          string

	RedisURL string

	DefaultBuyerEmail string
}

func Load() Config {
	return Config{
		Port:   getenvInt("PORT", 8080),
		AppURL: strings.TrimRight(getenvDefault("APP_URL", "http://localhost:3000"), "/"),

		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageSQLite)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "offer_agent.db"),

		PaymentProvider:          strings.ToLower(getenvDefault("PAYMENT_PROVIDER", ProviderStripe)),
		PaymentGatewayMock:       IsPaymentGatewayMockEnabled(),
		StripeSecretKey:          os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:      os.Getenv("STRIPE_WEBHOOK_SECRET"),
		MercadoPagoAccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoWebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
		Currency:                 strings.ToLower(getenvDefault("PAYMENT_CURRENCY", "usd")),

		GeminiAPIKey: firstEnv("GOOGLE_AI_API_KEY", "GEMINI_API_KEY"),
		GeminiModel:  getenvDefault("GEMINI_MODEL", "gemini-1.5-flash"),

		TemplatesDir:     getenvDefault("TEMPLATES_DIR", "templates"),
		OffersDir:        getenvDefault("OFFERS_DIR", "public/offers"),
		ContractFieldMap: os.Getenv("CONTRACT_FIELD_MAP"),

		DocumentStore: strings.ToLower(getenvDefault("DOCUMENT_STORE", DocumentStoreLocal)),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),

		NotificationEmail: os.Getenv("NOTIFICATION_EMAIL"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getenvInt("SMTP_PORT", 587),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          getenvDefault("SMTP_FROM", "offers@localhost"),

		RedisURL: os.Getenv("REDIS_URL"),

		DefaultBuyerEmail: getenvDefault("DEFAULT_BUYER_EMAIL", "temp@example.com"),
	}
}

// IsPaymentGatewayMockEnabled reports whether a mock toggle is set.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
