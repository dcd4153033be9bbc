package routes

import (
	"context"
	"log"
	"strconv"

	_ "offer_agent/docs" // This will be auto-generated
	"offer_agent/internal/adapter/http/handlers"
	"offer_agent/internal/adapter/persistence"
	"offer_agent/internal/config"
	"offer_agent/internal/infrastructure/contract"
	"offer_agent/internal/infrastructure/database"
	"offer_agent/internal/infrastructure/dedup"
	"offer_agent/internal/infrastructure/extraction"
	"offer_agent/internal/infrastructure/notification"
	"offer_agent/internal/infrastructure/payments"
	"offer_agent/internal/infrastructure/storage"
	"offer_agent/internal/usecase"
	"offer_agent/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	repos, err := persistence.Open(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StorageDynamoDB {
		// DynamoDB tables are created by `offerctl migrate`.
		if err := repos.Migrate(ctx); err != nil {
			return err
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	gw, err := payments.NewGateway(cfg)
	if err != nil {
		log.Printf("Payment gateway not configured provider=%s: %v", cfg.PaymentProvider, err)
	} else {
		paymentGateway = gw
	}

	store, err := newDocumentStore(ctx, cfg)
	if err != nil {
		return err
	}

	specs := contract.DefaultFieldSpecs()
	if cfg.ContractFieldMap != "" {
		specs, err = contract.LoadFieldSpecs(cfg.ContractFieldMap)
		if err != nil {
			return err
		}
	}

	propertyUseCase := usecase.NewPropertyUseCase(repos.Properties, newExtractor(ctx, cfg))
	offerUseCase := usecase.NewOfferUseCase(usecase.OfferUseCaseDeps{
		Users:             repos.Users,
		Properties:        repos.Properties,
		Offers:            repos.Offers,
		Payments:          repos.Payments,
		Subscriptions:     repos.Subscriptions,
		Generator:         contract.NewGenerator(cfg.TemplatesDir, specs),
		Store:             store,
		Notifier:          newNotifier(cfg),
		NotificationEmail: cfg.NotificationEmail,
		DefaultBuyerEmail: cfg.DefaultBuyerEmail,
		ResolveDocument:   storage.NameFromURL,
	})
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Offers, repos.Users, repos.Properties, paymentGateway, cfg.AppURL, cfg.Currency)
	webhookUseCase := usecase.NewWebhookUseCase(repos.Payments, repos.Offers, repos.Users, repos.Subscriptions, newDeduper(ctx, cfg), paymentGateway)

	router.GET("/", handlers.Banner)
	router.GET("/health", handlers.Health)
	router.GET(storage.PublicPrefix+"/:name", handlers.NewDocumentHandler(store).Serve)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := router.Group("/api")
	addPropertyRoutes(api, handlers.NewPropertyHandler(propertyUseCase))
	addOfferRoutes(api, handlers.NewOfferHandler(offerUseCase))
	addPaymentRoutes(api, handlers.NewPaymentHandler(paymentUseCase))
	addWebhookRoutes(api, handlers.NewWebhookHandler(webhookUseCase))
	return nil
}

func newDocumentStore(ctx context.Context, cfg config.Config) (interfaces.IDocumentStore, error) {
	if cfg.DocumentStore != config.DocumentStoreS3 {
		return storage.NewLocalStore(cfg.OffersDir), nil
	}
	client, err := database.ConnectS3(ctx, cfg.S3Endpoint)
	if err != nil {
		return nil, err
	}
	return storage.NewS3Store(client, cfg.S3Bucket), nil
}

func newExtractor(ctx context.Context, cfg config.Config) *extraction.Extractor {
	var llm extraction.TextGenerator
	if cfg.GeminiAPIKey == "" {
		log.Printf("GOOGLE_AI_API_KEY not set, property extraction disabled")
	} else if g, err := extraction.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err != nil {
		log.Printf("Gemini client not configured: %v", err)
	} else {
		llm = g
	}
	return extraction.NewExtractor(extraction.NewPageFetcher(), llm)
}

func newNotifier(cfg config.Config) interfaces.INotifier {
	if cfg.SMTPHost == "" {
		return notification.LogNotifier{}
	}
	return notification.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
}

func newDeduper(ctx context.Context, cfg config.Config) interfaces.IEventDeduper {
	if cfg.RedisURL == "" {
		return dedup.NoopDeduper{}
	}
	d, err := dedup.NewRedisDeduperFromURL(ctx, cfg.RedisURL)
	if err != nil {
		log.Printf("Redis unavailable, webhook de-duplication disabled: %v", err)
		return dedup.NoopDeduper{}
	}
	return d
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
