package persistence

import (
	"context"
	"fmt"

	"offer_agent/internal/adapter/persistence/gormrepo"
	"offer_agent/internal/adapter/persistence/repository"
	"offer_agent/internal/config"
	"offer_agent/internal/infrastructure/database"
	"offer_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"gorm.io/gorm"
)

// Repositories is the set of ports backed by the configured storage driver.
type Repositories struct {
	Users         interfaces.IUserRepository
	Properties    interfaces.IPropertyRepository
	Offers        interfaces.IOfferRepository
	Payments      interfaces.IPaymentRepository
	Subscriptions interfaces.ISubscriptionRepository

	db  *gorm.DB
	ddb *dynamodb.Client
}

// Open connects to the storage selected by STORAGE_DRIVER.
func Open(ctx context.Context, cfg config.Config) (*Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users:         repository.NewUserDynamoRepository(ddb),
			Properties:    repository.NewPropertyDynamoRepository(ddb),
			Offers:        repository.NewOfferDynamoRepository(ddb),
			Payments:      repository.NewPaymentDynamoRepository(ddb),
			Subscriptions: repository.NewSubscriptionDynamoRepository(ddb),
			ddb:           ddb,
		}, nil
	case config.StorageSQLite, config.StoragePostgres:
		db, err := database.OpenGorm(cfg.StorageDriver, cfg.DatabaseURL, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users:         gormrepo.NewUserRepository(db),
			Properties:    gormrepo.NewPropertyRepository(db),
			Offers:        gormrepo.NewOfferRepository(db),
			Payments:      gormrepo.NewPaymentRepository(db),
			Subscriptions: gormrepo.NewSubscriptionRepository(db),
			db:            db,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// Migrate creates the schema: GORM AutoMigrate or the DynamoDB tables.
func (r *Repositories) Migrate(ctx context.Context) error {
	if r.ddb != nil {
		return repository.EnsureTables(ctx, r.ddb)
	}
	return gormrepo.AutoMigrate(r.db.WithContext(ctx))
}

// Reset removes every stored record.
func (r *Repositories) Reset(ctx context.Context) error {
	if r.ddb != nil {
		if err := repository.DropTables(ctx, r.ddb); err != nil {
			return err
		}
		return repository.EnsureTables(ctx, r.ddb)
	}
	return gormrepo.Reset(r.db.WithContext(ctx))
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
