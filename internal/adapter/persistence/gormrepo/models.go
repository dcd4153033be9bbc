package gormrepo

import (
	"time"

	"offer_agent/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Relational schema. Nullable unique columns are pointers so that rows
// without a value never collide on the unique index.

type userModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userModel) TableName() string { return "users" }

type propertyModel struct {
	ID                string  `gorm:"primaryKey;type:varchar(36)"`
	SourceURL         *string `gorm:"type:text;uniqueIndex"`
	SourceType        string  `gorm:"type:varchar(32)"`
	MLSNumber         string  `gorm:"type:varchar(64)"`
	Address           string  `gorm:"type:varchar(255);not null"`
	City              string  `gorm:"type:varchar(128)"`
	State             string  `gorm:"type:varchar(32)"`
	ZipCode           string  `gorm:"type:varchar(16)"`
	AddressKey        string  `gorm:"type:varchar(512);index"`
	Price             *float64
	AIFairValue       *float64
	DaysOnMarket      *int
	PropertyType      string `gorm:"type:varchar(64);default:'singlefamily'"`
	ListingAgentName  string `gorm:"type:varchar(255)"`
	ListingAgentEmail string `gorm:"type:varchar(255)"`
	ListingAgentPhone string `gorm:"type:varchar(64)"`
	OfferDeadline     *time.Time
	HasHOA            *bool `gorm:"column:has_hoa"`
	BuiltBefore1978   *bool `gorm:"column:built_before_1978"`
	ExtractedData     datatypes.JSONMap
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (propertyModel) TableName() string { return "properties" }

type offerModel struct {
	ID                  string  `gorm:"primaryKey;type:varchar(36)"`
	UserID              string  `gorm:"type:varchar(36);index;not null"`
	PropertyID          string  `gorm:"type:varchar(36);index;not null"`
	FinancingType       string  `gorm:"type:varchar(64)"`
	OfferPrice          float64 `gorm:"not null"`
	Contingencies       datatypes.JSONMap
	TimelinePreferences datatypes.JSONMap
	Concessions         datatypes.JSONMap
	AdditionalNotes     string `gorm:"type:text"`
	Status              string `gorm:"type:varchar(32);index"`
	OfferLetterPreview  string `gorm:"type:text"`
	OfferLetterURL      string `gorm:"type:text"`
	RequiresAgentReview bool   `gorm:"default:false"`
	AgentReviewStatus   string `gorm:"type:varchar(32)"`
	AgentReviewNotes    string `gorm:"type:text"`
	ReviewedAt          *time.Time
	NotificationSent    bool `gorm:"default:false"`
	NotificationSentAt  *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (offerModel) TableName() string { return "offers" }

type paymentModel struct {
	ID                string  `gorm:"primaryKey;type:varchar(36)"`
	UserID            string  `gorm:"type:varchar(36);index;not null"`
	OfferID           *string `gorm:"type:varchar(36);index"`
	ProviderSessionID *string `gorm:"type:varchar(255);uniqueIndex"`
	ProviderPaymentID string  `gorm:"type:varchar(255)"`
	Amount            int64   `gorm:"not null"`
	Currency          string  `gorm:"type:varchar(8)"`
	Status            string  `gorm:"type:varchar(32);index"`
	PaymentType       string  `gorm:"type:varchar(64)"`
	Metadata          datatypes.JSONMap
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (paymentModel) TableName() string { return "payments" }

type subscriptionModel struct {
	ID                     string  `gorm:"primaryKey;type:varchar(36)"`
	UserID                 string  `gorm:"type:varchar(36);index;not null"`
	ProviderCustomerID     string  `gorm:"type:varchar(255)"`
	ProviderSubscriptionID *string `gorm:"type:varchar(255);uniqueIndex"`
	Status                 string  `gorm:"type:varchar(32)"`
	CurrentPeriodEnd       *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (subscriptionModel) TableName() string { return "subscriptions" }

// Models lists every table in dependency order.
func Models() []any {
	return []any{&userModel{}, &propertyModel{}, &offerModel{}, &paymentModel{}, &subscriptionModel{}}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Reset deletes every row, children first.
func Reset(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func jsonMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}

func toUserModel(u entities.User) userModel {
	return userModel{ID: u.ID, Email: normalizeEmail(u.Email), Name: u.Name, Phone: u.Phone, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func (m userModel) toEntity() entities.User {
	return entities.User{ID: m.ID, Email: m.Email, Name: m.Name, Phone: m.Phone, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func toPropertyModel(p entities.Property) propertyModel {
	return propertyModel{
		ID:                p.ID,
		SourceURL:         nullable(p.SourceURL),
		SourceType:        p.SourceType,
		MLSNumber:         p.MLSNumber,
		Address:           p.Address,
		City:              p.City,
		State:             p.State,
		ZipCode:           p.ZipCode,
		AddressKey:        p.AddressKey(),
		Price:             p.Price,
		AIFairValue:       p.AIFairValue,
		DaysOnMarket:      p.DaysOnMarket,
		PropertyType:      p.PropertyType,
		ListingAgentName:  p.ListingAgentName,
		ListingAgentEmail: p.ListingAgentEmail,
		ListingAgentPhone: p.ListingAgentPhone,
		OfferDeadline:     p.OfferDeadline,
		HasHOA:            p.HasHOA,
		BuiltBefore1978:   p.BuiltBefore1978,
		ExtractedData:     jsonMap(p.ExtractedData),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m propertyModel) toEntity() entities.Property {
	return entities.Property{
		ID:                m.ID,
		SourceURL:         deref(m.SourceURL),
		SourceType:        m.SourceType,
		MLSNumber:         m.MLSNumber,
		Address:           m.Address,
		City:              m.City,
		State:             m.State,
		ZipCode:           m.ZipCode,
		Price:             m.Price,
		AIFairValue:       m.AIFairValue,
		DaysOnMarket:      m.DaysOnMarket,
		PropertyType:      m.PropertyType,
		ListingAgentName:  m.ListingAgentName,
		ListingAgentEmail: m.ListingAgentEmail,
		ListingAgentPhone: m.ListingAgentPhone,
		OfferDeadline:     m.OfferDeadline,
		HasHOA:            m.HasHOA,
		BuiltBefore1978:   m.BuiltBefore1978,
		ExtractedData:     map[string]any(m.ExtractedData),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toOfferModel(o entities.Offer) offerModel {
	return offerModel{
		ID:                  o.ID,
		UserID:              o.UserID,
		PropertyID:          o.PropertyID,
		FinancingType:       o.FinancingType,
		OfferPrice:          o.OfferPrice,
		Contingencies:       jsonMap(o.Contingencies),
		TimelinePreferences: jsonMap(o.TimelinePreferences),
		Concessions:         jsonMap(o.Concessions),
		AdditionalNotes:     o.AdditionalNotes,
		Status:              string(o.Status),
		OfferLetterPreview:  o.OfferLetterPreview,
		OfferLetterURL:      o.OfferLetterURL,
		RequiresAgentReview: o.RequiresAgentReview,
		AgentReviewStatus:   string(o.AgentReviewStatus),
		AgentReviewNotes:    o.AgentReviewNotes,
		ReviewedAt:          o.ReviewedAt,
		NotificationSent:    o.NotificationSent,
		NotificationSentAt:  o.NotificationSentAt,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func (m offerModel) toEntity() entities.Offer {
	return entities.Offer{
		ID:                  m.ID,
		UserID:              m.UserID,
		PropertyID:          m.PropertyID,
		FinancingType:       m.FinancingType,
		OfferPrice:          m.OfferPrice,
		Contingencies:       map[string]any(m.Contingencies),
		TimelinePreferences: map[string]any(m.TimelinePreferences),
		Concessions:         map[string]any(m.Concessions),
		AdditionalNotes:     m.AdditionalNotes,
		Status:              entities.OfferStatus(m.Status),
		OfferLetterPreview:  m.OfferLetterPreview,
		OfferLetterURL:      m.OfferLetterURL,
		RequiresAgentReview: m.RequiresAgentReview,
		AgentReviewStatus:   entities.AgentReviewStatus(m.AgentReviewStatus),
		AgentReviewNotes:    m.AgentReviewNotes,
		ReviewedAt:          m.ReviewedAt,
		NotificationSent:    m.NotificationSent,
		NotificationSentAt:  m.NotificationSentAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toPaymentModel(p entities.Payment) paymentModel {
	return paymentModel{
		ID:                p.ID,
		UserID:            p.UserID,
		OfferID:           nullable(p.OfferID),
		ProviderSessionID: nullable(p.ProviderSessionID),
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            string(p.Status),
		PaymentType:       string(p.PaymentType),
		Metadata:          jsonMap(p.Metadata),
		PaidAt:            p.PaidAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m paymentModel) toEntity() entities.Payment {
	return entities.Payment{
		ID:                m.ID,
		UserID:            m.UserID,
		OfferID:           deref(m.OfferID),
		ProviderSessionID: deref(m.ProviderSessionID),
		ProviderPaymentID: m.ProviderPaymentID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		Status:            entities.PaymentStatus(m.Status),
		PaymentType:       entities.PaymentType(m.PaymentType),
		Metadata:          map[string]any(m.Metadata),
		PaidAt:            m.PaidAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toSubscriptionModel(s entities.Subscription) subscriptionModel {
	return subscriptionModel{
		ID:                     s.ID,
		UserID:                 s.UserID,
		ProviderCustomerID:     s.ProviderCustomerID,
		ProviderSubscriptionID: nullable(s.ProviderSubscriptionID),
		Status:                 string(s.Status),
		CurrentPeriodEnd:       s.CurrentPeriodEnd,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func (m subscriptionModel) toEntity() entities.Subscription {
	return entities.Subscription{
		ID:                     m.ID,
		UserID:                 m.UserID,
		ProviderCustomerID:     m.ProviderCustomerID,
		ProviderSubscriptionID: deref(m.ProviderSubscriptionID),
		Status:                 entities.SubscriptionStatus(m.Status),
		CurrentPeriodEnd:       m.CurrentPeriodEnd,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}
