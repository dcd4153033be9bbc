package main

import (
	"context"
	"time"

	"offer_agent/internal/adapter/persistence"
	"offer_agent/internal/domain/entities"

	"github.com/google/uuid"
)

type SeedRow struct {
	Table string
	Rows  int
}

func days(n int) time.Time {
	return time.Now().UTC().Add(time.Duration(n) * 24 * time.Hour)
}

func ptr[T any](v T) *T { return &v }

type seedProperty struct {
	url, source, mls, address, city, zip, propertyType string
	price, fairValue                                   float64
	daysOnMarket, deadlineIn                           int
	agentName, agentEmail, agentPhone                  string
	hoa, pre1978                                       bool
	beds, baths, sqft, yearBuilt                       int
}

var seedProperties = []seedProperty{
	{
		url: "https://www.zillow.com/homedetails/123-Main-St-Austin-TX-78701/12345678_zpid/", source: "zillow",
		mls: "MLS-2024-001234", address: "123 Main Street", city: "Austin", zip: "78701", propertyType: "singlefamily",
		price: 450000, fairValue: 435000, daysOnMarket: 12, deadlineIn: 7,
		agentName: "Jennifer Realty", agentEmail: "jennifer@realty.com", agentPhone: "(512) 555-0101",
		hoa: true, beds: 3, baths: 2, sqft: 1850, yearBuilt: 2015,
	},
	{
		url: "https://www.redfin.com/TX/Houston/456-Oak-Ave-77002/12345678", source: "redfin",
		mls: "MLS-2024-002345", address: "456 Oak Avenue", city: "Houston", zip: "77002", propertyType: "condo",
		price: 325000, fairValue: 310000, daysOnMarket: 8, deadlineIn: 5,
		agentName: "Michael Broker", agentEmail: "michael@broker.com", agentPhone: "(713) 555-0202",
		pre1978: true, beds: 2, baths: 1, sqft: 1200, yearBuilt: 1975,
	},
	{
		url: "https://www.zillow.com/homedetails/789-Pine-Rd-Dallas-TX-75201/87654321_zpid/", source: "zillow",
		mls: "MLS-2024-003456", address: "789 Pine Road", city: "Dallas", zip: "75201", propertyType: "singlefamily",
		price: 550000, fairValue: 525000, daysOnMarket: 25, deadlineIn: 10,
		agentName: "Amanda Sales", agentEmail: "amanda@sales.com", agentPhone: "(214) 555-0303",
		hoa: true, beds: 4, baths: 3, sqft: 2400, yearBuilt: 2020,
	},
	{
		url: "https://www.realtor.com/realestateandhomes-detail/321-Elm-St-San-Antonio-TX-78201_M12345-67890", source: "realtor",
		mls: "MLS-2024-004567", address: "321 Elm Street", city: "San Antonio", zip: "78201", propertyType: "singlefamily",
		price: 280000, fairValue: 275000, daysOnMarket: 3, deadlineIn: 3,
		agentName: "Robert Agent", agentEmail: "robert@agent.com", agentPhone: "(210) 555-0404",
		beds: 3, baths: 2, sqft: 1650, yearBuilt: 2018,
	},
}

type seedOffer struct {
	user, property int
	financing      string
	price          float64
	closingIn      int
	sellerCredits  float64
	notes, preview string
	status         entities.OfferStatus
	review         entities.AgentReviewStatus
	requiresReview bool
	notifiedAgo    int
}

var seedOffers = []seedOffer{
	{user: 0, property: 0, financing: "conventional", price: 445000, closingIn: 45, sellerCredits: 5000,
		notes: "Love the property! Hoping for a quick response.", preview: "Dear Seller, I am pleased to submit an offer of $445,000 for 123 Main Street...",
		status: entities.OfferStatusGenerated, review: entities.AgentReviewStatusApproved, requiresReview: true, notifiedAgo: 1},
	{user: 1, property: 1, financing: "cash", price: 320000, closingIn: 21,
		notes: "Cash offer, quick close preferred.", preview: "I am submitting a cash offer of $320,000 for 456 Oak Avenue...",
		status: entities.OfferStatusDownloaded, review: entities.AgentReviewStatusPending, notifiedAgo: 2},
	{user: 1, property: 2, financing: "fha", price: 545000, closingIn: 60, sellerCredits: 8000,
		notes: "First-time homebuyer, FHA loan.",
		status: entities.OfferStatusPendingReview, review: entities.AgentReviewStatusInReview, requiresReview: true},
	{user: 2, property: 3, financing: "conventional", price: 275000, closingIn: 30,
		status: entities.OfferStatusDraft, review: entities.AgentReviewStatusPending},
	{user: 0, property: 1, financing: "va", price: 310000, closingIn: 45, sellerCredits: 3000,
		notes: "VA loan, veteran buyer.", preview: "I am pleased to submit a VA-backed offer of $310,000...",
		status: entities.OfferStatusCompleted, review: entities.AgentReviewStatusCompleted, requiresReview: true, notifiedAgo: 5},
}

type seedPayment struct {
	user, offer int // offer -1 means no offer
	key         string
	paymentType entities.PaymentType
	status      entities.PaymentStatus
	paidAgo     int
}

var seedPayments = []seedPayment{
	{user: 0, offer: 0, key: "offer1", paymentType: entities.PaymentTypeSingleDownloadWithReview, status: entities.PaymentStatusCompleted, paidAgo: 1},
	{user: 1, offer: 1, key: "offer2", paymentType: entities.PaymentTypeSingleDownload, status: entities.PaymentStatusCompleted, paidAgo: 2},
	{user: 1, offer: 2, key: "offer3", paymentType: entities.PaymentTypeSingleDownload, status: entities.PaymentStatusCompleted, paidAgo: 1},
	{user: 1, offer: -1, key: "sub1", paymentType: entities.PaymentTypeMonthlySubscription, status: entities.PaymentStatusCompleted, paidAgo: 15},
	{user: 0, offer: 4, key: "offer5", paymentType: entities.PaymentTypeAgentReviewOnly, status: entities.PaymentStatusCompleted, paidAgo: 5},
	{user: 2, offer: 3, key: "offer4_pending", paymentType: entities.PaymentTypeSingleDownload, status: entities.PaymentStatusPending},
}

// Seed inserts a small, self-consistent data set: four buyers (one with an
// active and one with a lapsed subscription), four Texas listings, offers in
// every status and their payments.
func Seed(ctx context.Context, repos *persistence.Repositories) ([]SeedRow, error) {
	now := time.Now().UTC()

	var users []entities.User
	for _, u := range []struct{ email, name string }{
		{"sarah.martinez@example.com", "Sarah Martinez"},
		{"james.davis@example.com", "James Davis"},
		{"maria.kim@example.com", "Maria Kim"},
		{"john.smith@example.com", "John Smith"},
	} {
		created, err := repos.Users.Create(ctx, entities.User{ID: uuid.NewString(), Email: u.email, Name: u.name, CreatedAt: now, UpdatedAt: now})
		if err != nil {
			return nil, err
		}
		users = append(users, created)
	}

	subs := []entities.Subscription{
		{UserID: users[1].ID, ProviderCustomerID: "cus_mock_james", ProviderSubscriptionID: "sub_mock_james_monthly",
			Status: entities.SubscriptionStatusActive, CurrentPeriodEnd: ptr(days(30))},
		{UserID: users[3].ID, ProviderCustomerID: "cus_mock_john", ProviderSubscriptionID: "sub_mock_john_monthly",
			Status: entities.SubscriptionStatusCanceled, CurrentPeriodEnd: ptr(days(-5))},
	}
	for _, s := range subs {
		s.ID, s.CreatedAt, s.UpdatedAt = uuid.NewString(), now, now
		if _, err := repos.Subscriptions.Create(ctx, s); err != nil {
			return nil, err
		}
	}

	var properties []entities.Property
	for _, sp := range seedProperties {
		p, err := repos.Properties.Create(ctx, entities.Property{
			ID:                uuid.NewString(),
			SourceURL:         sp.url,
			SourceType:        sp.source,
			MLSNumber:         sp.mls,
			Address:           sp.address,
			City:              sp.city,
			State:             "TX",
			ZipCode:           sp.zip,
			Price:             ptr(sp.price),
			AIFairValue:       ptr(sp.fairValue),
			DaysOnMarket:      ptr(sp.daysOnMarket),
			PropertyType:      sp.propertyType,
			ListingAgentName:  sp.agentName,
			ListingAgentEmail: sp.agentEmail,
			ListingAgentPhone: sp.agentPhone,
			OfferDeadline:     ptr(days(sp.deadlineIn)),
			HasHOA:            ptr(sp.hoa),
			BuiltBefore1978:   ptr(sp.pre1978),
			ExtractedData: map[string]any{
				"bedrooms":   sp.beds,
				"bathrooms":  sp.baths,
				"squareFeet": sp.sqft,
				"yearBuilt":  sp.yearBuilt,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	var offers []entities.Offer
	for _, so := range seedOffers {
		o := entities.Offer{
			ID:            uuid.NewString(),
			UserID:        users[so.user].ID,
			PropertyID:    properties[so.property].ID,
			FinancingType: so.financing,
			OfferPrice:    so.price,
			Contingencies: map[string]any{
				"inspection": true,
				"appraisal":  so.financing != "cash",
				"financing":  so.financing != "cash",
			},
			TimelinePreferences: map[string]any{"closingDate": days(so.closingIn).Format("2006-01-02")},
			AdditionalNotes:     so.notes,
			Status:              so.status,
			OfferLetterPreview:  so.preview,
			RequiresAgentReview: so.requiresReview,
			AgentReviewStatus:   so.review,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if so.sellerCredits > 0 {
			o.Concessions = map[string]any{"sellerCredits": so.sellerCredits}
		}
		if so.notifiedAgo > 0 {
			o.NotificationSent = true
			o.NotificationSentAt = ptr(days(-so.notifiedAgo))
		}
		created, err := repos.Offers.Create(ctx, o)
		if err != nil {
			return nil, err
		}
		offers = append(offers, created)
	}

	for _, sp := range seedPayments {
		amount, _ := sp.paymentType.PriceCents()
		p := entities.Payment{
			ID:                uuid.NewString(),
			UserID:            users[sp.user].ID,
			ProviderSessionID: "cs_mock_" + sp.key,
			ProviderPaymentID: "pi_mock_" + sp.key,
			Amount:            amount,
			Currency:          "usd",
			Status:            sp.status,
			PaymentType:       sp.paymentType,
			Metadata:          map[string]any{"paymentType": string(sp.paymentType)},
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if sp.offer >= 0 {
			p.OfferID = offers[sp.offer].ID
			p.Metadata["offerId"] = p.OfferID
		}
		if sp.paidAgo > 0 {
			p.PaidAt = ptr(days(-sp.paidAgo))
		}
		if _, err := repos.Payments.Create(ctx, p); err != nil {
			return nil, err
		}
	}

	return []SeedRow{
		{Table: "users", Rows: len(users)},
		{Table: "subscriptions", Rows: len(subs)},
		{Table: "properties", Rows: len(properties)},
		{Table: "offers", Rows: len(offers)},
		{Table: "payments", Rows: len(seedPayments)},
	}, nil
}
