package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"
	mock_interfaces "offer_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type offerMocks struct {
	users     *mock_interfaces.MockIUserRepository
	props     *mock_interfaces.MockIPropertyRepository
	offers    *mock_interfaces.MockIOfferRepository
	payments  *mock_interfaces.MockIPaymentRepository
	subs      *mock_interfaces.MockISubscriptionRepository
	generator *mock_interfaces.MockIOfferDocumentGenerator
	store     *mock_interfaces.MockIDocumentStore
	notifier  *mock_interfaces.MockINotifier
}

func newOfferUseCase(t *testing.T, notificationEmail string) (*OfferUseCase, offerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := offerMocks{
		users:     mock_interfaces.NewMockIUserRepository(ctrl),
		props:     mock_interfaces.NewMockIPropertyRepository(ctrl),
		offers:    mock_interfaces.NewMockIOfferRepository(ctrl),
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		subs:      mock_interfaces.NewMockISubscriptionRepository(ctrl),
		generator: mock_interfaces.NewMockIOfferDocumentGenerator(ctrl),
		store:     mock_interfaces.NewMockIDocumentStore(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewOfferUseCase(OfferUseCaseDeps{
		Users:             m.users,
		Properties:        m.props,
		Offers:            m.offers,
		Payments:          m.payments,
		Subscriptions:     m.subs,
		Generator:         m.generator,
		Store:             m.store,
		Notifier:          m.notifier,
		NotificationEmail: notificationEmail,
		ResolveDocument: func(url string) (string, bool) {
			if url == "/offers/offer-o1.pdf" {
				return "offer-o1.pdf", true
			}
			return "", false
		},
	})
	return uc, m
}

func validOfferInput() CreateOfferInput {
	return CreateOfferInput{
		Address:             "1 Main St",
		City:                "Austin",
		State:               "TX",
		ZipCode:             "78701",
		FinancingType:       "conventional",
		OfferPrice:          445000,
		TimelinePreferences: map[string]any{"closingDate": "2025-03-01"},
	}
}

func echoOffer(_ context.Context, o entities.Offer) (entities.Offer, error) { return o, nil }

func TestOfferUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newOfferUseCase(t, "")
		cases := []func(*CreateOfferInput){
			func(in *CreateOfferInput) { in.Address = "" },
			func(in *CreateOfferInput) { in.FinancingType = " " },
			func(in *CreateOfferInput) { in.OfferPrice = 0 },
		}
		for _, mutate := range cases {
			in := validOfferInput()
			mutate(&in)
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidOfferInput) {
				t.Fatalf("expected ErrInvalidOfferInput, got %v", err)
			}
		}
	})

	t.Run("unknown property id", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		in := validOfferInput()
		in.PropertyID = "missing"

		m.users.EXPECT().GetByEmail(gomock.Any(), "temp@example.com").Return(entities.User{ID: "u1", Email: "temp@example.com"}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Property{}, nil)

		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("generates letter and notifies", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "ops@example.com")
		in := validOfferInput()
		in.BuyerEmail = "Buyer@Example.com"
		in.BuyerName = "Jane"

		m.users.EXPECT().GetByEmail(gomock.Any(), "Buyer@Example.com").Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "buyer@example.com" || u.Name != "Jane" {
					t.Fatalf("unexpected user %+v", u)
				}
				return u, nil
			},
		)
		m.props.EXPECT().ListByAddress(gomock.Any(), "1 Main St", "Austin", "TX", "78701").Return([]entities.Property{
			{ID: "condo-row", PropertyType: "condo"},
			{ID: "p1", Address: "1 Main St", City: "Austin", State: "TX", ZipCode: "78701", PropertyType: "singlefamily"},
		}, nil)
		m.offers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Offer{})).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if o.Status != entities.OfferStatusPendingReview || o.PropertyID != "p1" || o.Contingencies == nil {
					t.Fatalf("unexpected offer %+v", o)
				}
				return o, nil
			},
		)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.store.EXPECT().Save(gomock.Any(), gomock.Any(), []byte("%PDF")).DoAndReturn(
			func(_ context.Context, name string, _ []byte) (string, error) { return "/offers/" + name, nil },
		)
		m.offers.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Offer{})).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				prefix := "/offers/offer-" + o.ID + "-"
				if o.Status != entities.OfferStatusGenerated || !strings.HasPrefix(o.OfferLetterURL, prefix) || len(o.OfferLetterURL) <= len(prefix)+len(".pdf") {
					t.Fatalf("unexpected generated offer %+v", o)
				}
				return o, nil
			},
		)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.Notification{})).DoAndReturn(
			func(_ context.Context, n interfaces.Notification) error {
				if n.To != "ops@example.com" {
					t.Fatalf("unexpected notification %+v", n)
				}
				return nil
			},
		)
		m.offers.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Offer{})).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if !o.NotificationSent || o.NotificationSentAt == nil {
					t.Fatalf("expected notification flags %+v", o)
				}
				return o, nil
			},
		)

		o, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OfferStatusGenerated || !o.NotificationSent {
			t.Fatalf("unexpected offer %+v", o)
		}
	})

	t.Run("side effect failures do not fail create", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "ops@example.com")

		m.users.EXPECT().GetByEmail(gomock.Any(), "temp@example.com").Return(entities.User{ID: "u1"}, nil)
		m.props.EXPECT().ListByAddress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.props.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) { return p, nil },
		)
		m.offers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOffer)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("template not found"))
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		o, err := uc.Create(context.Background(), validOfferInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OfferStatusPendingReview || o.OfferLetterURL != "" || o.NotificationSent {
			t.Fatalf("unexpected offer %+v", o)
		}
	})

	t.Run("notification skipped without email", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")

		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{ID: "u1"}, nil)
		m.props.EXPECT().ListByAddress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Property{{ID: "p1", PropertyType: "singlefamily"}}, nil)
		m.offers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOffer)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		if _, err := uc.Create(context.Background(), validOfferInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOfferUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Offer{}, nil)
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("with property", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", PropertyID: "p1"}, nil)
		m.props.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1", Address: "1 Main St"}, nil)

		d, err := uc.GetByID(context.Background(), "o1")
		if err != nil || d.Offer.ID != "o1" || d.Property.Address != "1 Main St" {
			t.Fatalf("unexpected result %+v %v", d, err)
		}
	})
}

func TestOfferUseCase_Download(t *testing.T) {
	paid := []entities.Payment{{ID: "pay1", Status: entities.PaymentStatusCompleted, PaymentType: entities.PaymentTypeSingleDownload}}

	t.Run("unknown offer", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Offer{}, nil)
		if _, err := uc.Download(context.Background(), "missing"); !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("payment required", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", UserID: "u1", OfferLetterURL: "/offers/offer-o1.pdf"}, nil)
		m.payments.EXPECT().ListByOfferID(gomock.Any(), "o1").Return([]entities.Payment{
			{Status: entities.PaymentStatusPending, PaymentType: entities.PaymentTypeSingleDownload},
			{Status: entities.PaymentStatusCompleted, PaymentType: entities.PaymentTypeAgentReviewOnly},
		}, nil)
		m.subs.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Subscription{{Status: entities.SubscriptionStatusCanceled}}, nil)

		if _, err := uc.Download(context.Background(), "o1"); !errors.Is(err, ErrPaymentRequired) {
			t.Fatalf("expected ErrPaymentRequired, got %v", err)
		}
	})

	t.Run("active subscription grants download", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		end := time.Now().Add(24 * time.Hour)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", UserID: "u1", OfferLetterURL: "/offers/offer-o1.pdf"}, nil)
		m.payments.EXPECT().ListByOfferID(gomock.Any(), "o1").Return(nil, nil)
		m.subs.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Subscription{{Status: entities.SubscriptionStatusActive, CurrentPeriodEnd: &end}}, nil)
		m.store.EXPECT().Open(gomock.Any(), "offer-o1.pdf").Return([]byte("%PDF"), nil)

		d, err := uc.Download(context.Background(), "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Kind != DownloadDocument || d.ContentType != "application/pdf" || d.FileName != "offer-letter-o1.pdf" {
			t.Fatalf("unexpected download %+v", d)
		}
	})

	t.Run("letter not available", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1"}, nil)
		m.payments.EXPECT().ListByOfferID(gomock.Any(), "o1").Return(paid, nil)
		if _, err := uc.Download(context.Background(), "o1"); !errors.Is(err, ErrOfferLetterNotReady) {
			t.Fatalf("expected ErrOfferLetterNotReady, got %v", err)
		}
	})

	t.Run("stored file missing", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", OfferLetterURL: "/offers/offer-o1.pdf"}, nil)
		m.payments.EXPECT().ListByOfferID(gomock.Any(), "o1").Return(paid, nil)
		m.store.EXPECT().Open(gomock.Any(), "offer-o1.pdf").Return(nil, interfaces.ErrDocumentNotFound)
		if _, err := uc.Download(context.Background(), "o1"); !errors.Is(err, ErrOfferDocumentMissing) {
			t.Fatalf("expected ErrOfferDocumentMissing, got %v", err)
		}
	})

	t.Run("external url redirects", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", OfferLetterURL: "https://cdn.example.com/o1.pdf"}, nil)
		m.payments.EXPECT().ListByOfferID(gomock.Any(), "o1").Return(paid, nil)
		d, err := uc.Download(context.Background(), "o1")
		if err != nil || d.Kind != DownloadRedirect || d.RedirectURL != "https://cdn.example.com/o1.pdf" {
			t.Fatalf("unexpected result %+v %v", d, err)
		}
	})

	t.Run("preview fallback", func(t *testing.T) {
		uc, m := newOfferUseCase(t, "")
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", OfferLetterPreview: "Dear seller"}, nil)
		m.payments.EXPECT().ListByOfferID(gomock.Any(), "o1").Return(paid, nil)
		d, err := uc.Download(context.Background(), "o1")
		if err != nil || d.Kind != DownloadText || string(d.Data) != "Dear seller" || d.FileName != "offer-letter-o1.txt" {
			t.Fatalf("unexpected result %+v %v", d, err)
		}
	})
}
