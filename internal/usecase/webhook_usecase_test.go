package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"
	mock_interfaces "offer_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type webhookMocks struct {
	gateway  *mock_interfaces.MockIPaymentGateway
	payments *mock_interfaces.MockIPaymentRepository
	offers   *mock_interfaces.MockIOfferRepository
	users    *mock_interfaces.MockIUserRepository
	subs     *mock_interfaces.MockISubscriptionRepository
	deduper  *mock_interfaces.MockIEventDeduper
}

func newWebhookUseCase(t *testing.T) (*WebhookUseCase, webhookMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := webhookMocks{
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		offers:   mock_interfaces.NewMockIOfferRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		subs:     mock_interfaces.NewMockISubscriptionRepository(ctrl),
		deduper:  mock_interfaces.NewMockIEventDeduper(ctrl),
	}
	m.gateway.EXPECT().Provider().Return("stripe").AnyTimes()
	uc := NewWebhookUseCase(m.payments, m.offers, m.users, m.subs, m.deduper, m.gateway)
	return uc, m
}

func (m webhookMocks) expectEvent(ev entities.WebhookEvent) {
	m.gateway.EXPECT().ParseWebhookEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(ev, nil)
	m.deduper.EXPECT().FirstSeen(gomock.Any(), "stripe", ev.ID).Return(true, nil)
}

func TestWebhookUseCase_Handle_Errors(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		uc, _ := newWebhookUseCase(t)
		if err := uc.Handle(context.Background(), "paypal", nil, http.Header{}); !errors.Is(err, ErrWebhookProviderNotConfigured) {
			t.Fatalf("expected ErrWebhookProviderNotConfigured, got %v", err)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.gateway.EXPECT().ParseWebhookEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.WebhookEvent{}, interfaces.ErrInvalidWebhookSignature)
		if err := uc.Handle(context.Background(), "stripe", []byte("{}"), http.Header{}); !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("duplicate event is acknowledged", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.gateway.EXPECT().ParseWebhookEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.WebhookEvent{ID: "evt_1", Type: entities.EventCheckoutSessionCompleted}, nil)
		m.deduper.EXPECT().FirstSeen(gomock.Any(), "stripe", "evt_1").Return(false, nil)
		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("processing failure releases event", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.expectEvent(entities.WebhookEvent{ID: "evt_1", Type: entities.EventCheckoutSessionCompleted, SessionID: "cs_1"})
		m.payments.EXPECT().GetBySessionID(gomock.Any(), "cs_1").Return(entities.Payment{}, errors.New("db"))
		m.deduper.EXPECT().Forget(gomock.Any(), "stripe", "evt_1").Return(nil)

		if err := uc.Handle(context.Background(), "stripe", nil, nil); !errors.Is(err, ErrWebhookProcessing) {
			t.Fatalf("expected ErrWebhookProcessing, got %v", err)
		}
	})

	t.Run("unknown event type", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.expectEvent(entities.WebhookEvent{ID: "evt_1", Type: "invoice.paid"})
		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_CheckoutCompleted(t *testing.T) {
	t.Run("download payment unlocks offer", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.expectEvent(entities.WebhookEvent{ID: "evt_1", Type: entities.EventCheckoutSessionCompleted, SessionID: "cs_1", SessionMode: entities.CheckoutModePayment, PaymentIntentID: "pi_1"})
		m.payments.EXPECT().GetBySessionID(gomock.Any(), "cs_1").Return(entities.Payment{
			ID: "pay1", OfferID: "o1", Status: entities.PaymentStatusPending, PaymentType: entities.PaymentTypeSingleDownload,
		}, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusCompleted || p.PaidAt == nil || p.ProviderPaymentID != "pi_1" {
					t.Fatalf("unexpected payment %+v", p)
				}
				return p, nil
			},
		)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", Status: entities.OfferStatusGenerated}, nil)
		m.offers.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Offer{})).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if o.Status != entities.OfferStatusDownloaded || o.RequiresAgentReview {
					t.Fatalf("unexpected offer %+v", o)
				}
				return o, nil
			},
		)

		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("download payment moves draft offer to downloaded", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.expectEvent(entities.WebhookEvent{ID: "evt_3", Type: entities.EventCheckoutSessionCompleted, SessionID: "cs_3", SessionMode: entities.CheckoutModePayment})
		m.payments.EXPECT().GetBySessionID(gomock.Any(), "cs_3").Return(entities.Payment{
			ID: "pay3", OfferID: "o3", Status: entities.PaymentStatusPending, PaymentType: entities.PaymentTypeSingleDownload,
		}, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		m.offers.EXPECT().GetByID(gomock.Any(), "o3").Return(entities.Offer{ID: "o3", Status: entities.OfferStatusDraft}, nil)
		m.offers.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Offer{})).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if o.Status != entities.OfferStatusDownloaded {
					t.Fatalf("expected DOWNLOADED, got %s", o.Status)
				}
				return o, nil
			},
		)

		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("review payment flags offer", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.expectEvent(entities.WebhookEvent{ID: "evt_2", Type: entities.EventCheckoutSessionCompleted, SessionID: "cs_2"})
		m.payments.EXPECT().GetBySessionID(gomock.Any(), "cs_2").Return(entities.Payment{
			ID: "pay2", OfferID: "o1", Status: entities.PaymentStatusPending, PaymentType: entities.PaymentTypeAgentReviewOnly,
		}, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Offer{ID: "o1", Status: entities.OfferStatusGenerated}, nil)
		m.offers.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Offer{})).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if o.Status != entities.OfferStatusGenerated || !o.RequiresAgentReview || o.AgentReviewStatus != entities.AgentReviewStatusRequested {
					t.Fatalf("unexpected offer %+v", o)
				}
				return o, nil
			},
		)

		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("subscription checkout creates subscription", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		m.expectEvent(entities.WebhookEvent{
			ID: "evt_3", Type: entities.EventCheckoutSessionCompleted, SessionID: "cs_3",
			SessionMode: entities.CheckoutModeSubscription, CustomerID: "cus_1", SubscriptionID: "sub_1",
		})
		m.payments.EXPECT().GetBySessionID(gomock.Any(), "cs_3").Return(entities.Payment{}, nil)
		m.gateway.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(entities.ProviderSubscription{ID: "sub_1", Status: "active", CurrentPeriodEnd: end}, nil)
		m.gateway.EXPECT().GetCustomerEmail(gomock.Any(), "cus_1").Return("buyer@example.com", nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "buyer@example.com").Return(entities.User{ID: "u1"}, nil)
		m.subs.EXPECT().GetByProviderID(gomock.Any(), "sub_1").Return(entities.Subscription{}, nil)
		m.subs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Subscription{})).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.UserID != "u1" || s.Status != entities.SubscriptionStatusActive || s.ProviderCustomerID != "cus_1" ||
					s.CurrentPeriodEnd == nil || !s.CurrentPeriodEnd.Equal(end) {
					t.Fatalf("unexpected subscription %+v", s)
				}
				return s, nil
			},
		)

		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_SubscriptionChanged(t *testing.T) {
	cases := []struct {
		providerStatus string
		want           entities.SubscriptionStatus
	}{
		{"active", entities.SubscriptionStatusActive},
		{"canceled", entities.SubscriptionStatusCanceled},
		{"past_due", entities.SubscriptionStatusPastDue},
		{"incomplete", entities.SubscriptionStatusUnpaid},
	}
	for _, tc := range cases {
		t.Run(tc.providerStatus, func(t *testing.T) {
			uc, m := newWebhookUseCase(t)
			end := time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC)
			m.expectEvent(entities.WebhookEvent{
				ID: "evt_" + tc.providerStatus, Type: entities.EventSubscriptionUpdated,
				Subscription: &entities.ProviderSubscription{ID: "sub_1", Status: tc.providerStatus, CurrentPeriodEnd: end},
			})
			m.subs.EXPECT().GetByProviderID(gomock.Any(), "sub_1").Return(entities.Subscription{ID: "s1", Status: entities.SubscriptionStatusActive}, nil)
			m.subs.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Subscription{})).DoAndReturn(
				func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
					if s.Status != tc.want || s.CurrentPeriodEnd == nil || !s.CurrentPeriodEnd.Equal(end) {
						t.Fatalf("unexpected subscription %+v", s)
					}
					return s, nil
				},
			)

			if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("unknown subscription is ignored", func(t *testing.T) {
		uc, m := newWebhookUseCase(t)
		m.expectEvent(entities.WebhookEvent{
			ID: "evt_x", Type: entities.EventSubscriptionDeleted,
			Subscription: &entities.ProviderSubscription{ID: "sub_x", Status: "canceled"},
		})
		m.subs.EXPECT().GetByProviderID(gomock.Any(), "sub_x").Return(entities.Subscription{}, nil)
		if err := uc.Handle(context.Background(), "stripe", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
